package types

// RegisteredQuery describes an interchain query registered on the host.
type RegisteredQuery struct {
	ID                             uint64    `json:"id"`
	Owner                          string    `json:"owner"`
	Keys                           KVKeys    `json:"keys"`
	QueryType                      QueryType `json:"query_type"`
	TransactionsFilter             string    `json:"transactions_filter"`
	ZoneID                         string    `json:"zone_id"`
	ConnectionID                   string    `json:"connection_id"`
	UpdatePeriod                   uint64    `json:"update_period"`
	LastEmittedHeight              uint64    `json:"last_emitted_height"`
	LastSubmittedResultLocalHeight uint64    `json:"last_submitted_result_local_height"`
	// LastSubmittedResultRemoteHeight is the remote height of the last submitted result
	LastSubmittedResultRemoteHeight uint64 `json:"last_submitted_result_remote_height"`
}

// StorageValue is a raw value read from the KV storage of a remote chain.
type StorageValue struct {
	StoragePrefix string `json:"storage_prefix"`
	Key           []byte `json:"key"`
	Value         []byte `json:"value"`
}

// KVKey returns the key the value was read under.
func (sv StorageValue) KVKey() KVKey {
	return NewKVKey(sv.StoragePrefix, sv.Key)
}

// InterchainQueryResult is the verified result of a KV query. Proofs are
// checked by the host before the result is delivered.
type InterchainQueryResult struct {
	KVResults []StorageValue `json:"kv_results"`
	Height    uint64         `json:"height"`
	Revision  uint64         `json:"revision"`
}

// Value returns the value stored under kv, if the result contains it.
func (r InterchainQueryResult) Value(kv KVKey) ([]byte, bool) {
	target := kv.String()
	for _, sv := range r.KVResults {
		if sv.KVKey().String() == target {
			return sv.Value, true
		}
	}

	return nil, false
}
