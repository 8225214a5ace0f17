package types

// Interchain queries events
const (
	EventTypeInterchainQuery = "interchain_query"

	AttributeKeyAction             = "action"
	AttributeKeyConnectionID       = "connection_id"
	AttributeKeyZoneID             = "zone_id"
	AttributeKeyQueryType          = "query_type"
	AttributeKeyUpdatePeriod       = "update_period"
	AttributeKeyTransactionsFilter = "transactions_filter"
	AttributeKeyKVKeys             = "kv_keys"
	AttributeKeyQueryID            = "query_id"
	AttributeKeyNewKeys            = "new_keys"
	AttributeKeyNewUpdatePeriod    = "new_update_period"

	ActionRegisterInterchainQuery = "register_interchain_query"
	ActionUpdateInterchainQuery   = "update_interchain_query"
	ActionRemoveInterchainQuery   = "remove_interchain_query"
)
