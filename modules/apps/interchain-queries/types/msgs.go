package types

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/internal/validate"
)

// QueryType is the kind of an interchain query.
type QueryType string

const (
	// QueryTypeKV reads values from the KV storage of the remote chain
	QueryTypeKV QueryType = "kv"
	// QueryTypeTX searches transactions on the remote chain
	QueryTypeTX QueryType = "tx"
)

// Validate returns an error if the query type is unknown.
func (qt QueryType) Validate() error {
	switch qt {
	case QueryTypeKV, QueryTypeTX:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidQueryType, "unknown query type %q", string(qt))
	}
}

// MsgRegisterInterchainQuery asks the host to register an interchain query.
type MsgRegisterInterchainQuery struct {
	QueryType          QueryType `json:"query_type"`
	Keys               KVKeys    `json:"keys"`
	TransactionsFilter string    `json:"transactions_filter"`
	ZoneID             string    `json:"zone_id"`
	ConnectionID       string    `json:"connection_id"`
	UpdatePeriod       uint64    `json:"update_period"`
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRegisterInterchainQuery) ValidateBasic() error {
	if err := msg.QueryType.Validate(); err != nil {
		return err
	}

	if err := validate.Identifier(msg.ConnectionID); err != nil {
		return errorsmod.Wrapf(ErrInvalidConnectionID, "connection id %q: %v", msg.ConnectionID, err)
	}

	if msg.UpdatePeriod == 0 {
		return errorsmod.Wrap(ErrInvalidUpdatePeriod, "update period must be positive")
	}

	switch msg.QueryType {
	case QueryTypeKV:
		if len(msg.Keys) == 0 {
			return ErrEmptyKeys
		}
		return msg.Keys.Validate()
	default:
		_, err := DecodeTransactionFilter(msg.TransactionsFilter)
		return err
	}
}

// Event returns the event describing the registration.
func (msg MsgRegisterInterchainQuery) Event() sdk.Event {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAction, ActionRegisterInterchainQuery),
		sdk.NewAttribute(AttributeKeyConnectionID, msg.ConnectionID),
		sdk.NewAttribute(AttributeKeyZoneID, msg.ZoneID),
		sdk.NewAttribute(AttributeKeyQueryType, string(msg.QueryType)),
		sdk.NewAttribute(AttributeKeyUpdatePeriod, strconv.FormatUint(msg.UpdatePeriod, 10)),
	}

	if msg.TransactionsFilter != "" {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyTransactionsFilter, msg.TransactionsFilter))
	}

	if len(msg.Keys) > 0 {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyKVKeys, msg.Keys.String()))
	}

	return sdk.NewEvent(EventTypeInterchainQuery, attrs...)
}

// NewRegisterKVQuery returns a KV interchain query registration for keys.
func NewRegisterKVQuery(connectionID, zoneID string, keys KVKeys, updatePeriod uint64) (MsgRegisterInterchainQuery, error) {
	msg := MsgRegisterInterchainQuery{
		QueryType:    QueryTypeKV,
		Keys:         keys,
		ZoneID:       zoneID,
		ConnectionID: connectionID,
		UpdatePeriod: updatePeriod,
	}

	return msg, msg.ValidateBasic()
}

// NewRegisterTXQuery returns a TX interchain query registration for filter.
func NewRegisterTXQuery(connectionID, zoneID string, filter TransactionFilter, updatePeriod uint64) (MsgRegisterInterchainQuery, error) {
	encoded, err := filter.Encode()
	if err != nil {
		return MsgRegisterInterchainQuery{}, err
	}

	msg := MsgRegisterInterchainQuery{
		QueryType:          QueryTypeTX,
		TransactionsFilter: encoded,
		ZoneID:             zoneID,
		ConnectionID:       connectionID,
		UpdatePeriod:       updatePeriod,
	}

	return msg, msg.ValidateBasic()
}

// NewRegisterBalanceQuery registers a query of the balance of addr in denom.
func NewRegisterBalanceQuery(connectionID, zoneID, addr, denom string, updatePeriod uint64) (MsgRegisterInterchainQuery, error) {
	kv, err := NewBalanceKVKey(addr, denom)
	if err != nil {
		return MsgRegisterInterchainQuery{}, err
	}

	return NewRegisterKVQuery(connectionID, zoneID, KVKeys{kv}, updatePeriod)
}

// NewRegisterDelegatorDelegationsQuery registers a query of the delegations of
// delegator to validators.
func NewRegisterDelegatorDelegationsQuery(connectionID, zoneID, delegator string, validators []string, updatePeriod uint64) (MsgRegisterInterchainQuery, error) {
	keys, err := NewDelegatorDelegationsKVKeys(delegator, validators)
	if err != nil {
		return MsgRegisterInterchainQuery{}, err
	}

	return NewRegisterKVQuery(connectionID, zoneID, keys, updatePeriod)
}

// NewRegisterTransfersQuery registers a query of transfers to recipient.
func NewRegisterTransfersQuery(connectionID, zoneID, recipient string, updatePeriod, minHeight uint64) (MsgRegisterInterchainQuery, error) {
	return NewRegisterTXQuery(connectionID, zoneID, NewTransfersFilter(recipient, minHeight), updatePeriod)
}

// MsgUpdateInterchainQuery updates the keys and/or update period of a registered query.
// Nil fields are left unchanged by the host.
type MsgUpdateInterchainQuery struct {
	QueryID         uint64  `json:"query_id"`
	NewKeys         KVKeys  `json:"new_keys,omitempty"`
	NewUpdatePeriod *uint64 `json:"new_update_period,omitempty"`
}

// NewUpdateInterchainQuery creates a new MsgUpdateInterchainQuery.
func NewUpdateInterchainQuery(queryID uint64, newKeys KVKeys, newUpdatePeriod *uint64) (MsgUpdateInterchainQuery, error) {
	msg := MsgUpdateInterchainQuery{
		QueryID:         queryID,
		NewKeys:         newKeys,
		NewUpdatePeriod: newUpdatePeriod,
	}

	return msg, msg.ValidateBasic()
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgUpdateInterchainQuery) ValidateBasic() error {
	if msg.QueryID == 0 {
		return errorsmod.Wrap(ErrInvalidQueryID, "query id must be positive")
	}

	if msg.NewUpdatePeriod != nil && *msg.NewUpdatePeriod == 0 {
		return errorsmod.Wrap(ErrInvalidUpdatePeriod, "update period must be positive")
	}

	return msg.NewKeys.Validate()
}

// Event returns the event describing the update.
func (msg MsgUpdateInterchainQuery) Event() sdk.Event {
	attrs := []sdk.Attribute{
		sdk.NewAttribute(AttributeKeyAction, ActionUpdateInterchainQuery),
		sdk.NewAttribute(AttributeKeyQueryID, strconv.FormatUint(msg.QueryID, 10)),
	}

	if msg.NewKeys != nil {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyNewKeys, msg.NewKeys.String()))
	}

	if msg.NewUpdatePeriod != nil {
		attrs = append(attrs, sdk.NewAttribute(AttributeKeyNewUpdatePeriod, strconv.FormatUint(*msg.NewUpdatePeriod, 10)))
	}

	return sdk.NewEvent(EventTypeInterchainQuery, attrs...)
}

// MsgRemoveInterchainQuery removes a registered query.
type MsgRemoveInterchainQuery struct {
	QueryID uint64 `json:"query_id"`
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRemoveInterchainQuery) ValidateBasic() error {
	if msg.QueryID == 0 {
		return errorsmod.Wrap(ErrInvalidQueryID, "query id must be positive")
	}

	return nil
}

// Event returns the event describing the removal.
func (msg MsgRemoveInterchainQuery) Event() sdk.Event {
	return sdk.NewEvent(
		EventTypeInterchainQuery,
		sdk.NewAttribute(AttributeKeyAction, ActionRemoveInterchainQuery),
		sdk.NewAttribute(AttributeKeyQueryID, strconv.FormatUint(msg.QueryID, 10)),
	)
}
