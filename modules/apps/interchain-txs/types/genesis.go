package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/interchaintxs/internal/collections"
	"github.com/cosmos/interchaintxs/internal/validate"
)

// RegisteredAccount is the genesis representation of an AccountSlot.
type RegisteredAccount struct {
	AccountKey string      `json:"account_key"`
	Slot       AccountSlot `json:"slot"`
}

// InFlightPayload is a SudoPayload awaiting the result of packet (ChannelID, Sequence).
type InFlightPayload struct {
	ChannelID string      `json:"channel_id"`
	Sequence  uint64      `json:"sequence"`
	Payload   SudoPayload `json:"payload"`
}

// AccountOutcome is the genesis representation of a recorded Outcome.
type AccountOutcome struct {
	AccountKey string  `json:"account_key"`
	Outcome    Outcome `json:"outcome"`
}

// GenesisState defines the interchain transactions controller genesis state
type GenesisState struct {
	Params   Params              `json:"params"`
	Accounts []RegisteredAccount `json:"accounts"`
	// PendingPayload is the payload staged for the submission reply, if any
	PendingPayload *SudoPayload       `json:"pending_payload,omitempty"`
	InFlight       []InFlightPayload `json:"in_flight"`
	Outcomes       []AccountOutcome  `json:"outcomes"`
}

// NewGenesisState creates a new GenesisState instance
func NewGenesisState(params Params, accounts []RegisteredAccount, pending *SudoPayload, inFlight []InFlightPayload, outcomes []AccountOutcome) *GenesisState {
	return &GenesisState{
		Params:         params,
		Accounts:       accounts,
		PendingPayload: pending,
		InFlight:       inFlight,
		Outcomes:       outcomes,
	}
}

// DefaultGenesis returns the default controller genesis state
func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams(), nil, nil, nil, nil)
}

// Validate performs basic genesis state validation returning an error upon any failure
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if key, found := collections.FirstDuplicate(gs.Accounts, func(a RegisteredAccount) string { return a.AccountKey }); found {
		return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate account %s", key)
	}

	for _, account := range gs.Accounts {
		if err := validate.PortID(account.AccountKey); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "account key %q: %v", account.AccountKey, err)
		}

		if account.Slot.IsOpen() && account.Slot.Remote.Address == "" {
			return errorsmod.Wrapf(ErrInvalidGenesis, "account %s is open without an address", account.AccountKey)
		}
	}

	if gs.PendingPayload != nil {
		if err := gs.PendingPayload.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "pending payload: %v", err)
		}
	}

	type packetID struct {
		channel  string
		sequence uint64
	}
	if id, found := collections.FirstDuplicate(gs.InFlight, func(p InFlightPayload) packetID { return packetID{p.ChannelID, p.Sequence} }); found {
		return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate payload for packet %s/%d", id.channel, id.sequence)
	}

	for _, p := range gs.InFlight {
		if err := validate.Identifier(p.ChannelID); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "channel id: %v", err)
		}
		if p.Sequence == 0 {
			return errorsmod.Wrapf(ErrInvalidGenesis, "packet sequence on channel %s cannot be zero", p.ChannelID)
		}

		if err := p.Payload.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "payload of packet %s/%d: %v", p.ChannelID, p.Sequence, err)
		}
	}

	if key, found := collections.FirstDuplicate(gs.Outcomes, func(o AccountOutcome) string { return o.AccountKey }); found {
		return errorsmod.Wrapf(ErrInvalidGenesis, "duplicate outcome for %s", key)
	}

	for _, o := range gs.Outcomes {
		if err := o.Outcome.Kind.Validate(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "outcome of %s: %v", o.AccountKey, err)
		}
	}

	return nil
}
