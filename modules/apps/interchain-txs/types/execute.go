package types

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// SwapAmountInRoute is one pool hop of an exact amount in swap.
type SwapAmountInRoute struct {
	PoolID        uint64 `json:"pool_id"`
	TokenOutDenom string `json:"token_out_denom"`
}

// ExecuteMsg is the JSON message the owner sends to drive the controller.
// Exactly one field is set.
type ExecuteMsg struct {
	Register        *ExecuteRegister `json:"register,omitempty"`
	Delegate        *ExecuteDelegate `json:"delegate,omitempty"`
	Undelegate      *ExecuteDelegate `json:"undelegate,omitempty"`
	Swap            *ExecuteSwap     `json:"swap,omitempty"`
	CleanAckResults *struct{}        `json:"clean_ack_results,omitempty"`
}

// ExecuteRegister registers a new interchain account.
type ExecuteRegister struct {
	ConnectionID        string `json:"connection_id"`
	InterchainAccountID string `json:"interchain_account_id"`
}

// ExecuteDelegate (un)delegates Amount of the staking denom from the
// interchain account to Validator. A nil Timeout uses the default timeout.
type ExecuteDelegate struct {
	InterchainAccountID string      `json:"interchain_account_id"`
	Validator           string      `json:"validator"`
	Amount              sdkmath.Int `json:"amount"`
	Timeout             *uint64     `json:"timeout,omitempty"`
}

// ExecuteSwap swaps TokenInAmount of TokenIn held by the interchain account
// along Routes.
type ExecuteSwap struct {
	Routes              []SwapAmountInRoute `json:"routes"`
	ConnectionID        string              `json:"connection_id"`
	InterchainAccountID string              `json:"interchain_account_id"`
	TokenIn             string              `json:"token_in"`
	TokenInAmount       string              `json:"token_in_amount"`
	Timeout             *uint64             `json:"timeout,omitempty"`
}

// ValidateBasic checks exactly one message is set.
func (msg ExecuteMsg) ValidateBasic() error {
	set := 0
	for _, isSet := range []bool{
		msg.Register != nil,
		msg.Delegate != nil,
		msg.Undelegate != nil,
		msg.Swap != nil,
		msg.CleanAckResults != nil,
	} {
		if isSet {
			set++
		}
	}

	if set != 1 {
		return errorsmod.Wrapf(ErrUnknownRequest, "expected exactly one execute message, got %d", set)
	}

	return nil
}

// ExecuteResponse describes what the host must dispatch after an ExecuteMsg.
type ExecuteResponse struct {
	Register *MsgRegisterInterchainAccount `json:"register,omitempty"`
	SubmitTx *OutboundTx                   `json:"submit_tx,omitempty"`
	// Cleared is the number of outcomes removed by clean_ack_results
	Cleared uint64 `json:"cleared,omitempty"`
}

// QueryMsg is the JSON query of the controller. Exactly one field is set.
type QueryMsg struct {
	InterchainAccountAddress             *QueryInterchainAccountAddress `json:"interchain_account_address,omitempty"`
	InterchainAccountAddressFromContract *QueryAccount                  `json:"interchain_account_address_from_contract,omitempty"`
	AcknowledgementResult                *QueryAccount                  `json:"acknowledgement_result,omitempty"`
}

// QueryInterchainAccountAddress asks the host for the address of an interchain account.
type QueryInterchainAccountAddress struct {
	InterchainAccountID string `json:"interchain_account_id"`
	ConnectionID        string `json:"connection_id"`
}

// QueryAccount selects an interchain account of the owner.
type QueryAccount struct {
	InterchainAccountID string `json:"interchain_account_id"`
}

// ValidateBasic checks exactly one query is set.
func (msg QueryMsg) ValidateBasic() error {
	set := 0
	for _, isSet := range []bool{
		msg.InterchainAccountAddress != nil,
		msg.InterchainAccountAddressFromContract != nil,
		msg.AcknowledgementResult != nil,
	} {
		if isSet {
			set++
		}
	}

	if set != 1 {
		return errorsmod.Wrapf(ErrUnknownRequest, "expected exactly one query, got %d", set)
	}

	return nil
}

// QueryInterchainAccountAddressResponse is the response of the interchain_account_address query.
type QueryInterchainAccountAddressResponse struct {
	InterchainAccountAddress string `json:"interchain_account_address"`
}

// QueryAccountResponse is the response of the interchain_account_address_from_contract query.
type QueryAccountResponse struct {
	Address      string `json:"address"`
	ConnectionID string `json:"connection_id"`
}

// QueryAcknowledgementResultResponse is the response of the acknowledgement_result query.
// Outcome is nil when no result was recorded.
type QueryAcknowledgementResultResponse struct {
	Outcome *Outcome `json:"outcome"`
}
