package keeper

import (
	"encoding/json"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Query answers a JSON query of the controller with its JSON encoded response.
func (k Keeper) Query(ctx sdk.Context, msg types.QueryMsg) ([]byte, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	var resp interface{}
	switch {
	case msg.InterchainAccountAddress != nil:
		addr, err := k.InterchainAccountAddress(ctx, msg.InterchainAccountAddress.InterchainAccountID, msg.InterchainAccountAddress.ConnectionID)
		if err != nil {
			return nil, err
		}
		resp = types.QueryInterchainAccountAddressResponse{InterchainAccountAddress: addr}
	case msg.InterchainAccountAddressFromContract != nil:
		remote, err := k.ResolveAddress(ctx, msg.InterchainAccountAddressFromContract.InterchainAccountID)
		if err != nil {
			return nil, err
		}
		resp = types.QueryAccountResponse{Address: remote.Address, ConnectionID: remote.ConnectionID}
	case msg.AcknowledgementResult != nil:
		outcome, found, err := k.GetOutcome(ctx, msg.AcknowledgementResult.InterchainAccountID)
		if err != nil {
			return nil, err
		}
		result := types.QueryAcknowledgementResultResponse{}
		if found {
			result.Outcome = &outcome
		}
		resp = result
	}

	bz, err := json.Marshal(resp)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrUnknownRequest, "cannot marshal query response: %v", err)
	}

	return bz, nil
}

// InterchainAccountAddress asks the host for the address of the interchain
// account interchainAccountID of the owner over connectionID.
func (k Keeper) InterchainAccountAddress(ctx sdk.Context, interchainAccountID, connectionID string) (string, error) {
	msg := types.NewMsgRegisterInterchainAccount(connectionID, interchainAccountID)
	if err := msg.ValidateBasic(); err != nil {
		return "", err
	}

	return k.hostQuerier.InterchainAccountAddress(ctx, k.owner, interchainAccountID, connectionID)
}

// GetOutcome returns the outcome recorded for interchainAccountID and whether one exists.
func (k Keeper) GetOutcome(ctx sdk.Context, interchainAccountID string) (types.Outcome, bool, error) {
	accountKey, err := k.accountKey(interchainAccountID)
	if err != nil {
		return types.Outcome{}, false, err
	}

	outcome, err := k.outcomes.Get(ctx, accountKey)
	if errors.Is(err, collections.ErrNotFound) {
		return types.Outcome{}, false, nil
	}
	if err != nil {
		return types.Outcome{}, false, err
	}

	return outcome, true, nil
}
