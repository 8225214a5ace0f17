package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Execute dispatches a JSON message of the owner.
func (k Keeper) Execute(ctx sdk.Context, msg types.ExecuteMsg) (types.ExecuteResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return types.ExecuteResponse{}, err
	}

	switch {
	case msg.Register != nil:
		register, err := k.Register(ctx, msg.Register.ConnectionID, msg.Register.InterchainAccountID)
		if err != nil {
			return types.ExecuteResponse{}, err
		}
		return types.ExecuteResponse{Register: &register}, nil
	case msg.Delegate != nil:
		return submitResponse(k.Delegate(ctx, msg.Delegate.InterchainAccountID, msg.Delegate.Validator, msg.Delegate.Amount, msg.Delegate.Timeout))
	case msg.Undelegate != nil:
		return submitResponse(k.Undelegate(ctx, msg.Undelegate.InterchainAccountID, msg.Undelegate.Validator, msg.Undelegate.Amount, msg.Undelegate.Timeout))
	case msg.Swap != nil:
		return submitResponse(k.Swap(ctx, *msg.Swap))
	default:
		cleared, err := k.ClearAllOutcomes(ctx)
		if err != nil {
			return types.ExecuteResponse{}, err
		}
		return types.ExecuteResponse{Cleared: cleared}, nil
	}
}

func submitResponse(tx types.OutboundTx, err error) (types.ExecuteResponse, error) {
	if err != nil {
		return types.ExecuteResponse{}, err
	}

	return types.ExecuteResponse{SubmitTx: &tx}, nil
}

// ClearAllOutcomes removes every recorded outcome and returns how many were removed.
func (k Keeper) ClearAllOutcomes(ctx sdk.Context) (uint64, error) {
	iter, err := k.outcomes.Iterate(ctx, nil)
	if err != nil {
		return 0, err
	}

	keys, err := iter.Keys()
	if err != nil {
		return 0, err
	}

	for _, key := range keys {
		if err := k.outcomes.Remove(ctx, key); err != nil {
			return 0, err
		}
	}

	count := uint64(len(keys))
	k.Logger(ctx).Info("cleared acknowledgement results", "count", count)
	emitCleanAckResultsEvent(ctx, count)

	return count, nil
}
