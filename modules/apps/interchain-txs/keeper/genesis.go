package keeper

import (
	"errors"
	"fmt"

	"cosmossdk.io/collections"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// InitGenesis initializes the controller state from the provided genesis state.
func InitGenesis(ctx sdk.Context, keeper Keeper, state types.GenesisState) {
	if err := state.Validate(); err != nil {
		panic(fmt.Errorf("invalid genesis state: %w", err))
	}

	if err := keeper.SetParams(ctx, state.Params); err != nil {
		panic(err)
	}

	for _, account := range state.Accounts {
		if err := keeper.accounts.Set(ctx, account.AccountKey, account.Slot); err != nil {
			panic(err)
		}
	}

	if state.PendingPayload != nil {
		if err := keeper.replyPayloads.Set(ctx, types.SudoPayloadReplyID, *state.PendingPayload); err != nil {
			panic(err)
		}
	}

	for _, p := range state.InFlight {
		if err := keeper.sudoPayloads.Set(ctx, collections.Join(p.ChannelID, p.Sequence), p.Payload); err != nil {
			panic(err)
		}
	}

	for _, o := range state.Outcomes {
		if err := keeper.outcomes.Set(ctx, o.AccountKey, o.Outcome); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the controller exported genesis.
func ExportGenesis(ctx sdk.Context, keeper Keeper) *types.GenesisState {
	params, err := keeper.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	var accounts []types.RegisteredAccount
	if err := keeper.accounts.Walk(ctx, nil, func(key string, slot types.AccountSlot) (bool, error) {
		accounts = append(accounts, types.RegisteredAccount{AccountKey: key, Slot: slot})
		return false, nil
	}); err != nil {
		panic(err)
	}

	var pending *types.SudoPayload
	payload, err := keeper.replyPayloads.Get(ctx, types.SudoPayloadReplyID)
	switch {
	case err == nil:
		pending = &payload
	case !errors.Is(err, collections.ErrNotFound):
		panic(err)
	}

	var inFlight []types.InFlightPayload
	if err := keeper.sudoPayloads.Walk(ctx, nil, func(key collections.Pair[string, uint64], payload types.SudoPayload) (bool, error) {
		inFlight = append(inFlight, types.InFlightPayload{ChannelID: key.K1(), Sequence: key.K2(), Payload: payload})
		return false, nil
	}); err != nil {
		panic(err)
	}

	var outcomes []types.AccountOutcome
	if err := keeper.outcomes.Walk(ctx, nil, func(key string, outcome types.Outcome) (bool, error) {
		outcomes = append(outcomes, types.AccountOutcome{AccountKey: key, Outcome: outcome})
		return false, nil
	}); err != nil {
		panic(err)
	}

	return types.NewGenesisState(params, accounts, pending, inFlight, outcomes)
}
