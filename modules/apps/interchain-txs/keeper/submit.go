package keeper

import (
	"errors"
	"strings"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/instructions"
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Labels of the payloads staged by the typed submissions
const (
	LabelDelegate   = "delegate"
	LabelUndelegate = "undelegate"
	LabelSwap       = "swap"
)

// SubmitTx stages the payload of a transaction executing msgs on the
// interchain account interchainAccountID and returns the transaction the host
// must dispatch. A nil timeout uses the default timeout parameter. Only one
// submission can await its local submission reply at a time: a staged payload
// not yet moved by Reply is replaced.
func (k Keeper) SubmitTx(ctx sdk.Context, interchainAccountID, label string, msgs []types.Instruction, memo string, timeout *uint64) (types.OutboundTx, error) {
	remote, err := k.ResolveAddress(ctx, interchainAccountID)
	if err != nil {
		return types.OutboundTx{}, err
	}

	accountKey, err := k.accountKey(interchainAccountID)
	if err != nil {
		return types.OutboundTx{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.OutboundTx{}, err
	}

	msg := types.MsgSubmitTx{
		ConnectionID:        remote.ConnectionID,
		InterchainAccountID: interchainAccountID,
		Msgs:                msgs,
		Memo:                memo,
		Timeout:             params.DefaultTimeoutSeconds,
	}
	if timeout != nil {
		msg.Timeout = *timeout
	}

	if err := msg.ValidateBasic(); err != nil {
		return types.OutboundTx{}, err
	}

	packetData, err := msg.PacketData()
	if err != nil {
		return types.OutboundTx{}, err
	}

	if err := k.stagePayload(ctx, types.SudoPayload{AccountKey: accountKey, Message: label}); err != nil {
		return types.OutboundTx{}, err
	}

	tx := types.OutboundTx{
		ReplyID:          types.SudoPayloadReplyID,
		Msg:              msg,
		PacketData:       packetData,
		TimeoutTimestamp: msg.TimeoutTimestamp(ctx.BlockTime()),
	}

	emitSubmitTxEvent(ctx, accountKey, tx)

	return tx, nil
}

// Delegate submits the delegation of amount of the staking denom from the
// interchain account to validator.
func (k Keeper) Delegate(ctx sdk.Context, interchainAccountID, validator string, amount sdkmath.Int, timeout *uint64) (types.OutboundTx, error) {
	return k.submitStaking(ctx, interchainAccountID, LabelDelegate, validator, amount, timeout, instructions.NewDelegateInstruction)
}

// Undelegate submits the undelegation of amount of the staking denom of the
// interchain account from validator.
func (k Keeper) Undelegate(ctx sdk.Context, interchainAccountID, validator string, amount sdkmath.Int, timeout *uint64) (types.OutboundTx, error) {
	return k.submitStaking(ctx, interchainAccountID, LabelUndelegate, validator, amount, timeout, instructions.NewUndelegateInstruction)
}

func (k Keeper) submitStaking(
	ctx sdk.Context, interchainAccountID, label, validator string, amount sdkmath.Int, timeout *uint64,
	newInstruction func(delegator, validator string, amount sdk.Coin) (types.Instruction, error),
) (types.OutboundTx, error) {
	remote, err := k.ResolveAddress(ctx, interchainAccountID)
	if err != nil {
		return types.OutboundTx{}, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.OutboundTx{}, err
	}

	if amount.IsNil() {
		return types.OutboundTx{}, errorsmod.Wrap(types.ErrInvalidInstruction, "amount cannot be empty")
	}

	instruction, err := newInstruction(remote.Address, validator, sdk.NewCoin(params.StakingDenom, amount))
	if err != nil {
		return types.OutboundTx{}, err
	}

	return k.SubmitTx(ctx, interchainAccountID, label, []types.Instruction{instruction}, "", timeout)
}

// Swap submits a swap of the tokens held by the interchain account along the
// given routes. The interchain account is the sender of the swap.
func (k Keeper) Swap(ctx sdk.Context, msg types.ExecuteSwap) (types.OutboundTx, error) {
	remote, err := k.ResolveAddress(ctx, msg.InterchainAccountID)
	if err != nil {
		return types.OutboundTx{}, err
	}

	if strings.TrimSpace(msg.ConnectionID) != "" && msg.ConnectionID != remote.ConnectionID {
		return types.OutboundTx{}, errorsmod.Wrapf(
			types.ErrInvalidConnectionID,
			"interchain account %s is bound to %s, not %s", msg.InterchainAccountID, remote.ConnectionID, msg.ConnectionID,
		)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.OutboundTx{}, err
	}

	amount, ok := sdkmath.NewIntFromString(msg.TokenInAmount)
	if !ok {
		return types.OutboundTx{}, errorsmod.Wrapf(types.ErrInvalidInstruction, "invalid token in amount %q", msg.TokenInAmount)
	}

	instruction, err := instructions.NewSwapInstruction(remote.Address, msg.Routes, sdk.Coin{Denom: msg.TokenIn, Amount: amount}, params.SwapMinTokenOut)
	if err != nil {
		return types.OutboundTx{}, err
	}

	return k.SubmitTx(ctx, msg.InterchainAccountID, LabelSwap, []types.Instruction{instruction}, "", msg.Timeout)
}

// stagePayload stores payload under the fixed reply id until the host reports
// the local submission.
func (k Keeper) stagePayload(ctx sdk.Context, payload types.SudoPayload) error {
	previous, err := k.replyPayloads.Get(ctx, types.SudoPayloadReplyID)
	switch {
	case err == nil:
		k.Logger(ctx).Warn(
			"overwriting payload staged for a submission that was never accepted",
			"previous_account_key", previous.AccountKey,
			"previous_message", previous.Message,
			"account_key", payload.AccountKey,
		)
	case !errors.Is(err, collections.ErrNotFound):
		return err
	}

	return k.replyPayloads.Set(ctx, types.SudoPayloadReplyID, payload)
}
