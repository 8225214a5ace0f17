package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Reply handles the host report of a message dispatched with a reply id.
// Only SudoPayloadReplyID is supported.
func (k Keeper) Reply(ctx sdk.Context, reply types.Reply) error {
	switch reply.ID {
	case types.SudoPayloadReplyID:
		return k.OnLocalSubmissionAccepted(ctx, reply.Data)
	default:
		return errorsmod.Wrapf(types.ErrUnsupportedReplyID, "unsupported reply message id %d", reply.ID)
	}
}

// OnLocalSubmissionAccepted moves the staged payload under the packet
// (channel, sequence) reported in the MsgSubmitTxResponse receipt data. The
// store is left unchanged on error.
func (k Keeper) OnLocalSubmissionAccepted(ctx sdk.Context, data []byte) error {
	payload, err := k.replyPayloads.Get(ctx, types.SudoPayloadReplyID)
	if errors.Is(err, collections.ErrNotFound) {
		k.Logger(ctx).Error("local submission reply without a staged payload")
		return types.ErrNoPendingPayload
	}
	if err != nil {
		return err
	}

	resp, err := types.ParseSubmitTxResponse(data)
	if err != nil {
		k.Logger(ctx).Error("failed to parse submit tx response", "account_key", payload.AccountKey, "error", err)
		return err
	}

	if err := k.replyPayloads.Remove(ctx, types.SudoPayloadReplyID); err != nil {
		return err
	}

	if err := k.sudoPayloads.Set(ctx, collections.Join(resp.Channel, resp.SequenceID), payload); err != nil {
		return err
	}

	k.Logger(ctx).Debug(
		"submission accepted",
		"account_key", payload.AccountKey,
		"channel_id", resp.Channel,
		"sequence", resp.SequenceID,
	)
	emitSubmitTxAcceptedEvent(ctx, payload, resp.Channel, resp.SequenceID)

	return nil
}
