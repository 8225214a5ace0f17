package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"go.uber.org/multierr"

	sdk "github.com/cosmos/cosmos-sdk/types"

	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Sudo dispatches a host callback about a packet or channel.
func (k Keeper) Sudo(ctx sdk.Context, msg types.SudoMsg) error {
	switch {
	case msg.Response != nil:
		return k.OnResponse(ctx, msg.Response.Request, msg.Response.Data)
	case msg.Error != nil:
		return k.OnError(ctx, msg.Error.Request, msg.Error.Details)
	case msg.Timeout != nil:
		return k.OnTimeout(ctx, msg.Timeout.Request)
	case msg.OpenAck != nil:
		return k.OnChannelOpen(ctx, msg.OpenAck.PortID, msg.OpenAck.ChannelID, msg.OpenAck.CounterpartyChannelID, msg.OpenAck.CounterpartyVersion)
	default:
		return errorsmod.Wrap(types.ErrUnknownRequest, "empty sudo message")
	}
}

// OnAcknowledgementPacket records the outcome of an ICS-27 packet acknowledgement.
func (k Keeper) OnAcknowledgementPacket(ctx sdk.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	var ack channeltypes.Acknowledgement
	if err := k.cdc.UnmarshalJSON(acknowledgement, &ack); err != nil {
		return errorsmod.Wrapf(types.ErrResponseDecode, "cannot unmarshal ICS-27 packet acknowledgement: %v", err)
	}

	request := types.NewRequestPacket(packet)

	switch resp := ack.Response.(type) {
	case *channeltypes.Acknowledgement_Result:
		return k.OnResponse(ctx, request, resp.Result)
	case *channeltypes.Acknowledgement_Error:
		return k.OnError(ctx, request, resp.Error)
	default:
		return errorsmod.Wrapf(types.ErrResponseDecode, "unexpected acknowledgement response %T", ack.Response)
	}
}

// OnTimeoutPacket records the timeout of an ICS-27 packet.
func (k Keeper) OnTimeoutPacket(ctx sdk.Context, packet channeltypes.Packet) error {
	return k.OnTimeout(ctx, types.NewRequestPacket(packet))
}

// OnResponse records the successful acknowledgement of request. Each message
// response is interpreted by its registered decoder; responses without a
// decoder or failing to decode are recorded as such and never fail the call.
func (k Keeper) OnResponse(ctx sdk.Context, request types.RequestPacket, data []byte) error {
	return k.recordOutcome(ctx, request, func(payload types.SudoPayload) types.Outcome {
		return k.interpretResponse(ctx, payload, data)
	})
}

// OnError records the error acknowledgement of request.
func (k Keeper) OnError(ctx sdk.Context, request types.RequestPacket, details string) error {
	return k.recordOutcome(ctx, request, func(payload types.SudoPayload) types.Outcome {
		k.Logger(ctx).Info("interchain transaction failed", "account_key", payload.AccountKey, "details", details)
		return types.NewErrorOutcome(payload.Message, details)
	})
}

// OnTimeout records the timeout of request.
func (k Keeper) OnTimeout(ctx sdk.Context, request types.RequestPacket) error {
	return k.recordOutcome(ctx, request, func(payload types.SudoPayload) types.Outcome {
		k.Logger(ctx).Info("interchain transaction timed out", "account_key", payload.AccountKey)
		return types.NewTimeoutOutcome(payload.Message)
	})
}

// recordOutcome consumes the payload tracked for request and stores the
// outcome built from it under the payload account key.
func (k Keeper) recordOutcome(ctx sdk.Context, request types.RequestPacket, buildOutcome func(types.SudoPayload) types.Outcome) error {
	channelID, sequence, err := request.PacketID()
	if err != nil {
		return err
	}

	key := collections.Join(channelID, sequence)
	payload, err := k.sudoPayloads.Get(ctx, key)
	if errors.Is(err, collections.ErrNotFound) {
		k.Logger(ctx).Error("result for an untracked packet", "channel_id", channelID, "sequence", sequence)
		return errorsmod.Wrapf(types.ErrUnknownSequence, "channel %s sequence %d", channelID, sequence)
	}
	if err != nil {
		return err
	}

	outcome := buildOutcome(payload)

	if err := k.sudoPayloads.Remove(ctx, key); err != nil {
		return err
	}

	if err := k.outcomes.Set(ctx, payload.AccountKey, outcome); err != nil {
		return err
	}

	emitAcknowledgementEvent(ctx, payload, channelID, sequence, outcome)

	return nil
}

func (k Keeper) interpretResponse(ctx sdk.Context, payload types.SudoPayload, data []byte) types.Outcome {
	responses, err := types.ParseAcknowledgementResult(data)
	if err != nil {
		k.Logger(ctx).Error("failed to parse acknowledgement result", "account_key", payload.AccountKey, "error", err)
		return types.NewUnreadableResultOutcome(payload.Message, err.Error())
	}

	var decodeErr error
	items := make([]types.AckItem, len(responses))
	for i, resp := range responses {
		items[i] = types.AckItem{MsgType: resp.MsgType, Status: types.ItemUninterpreted}

		decode, found := k.decoders.GetDecoder(resp.MsgType)
		if !found {
			k.Logger(ctx).Debug("acknowledgement of this type is not interpreted", "account_key", payload.AccountKey, "msg_type", resp.MsgType)
			continue
		}

		detail, err := decode(resp.Data)
		if err != nil {
			items[i].Status = types.ItemDecodeFailed
			items[i].Detail = err.Error()
			decodeErr = multierr.Append(decodeErr, errorsmod.Wrapf(err, "item %d (%s)", i, resp.MsgType))
			continue
		}

		items[i].Status = types.ItemInterpreted
		items[i].Detail = detail
	}

	if decodeErr != nil {
		k.Logger(ctx).Error("failed to interpret acknowledgement items", "account_key", payload.AccountKey, "error", decodeErr)
	}

	return types.NewSuccessOutcome(items)
}
