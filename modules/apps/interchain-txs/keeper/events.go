package keeper

import (
	"strconv"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// emitRegisterInterchainAccountEvent emits an event signalling the registration of an interchain account.
func emitRegisterInterchainAccountEvent(ctx sdk.Context, accountKey string, msg types.MsgRegisterInterchainAccount) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterInterchainAccount,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAccountKey, accountKey),
			sdk.NewAttribute(types.AttributeKeyInterchainAccountID, msg.InterchainAccountID),
			sdk.NewAttribute(types.AttributeKeyConnectionID, msg.ConnectionID),
		),
	)
}

// emitSubmitTxEvent emits an event signalling a transaction was staged for submission.
func emitSubmitTxEvent(ctx sdk.Context, accountKey string, tx types.OutboundTx) {
	msgTypes := make([]string, len(tx.Msg.Msgs))
	for i, instruction := range tx.Msg.Msgs {
		msgTypes[i] = instruction.TypeURL
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitTx,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAccountKey, accountKey),
			sdk.NewAttribute(types.AttributeKeyConnectionID, tx.Msg.ConnectionID),
			sdk.NewAttribute(types.AttributeKeyMsgTypes, strings.Join(msgTypes, ",")),
			sdk.NewAttribute(types.AttributeKeyTimeoutTimestamp, strconv.FormatUint(tx.TimeoutTimestamp, 10)),
		),
	)
}

// emitSubmitTxAcceptedEvent emits an event signalling the host committed a staged transaction to a packet.
func emitSubmitTxAcceptedEvent(ctx sdk.Context, payload types.SudoPayload, channelID string, sequence uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSubmitTxAccepted,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAccountKey, payload.AccountKey),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
		),
	)
}

// emitChannelOpenAckEvent emits an event signalling the counterparty confirmed an interchain account.
func emitChannelOpenAckEvent(ctx sdk.Context, portID, channelID string, remote types.RemoteAccount) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeChannelOpenAck,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAccountKey, portID),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeyAddress, remote.Address),
			sdk.NewAttribute(types.AttributeKeyConnectionID, remote.ConnectionID),
		),
	)
}

// emitAcknowledgementEvent emits an event signalling the outcome recorded for a packet.
func emitAcknowledgementEvent(ctx sdk.Context, payload types.SudoPayload, channelID string, sequence uint64, outcome types.Outcome) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcknowledgement,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyAccountKey, payload.AccountKey),
			sdk.NewAttribute(types.AttributeKeyChannelID, channelID),
			sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(sequence, 10)),
			sdk.NewAttribute(types.AttributeKeyMessage, payload.Message),
			sdk.NewAttribute(types.AttributeKeyOutcome, string(outcome.Kind)),
		),
	)
}

// emitCleanAckResultsEvent emits an event signalling the removal of every recorded outcome.
func emitCleanAckResultsEvent(ctx sdk.Context, count uint64) {
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCleanAckResults,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(types.AttributeKeyCount, strconv.FormatUint(count, 10)),
		),
	)
}
