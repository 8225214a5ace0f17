package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrAccountNotReady          = errorsmod.Register(ModuleName, 2, "interchain account is not created yet")
	ErrNoPendingPayload         = errorsmod.Register(ModuleName, 3, "no pending payload staged for reply")
	ErrUnknownSequence          = errorsmod.Register(ModuleName, 4, "no payload tracked for packet sequence")
	ErrHandshakeMetadataInvalid = errorsmod.Register(ModuleName, 5, "cannot parse counterparty version")
	ErrResponseDecode           = errorsmod.Register(ModuleName, 6, "cannot decode acknowledgement response")
	ErrUnsupportedReplyID       = errorsmod.Register(ModuleName, 7, "unsupported reply message id")
	ErrInvalidRequestPacket     = errorsmod.Register(ModuleName, 8, "invalid request packet")
	ErrInvalidReceipt           = errorsmod.Register(ModuleName, 9, "invalid submit tx response")
	ErrInvalidInstruction       = errorsmod.Register(ModuleName, 10, "invalid instruction")
	ErrInvalidAccountID         = errorsmod.Register(ModuleName, 11, "invalid interchain account id")
	ErrInvalidConnectionID      = errorsmod.Register(ModuleName, 12, "invalid connection id")
	ErrInvalidParams            = errorsmod.Register(ModuleName, 13, "invalid parameters")
	ErrInvalidGenesis           = errorsmod.Register(ModuleName, 14, "invalid genesis state")
	ErrUnknownRequest           = errorsmod.Register(ModuleName, 15, "unknown request")
)
