package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrMalformedAddress    = errorsmod.Register(ModuleName, 2, "malformed kv key")
	ErrInvalidKVPath       = errorsmod.Register(ModuleName, 3, "invalid kv key path")
	ErrInvalidAddress      = errorsmod.Register(ModuleName, 4, "invalid bech32 address")
	ErrInvalidQueryType    = errorsmod.Register(ModuleName, 5, "invalid query type")
	ErrEmptyKeys           = errorsmod.Register(ModuleName, 6, "keys cannot be empty")
	ErrInvalidFilter       = errorsmod.Register(ModuleName, 7, "invalid transactions filter")
	ErrInvalidUpdatePeriod = errorsmod.Register(ModuleName, 8, "invalid update period")
	ErrInvalidQueryID      = errorsmod.Register(ModuleName, 9, "invalid query id")
	ErrInvalidConnectionID = errorsmod.Register(ModuleName, 10, "invalid connection id")
)
