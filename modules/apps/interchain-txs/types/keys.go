package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the interchain transactions module name
	ModuleName = "interchaintxs"

	// StoreKey is the store key string for interchain transactions
	StoreKey = ModuleName

	// SudoPayloadReplyID is the reply id under which the payload of the in-flight
	// submission is staged until the host confirms local submission.
	SudoPayloadReplyID uint64 = 1

	// DefaultTimeoutSeconds is the default timeout of a submitted transaction: two weeks
	DefaultTimeoutSeconds uint64 = 60 * 60 * 24 * 7 * 2

	// DefaultStakingDenom is the default denom of delegate and undelegate instructions
	DefaultStakingDenom = "stake"

	// DefaultSwapMinTokenOut is the default minimum output amount of swap instructions
	DefaultSwapMinTokenOut = "1"
)

var (
	// ParamsKey is the store prefix of the module parameters
	ParamsKey = collections.NewPrefix(0)
	// AccountsKeyPrefix is the store prefix of the interchain accounts registry
	AccountsKeyPrefix = collections.NewPrefix(1)
	// ReplyPayloadKeyPrefix is the store prefix of payloads staged until the submission reply
	ReplyPayloadKeyPrefix = collections.NewPrefix(2)
	// SudoPayloadKeyPrefix is the store prefix of payloads keyed by (channel, sequence)
	SudoPayloadKeyPrefix = collections.NewPrefix(3)
	// OutcomesKeyPrefix is the store prefix of the acknowledgement results
	OutcomesKeyPrefix = collections.NewPrefix(4)
)
