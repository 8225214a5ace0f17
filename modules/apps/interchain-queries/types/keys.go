package types

const (
	// ModuleName defines the interchain queries module name
	ModuleName = "interchainqueries"

	// KVPathKeyDelimiter separates the store path from the hex encoded key of a KVKey
	KVPathKeyDelimiter = "/"

	// KVKeysDelimiter separates the encoded KVKeys of a list
	KVKeysDelimiter = ","
)

// Store keys of the remote chain modules a query may read from.
const (
	BankStoreKey    = "bank"
	StakingStoreKey = "staking"
	ParamsStoreKey  = "params"

	// KeyBondDenom is the staking params key holding the bond denomination
	KeyBondDenom = "BondDenom"
)

// Key prefixes used by the remote chain modules. They must match the layout of
// the remote cosmos-sdk version, not the local one.
const (
	BalancesPrefix byte = 0x02
	ValidatorsKey  byte = 0x21
	DelegationKey  byte = 0x31
)

// Fields usable in a transactions filter.
const (
	RecipientField = "transfer.recipient"
	HeightField    = "tx.height"
)
