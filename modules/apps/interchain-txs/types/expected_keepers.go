package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// HostQuerier defines the queries the controller makes to its host chain
type HostQuerier interface {
	// InterchainAccountAddress returns the address the host recorded for the
	// interchain account interchainAccountID of owner over connectionID.
	InterchainAccountAddress(ctx sdk.Context, owner, interchainAccountID, connectionID string) (string, error)
}
