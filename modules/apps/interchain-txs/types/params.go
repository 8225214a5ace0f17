package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the parameters of the interchain transactions controller.
type Params struct {
	// DefaultTimeoutSeconds is applied to submissions that do not set a timeout
	DefaultTimeoutSeconds uint64 `json:"default_timeout_seconds"`
	// StakingDenom is the denom of delegate and undelegate instructions
	StakingDenom string `json:"staking_denom"`
	// SwapMinTokenOut is the minimum output amount of swap instructions
	SwapMinTokenOut sdkmath.Int `json:"swap_min_token_out"`
}

// NewParams creates a new parameter configuration for the controller
func NewParams(defaultTimeoutSeconds uint64, stakingDenom string, swapMinTokenOut sdkmath.Int) Params {
	return Params{
		DefaultTimeoutSeconds: defaultTimeoutSeconds,
		StakingDenom:          stakingDenom,
		SwapMinTokenOut:       swapMinTokenOut,
	}
}

// DefaultParams is the default parameter configuration for the controller
func DefaultParams() Params {
	return NewParams(DefaultTimeoutSeconds, DefaultStakingDenom, sdkmath.NewIntFromUint64(1))
}

// Validate validates all controller parameters
func (p Params) Validate() error {
	if p.DefaultTimeoutSeconds == 0 {
		return errorsmod.Wrap(ErrInvalidParams, "default timeout must be positive")
	}

	if p.DefaultTimeoutSeconds > MaxTimeoutSeconds {
		return errorsmod.Wrapf(ErrInvalidParams, "default timeout cannot be greater than %d seconds", MaxTimeoutSeconds)
	}

	if err := sdk.ValidateDenom(p.StakingDenom); err != nil {
		return errorsmod.Wrapf(ErrInvalidParams, "staking denom: %v", err)
	}

	if p.SwapMinTokenOut.IsNil() || !p.SwapMinTokenOut.IsPositive() {
		return errorsmod.Wrap(ErrInvalidParams, "swap minimum token out must be positive")
	}

	return nil
}

// String implements fmt.Stringer.
func (p Params) String() string {
	return fmt.Sprintf("default_timeout_seconds: %d, staking_denom: %s, swap_min_token_out: %s",
		p.DefaultTimeoutSeconds, p.StakingDenom, p.SwapMinTokenOut)
}
