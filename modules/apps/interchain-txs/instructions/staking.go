package instructions

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

var (
	// MsgDelegateTypeURL is the type url of the staking delegate message
	MsgDelegateTypeURL = sdk.MsgTypeURL(&stakingtypes.MsgDelegate{})
	// MsgDelegateResponseTypeURL is the type url of the staking delegate response
	MsgDelegateResponseTypeURL = sdk.MsgTypeURL(&stakingtypes.MsgDelegateResponse{})
	// MsgUndelegateTypeURL is the type url of the staking undelegate message
	MsgUndelegateTypeURL = sdk.MsgTypeURL(&stakingtypes.MsgUndelegate{})
	// MsgUndelegateResponseTypeURL is the type url of the staking undelegate response
	MsgUndelegateResponseTypeURL = sdk.MsgTypeURL(&stakingtypes.MsgUndelegateResponse{})
)

// NewDelegateInstruction returns the instruction delegating amount from delegator to validator.
func NewDelegateInstruction(delegator, validator string, amount sdk.Coin) (types.Instruction, error) {
	return newStakingInstruction(stakingtypes.NewMsgDelegate(delegator, validator, amount), amount)
}

// NewUndelegateInstruction returns the instruction undelegating amount of delegator from validator.
func NewUndelegateInstruction(delegator, validator string, amount sdk.Coin) (types.Instruction, error) {
	return newStakingInstruction(stakingtypes.NewMsgUndelegate(delegator, validator, amount), amount)
}

func newStakingInstruction(msg proto.Message, amount sdk.Coin) (types.Instruction, error) {
	if err := amount.Validate(); err != nil {
		return types.Instruction{}, errorsmod.Wrapf(types.ErrInvalidInstruction, "amount: %v", err)
	}

	if !amount.IsPositive() {
		return types.Instruction{}, errorsmod.Wrap(types.ErrInvalidInstruction, "amount must be positive")
	}

	bz, err := proto.Marshal(msg)
	if err != nil {
		return types.Instruction{}, errorsmod.Wrapf(types.ErrInvalidInstruction, "cannot marshal %s: %v", sdk.MsgTypeURL(msg), err)
	}

	return types.NewInstruction(sdk.MsgTypeURL(msg), bz), nil
}

// DecodeDelegateResponse interprets the response of a delegate instruction.
func DecodeDelegateResponse(data []byte) (string, error) {
	var resp stakingtypes.MsgDelegateResponse
	if err := proto.Unmarshal(data, &resp); err != nil {
		return "", errorsmod.Wrapf(types.ErrResponseDecode, "MsgDelegateResponse: %v", err)
	}

	return "delegated", nil
}

// DecodeUndelegateResponse interprets the response of an undelegate
// instruction. The response must carry the unbonding completion time.
func DecodeUndelegateResponse(data []byte) (string, error) {
	var resp stakingtypes.MsgUndelegateResponse
	if err := proto.Unmarshal(data, &resp); err != nil {
		return "", errorsmod.Wrapf(types.ErrResponseDecode, "MsgUndelegateResponse: %v", err)
	}

	if resp.CompletionTime.IsZero() {
		return "", errorsmod.Wrap(types.ErrResponseDecode, "failed to get completion time")
	}

	return fmt.Sprintf("undelegation completion time: %s", resp.CompletionTime.UTC().Format("2006-01-02T15:04:05Z")), nil
}
