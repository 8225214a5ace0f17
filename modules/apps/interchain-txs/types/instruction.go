package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
)

// Instruction is an opaque, typed message executed by the interchain account
// on the counterparty chain. TypeURL identifies the message type, Value is its
// serialized body; neither is interpreted by the controller.
type Instruction struct {
	TypeURL string `json:"type_url"`
	Value   []byte `json:"value"`
}

// NewInstruction creates a new Instruction instance
func NewInstruction(typeURL string, value []byte) Instruction {
	return Instruction{
		TypeURL: typeURL,
		Value:   value,
	}
}

// ValidateBasic checks the instruction carries a type.
func (i Instruction) ValidateBasic() error {
	if !strings.HasPrefix(i.TypeURL, "/") || len(i.TypeURL) < 2 {
		return errorsmod.Wrapf(ErrInvalidInstruction, "type url %q must start with '/'", i.TypeURL)
	}

	return nil
}

// ToAny wraps the instruction in a protobuf Any without decoding it.
func (i Instruction) ToAny() *codectypes.Any {
	return &codectypes.Any{
		TypeUrl: i.TypeURL,
		Value:   i.Value,
	}
}

// InstructionFromAny is the inverse of ToAny.
func InstructionFromAny(protoAny *codectypes.Any) Instruction {
	return NewInstruction(protoAny.TypeUrl, protoAny.Value)
}
