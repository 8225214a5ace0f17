package instructions

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"google.golang.org/protobuf/encoding/protowire"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

const (
	// MsgSwapExactAmountInTypeURL is the type url of the osmosis gamm exact amount in swap
	MsgSwapExactAmountInTypeURL = "/osmosis.gamm.v1beta1.MsgSwapExactAmountIn"
	// MsgSwapExactAmountInResponseTypeURL is the type url of its response
	MsgSwapExactAmountInResponseTypeURL = "/osmosis.gamm.v1beta1.MsgSwapExactAmountInResponse"
)

// osmosis.gamm.v1beta1.MsgSwapExactAmountIn field numbers
const (
	swapSenderField            protowire.Number = 1
	swapRoutesField            protowire.Number = 2
	swapTokenInField           protowire.Number = 3
	swapTokenOutMinAmountField protowire.Number = 4

	routePoolIDField        protowire.Number = 1
	routeTokenOutDenomField protowire.Number = 2

	coinDenomField  protowire.Number = 1
	coinAmountField protowire.Number = 2

	swapResponseTokenOutAmountField protowire.Number = 1
)

// MsgSwapExactAmountIn swaps an exact amount of TokenIn along Routes.
type MsgSwapExactAmountIn struct {
	Sender            string
	Routes            []types.SwapAmountInRoute
	TokenIn           sdk.Coin
	TokenOutMinAmount sdkmath.Int
}

// ValidateBasic performs stateless validation of the swap.
func (msg MsgSwapExactAmountIn) ValidateBasic() error {
	if msg.Sender == "" {
		return errorsmod.Wrap(types.ErrInvalidInstruction, "swap sender cannot be empty")
	}

	if len(msg.Routes) == 0 {
		return errorsmod.Wrap(types.ErrInvalidInstruction, "swap needs at least one route")
	}

	for i, route := range msg.Routes {
		if err := sdk.ValidateDenom(route.TokenOutDenom); err != nil {
			return errorsmod.Wrapf(types.ErrInvalidInstruction, "route %d: %v", i, err)
		}
	}

	if err := msg.TokenIn.Validate(); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidInstruction, "token in: %v", err)
	}

	if !msg.TokenIn.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidInstruction, "token in amount must be positive")
	}

	if msg.TokenOutMinAmount.IsNil() || !msg.TokenOutMinAmount.IsPositive() {
		return errorsmod.Wrap(types.ErrInvalidInstruction, "token out min amount must be positive")
	}

	return nil
}

// Marshal encodes the swap with the protobuf wire format.
func (msg MsgSwapExactAmountIn) Marshal() []byte {
	var bz []byte
	bz = appendString(bz, swapSenderField, msg.Sender)

	for _, route := range msg.Routes {
		var routeBz []byte
		if route.PoolID != 0 {
			routeBz = protowire.AppendTag(routeBz, routePoolIDField, protowire.VarintType)
			routeBz = protowire.AppendVarint(routeBz, route.PoolID)
		}
		routeBz = appendString(routeBz, routeTokenOutDenomField, route.TokenOutDenom)

		bz = protowire.AppendTag(bz, swapRoutesField, protowire.BytesType)
		bz = protowire.AppendBytes(bz, routeBz)
	}

	var coinBz []byte
	coinBz = appendString(coinBz, coinDenomField, msg.TokenIn.Denom)
	coinBz = appendString(coinBz, coinAmountField, msg.TokenIn.Amount.String())
	bz = protowire.AppendTag(bz, swapTokenInField, protowire.BytesType)
	bz = protowire.AppendBytes(bz, coinBz)

	return appendString(bz, swapTokenOutMinAmountField, msg.TokenOutMinAmount.String())
}

func appendString(bz []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return bz
	}

	bz = protowire.AppendTag(bz, num, protowire.BytesType)
	return protowire.AppendString(bz, s)
}

// NewSwapInstruction returns the instruction swapping tokenIn held by sender along routes.
func NewSwapInstruction(sender string, routes []types.SwapAmountInRoute, tokenIn sdk.Coin, tokenOutMinAmount sdkmath.Int) (types.Instruction, error) {
	msg := MsgSwapExactAmountIn{
		Sender:            sender,
		Routes:            routes,
		TokenIn:           tokenIn,
		TokenOutMinAmount: tokenOutMinAmount,
	}

	if err := msg.ValidateBasic(); err != nil {
		return types.Instruction{}, err
	}

	return types.NewInstruction(MsgSwapExactAmountInTypeURL, msg.Marshal()), nil
}

// DecodeSwapResponse interprets the response of a swap instruction.
func DecodeSwapResponse(data []byte) (string, error) {
	tokenOutAmount := ""

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return "", errorsmod.Wrapf(types.ErrResponseDecode, "MsgSwapExactAmountInResponse: %v", protowire.ParseError(n))
		}
		data = data[n:]

		if num == swapResponseTokenOutAmountField && typ == protowire.BytesType {
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return "", errorsmod.Wrapf(types.ErrResponseDecode, "token_out_amount: %v", protowire.ParseError(n))
			}
			tokenOutAmount = v
			data = data[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return "", errorsmod.Wrapf(types.ErrResponseDecode, "field %d: %v", num, protowire.ParseError(n))
		}
		data = data[n:]
	}

	amount, ok := sdkmath.NewIntFromString(tokenOutAmount)
	if !ok {
		return "", errorsmod.Wrapf(types.ErrResponseDecode, "invalid token out amount %q", tokenOutAmount)
	}

	return fmt.Sprintf("swapped for %s", amount), nil
}
