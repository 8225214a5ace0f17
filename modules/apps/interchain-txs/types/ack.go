package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgResponse is the typed response of one executed instruction.
type MsgResponse struct {
	MsgType string
	Data    []byte
}

// ParseAcknowledgementResult decodes the result of a successful ICS-27
// acknowledgement, a protobuf encoded sdk.TxMsgData. Counterparties running
// cosmos-sdk v0.46+ fill MsgResponses; older ones fill the deprecated Data.
func ParseAcknowledgementResult(bz []byte) ([]MsgResponse, error) {
	var txMsgData sdk.TxMsgData
	if err := proto.Unmarshal(bz, &txMsgData); err != nil {
		return nil, errorsmod.Wrapf(ErrResponseDecode, "cannot unmarshal TxMsgData: %v", err)
	}

	if len(txMsgData.MsgResponses) > 0 {
		responses := make([]MsgResponse, len(txMsgData.MsgResponses))
		for i, protoAny := range txMsgData.MsgResponses {
			responses[i] = MsgResponse{MsgType: protoAny.TypeUrl, Data: protoAny.Value}
		}
		return responses, nil
	}

	//nolint:staticcheck // legacy acknowledgements
	responses := make([]MsgResponse, len(txMsgData.Data))
	//nolint:staticcheck // legacy acknowledgements
	for i, msgData := range txMsgData.Data {
		responses[i] = MsgResponse{MsgType: msgData.MsgType, Data: msgData.Data}
	}

	return responses, nil
}

// ResponseDecoder interprets the response data of one instruction type and
// returns a short human readable description of it.
type ResponseDecoder func(data []byte) (string, error)

// ResponseDecoders resolves the decoder of a message response type.
type ResponseDecoders interface {
	GetDecoder(msgType string) (ResponseDecoder, bool)
}
