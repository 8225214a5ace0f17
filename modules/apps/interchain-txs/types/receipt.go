package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

const (
	submitTxResponseSequenceIDField protowire.Number = 1
	submitTxResponseChannelField    protowire.Number = 2
)

// MsgSubmitTxResponse is the receipt the host returns once a submitted
// transaction has been committed to a packet: the packet sequence and the
// source channel it was sent on. It is protobuf encoded.
type MsgSubmitTxResponse struct {
	SequenceID uint64 `json:"sequence_id"`
	Channel    string `json:"channel"`
}

// Marshal encodes the receipt with the protobuf wire format.
func (r MsgSubmitTxResponse) Marshal() []byte {
	var bz []byte
	if r.SequenceID != 0 {
		bz = protowire.AppendTag(bz, submitTxResponseSequenceIDField, protowire.VarintType)
		bz = protowire.AppendVarint(bz, r.SequenceID)
	}
	if r.Channel != "" {
		bz = protowire.AppendTag(bz, submitTxResponseChannelField, protowire.BytesType)
		bz = protowire.AppendString(bz, r.Channel)
	}
	return bz
}

// Unmarshal decodes a protobuf encoded receipt. Unknown fields are skipped.
func (r *MsgSubmitTxResponse) Unmarshal(bz []byte) error {
	*r = MsgSubmitTxResponse{}

	for len(bz) > 0 {
		num, typ, n := protowire.ConsumeTag(bz)
		if n < 0 {
			return errorsmod.Wrapf(ErrInvalidReceipt, "malformed tag: %v", protowire.ParseError(n))
		}
		bz = bz[n:]

		switch {
		case num == submitTxResponseSequenceIDField && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(bz)
			if n < 0 {
				return errorsmod.Wrapf(ErrInvalidReceipt, "malformed sequence_id: %v", protowire.ParseError(n))
			}
			r.SequenceID = v
			bz = bz[n:]
		case num == submitTxResponseChannelField && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(bz)
			if n < 0 {
				return errorsmod.Wrapf(ErrInvalidReceipt, "malformed channel: %v", protowire.ParseError(n))
			}
			r.Channel = v
			bz = bz[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, bz)
			if n < 0 {
				return errorsmod.Wrapf(ErrInvalidReceipt, "malformed field %d: %v", num, protowire.ParseError(n))
			}
			bz = bz[n:]
		}
	}

	return nil
}

// ParseSubmitTxResponse decodes the receipt of a local submission and checks
// it identifies a packet.
func ParseSubmitTxResponse(bz []byte) (MsgSubmitTxResponse, error) {
	if len(bz) == 0 {
		return MsgSubmitTxResponse{}, errorsmod.Wrap(ErrInvalidReceipt, "no data")
	}

	var resp MsgSubmitTxResponse
	if err := resp.Unmarshal(bz); err != nil {
		return MsgSubmitTxResponse{}, err
	}

	if strings.TrimSpace(resp.Channel) == "" {
		return MsgSubmitTxResponse{}, errorsmod.Wrap(ErrInvalidReceipt, "channel not found")
	}

	return resp, nil
}
