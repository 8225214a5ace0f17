package types

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"
)

// RequestPacket is the packet a host callback refers to. Fields are optional
// on the wire; the controller only requires SourceChannel and Sequence.
type RequestPacket struct {
	Sequence           *uint64             `json:"sequence,omitempty"`
	SourcePort         *string             `json:"source_port,omitempty"`
	SourceChannel      *string             `json:"source_channel,omitempty"`
	DestinationPort    *string             `json:"destination_port,omitempty"`
	DestinationChannel *string             `json:"destination_channel,omitempty"`
	Data               []byte              `json:"data,omitempty"`
	TimeoutHeight      *clienttypes.Height `json:"timeout_height,omitempty"`
	TimeoutTimestamp   *uint64             `json:"timeout_timestamp,omitempty"`
}

// NewRequestPacket converts an IBC packet into a RequestPacket.
func NewRequestPacket(packet channeltypes.Packet) RequestPacket {
	timeoutHeight := packet.TimeoutHeight
	return RequestPacket{
		Sequence:           &packet.Sequence,
		SourcePort:         &packet.SourcePort,
		SourceChannel:      &packet.SourceChannel,
		DestinationPort:    &packet.DestinationPort,
		DestinationChannel: &packet.DestinationChannel,
		Data:               packet.Data,
		TimeoutHeight:      &timeoutHeight,
		TimeoutTimestamp:   &packet.TimeoutTimestamp,
	}
}

// PacketID returns the (channel, sequence) pair identifying the packet.
func (rp RequestPacket) PacketID() (string, uint64, error) {
	if rp.Sequence == nil {
		return "", 0, errorsmod.Wrap(ErrInvalidRequestPacket, "sequence not found")
	}

	if rp.SourceChannel == nil || *rp.SourceChannel == "" {
		return "", 0, errorsmod.Wrap(ErrInvalidRequestPacket, "channel_id not found")
	}

	return *rp.SourceChannel, *rp.Sequence, nil
}

// Reply is the host callback reporting the result of a message the controller
// asked to be notified about.
type Reply struct {
	ID   uint64 `json:"id"`
	Data []byte `json:"data,omitempty"`
}

// SudoMsg is a host callback about a packet or channel. Exactly one field is set.
type SudoMsg struct {
	Response *SudoResponse `json:"response,omitempty"`
	Error    *SudoError    `json:"error,omitempty"`
	Timeout  *SudoTimeout  `json:"timeout,omitempty"`
	OpenAck  *SudoOpenAck  `json:"open_ack,omitempty"`
}

// SudoResponse reports a successful acknowledgement with its result data.
type SudoResponse struct {
	Request RequestPacket `json:"request"`
	Data    []byte        `json:"data"`
}

// SudoError reports an error acknowledgement.
type SudoError struct {
	Request RequestPacket `json:"request"`
	Details string        `json:"details"`
}

// SudoTimeout reports a timed out packet.
type SudoTimeout struct {
	Request RequestPacket `json:"request"`
}

// SudoOpenAck reports the acknowledgement of a channel opening.
type SudoOpenAck struct {
	PortID                string `json:"port_id"`
	ChannelID             string `json:"channel_id"`
	CounterpartyChannelID string `json:"counterparty_channel_id"`
	CounterpartyVersion   string `json:"counterparty_version"`
}
