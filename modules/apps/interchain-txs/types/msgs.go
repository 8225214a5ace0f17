package types

import (
	"math"
	"time"

	errorsmod "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"

	icatypes "github.com/cosmos/ibc-go/v8/modules/apps/27-interchain-accounts/types"

	"github.com/cosmos/interchaintxs/internal/validate"
)

// MaxTimeoutSeconds bounds MsgSubmitTx.Timeout so that the absolute timeout in
// nanoseconds fits in a uint64 for any block time before year 2262.
const MaxTimeoutSeconds = uint64(math.MaxInt64) / uint64(time.Second)

// MsgRegisterInterchainAccount asks the host to open an interchain account
// for the controller over connectionID.
type MsgRegisterInterchainAccount struct {
	ConnectionID        string `json:"connection_id"`
	InterchainAccountID string `json:"interchain_account_id"`
}

// NewMsgRegisterInterchainAccount creates a new MsgRegisterInterchainAccount instance
func NewMsgRegisterInterchainAccount(connectionID, interchainAccountID string) MsgRegisterInterchainAccount {
	return MsgRegisterInterchainAccount{
		ConnectionID:        connectionID,
		InterchainAccountID: interchainAccountID,
	}
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRegisterInterchainAccount) ValidateBasic() error {
	if err := validate.Identifier(msg.ConnectionID); err != nil {
		return errorsmod.Wrapf(ErrInvalidConnectionID, "%v", err)
	}

	if err := validate.Identifier(msg.InterchainAccountID); err != nil {
		return errorsmod.Wrapf(ErrInvalidAccountID, "%v", err)
	}

	return nil
}

// MsgSubmitTx asks the host to send instructions to the interchain account
// InterchainAccountID over ConnectionID. Timeout is relative, in seconds.
type MsgSubmitTx struct {
	ConnectionID        string        `json:"connection_id"`
	InterchainAccountID string        `json:"interchain_account_id"`
	Msgs                []Instruction `json:"msgs"`
	Memo                string        `json:"memo"`
	Timeout             uint64        `json:"timeout"`
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgSubmitTx) ValidateBasic() error {
	if err := validate.Identifier(msg.ConnectionID); err != nil {
		return errorsmod.Wrapf(ErrInvalidConnectionID, "%v", err)
	}

	if err := validate.Identifier(msg.InterchainAccountID); err != nil {
		return errorsmod.Wrapf(ErrInvalidAccountID, "%v", err)
	}

	if len(msg.Msgs) == 0 {
		return errorsmod.Wrap(ErrInvalidInstruction, "no instructions to submit")
	}

	for i, instruction := range msg.Msgs {
		if err := instruction.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(err, "instruction %d", i)
		}
	}

	if len(msg.Memo) > icatypes.MaxMemoCharLength {
		return errorsmod.Wrapf(ErrInvalidInstruction, "memo cannot be greater than %d characters", icatypes.MaxMemoCharLength)
	}

	if msg.Timeout == 0 {
		return errorsmod.Wrap(ErrInvalidInstruction, "timeout must be positive")
	}

	if msg.Timeout > MaxTimeoutSeconds {
		return errorsmod.Wrapf(ErrInvalidInstruction, "timeout cannot be greater than %d seconds", MaxTimeoutSeconds)
	}

	return nil
}

// PacketData frames the instructions as an ICS-27 EXECUTE_TX packet data. The
// instructions are carried as Anys of a protobuf encoded CosmosTx.
func (msg MsgSubmitTx) PacketData() (icatypes.InterchainAccountPacketData, error) {
	anys := make([]*codectypes.Any, len(msg.Msgs))
	for i, instruction := range msg.Msgs {
		anys[i] = instruction.ToAny()
	}

	bz, err := proto.Marshal(&icatypes.CosmosTx{Messages: anys})
	if err != nil {
		return icatypes.InterchainAccountPacketData{}, errorsmod.Wrapf(ErrInvalidInstruction, "cannot marshal CosmosTx: %v", err)
	}

	packetData := icatypes.InterchainAccountPacketData{
		Type: icatypes.EXECUTE_TX,
		Data: bz,
		Memo: msg.Memo,
	}

	if err := packetData.ValidateBasic(); err != nil {
		return icatypes.InterchainAccountPacketData{}, err
	}

	return packetData, nil
}

// TimeoutTimestamp returns the absolute packet timeout in nanoseconds relative to blockTime.
// This assumes time synchrony to a certain degree between the controller and counterparty host chain.
func (msg MsgSubmitTx) TimeoutTimestamp(blockTime time.Time) uint64 {
	return uint64(blockTime.UnixNano()) + msg.Timeout*uint64(time.Second)
}

// OutboundTx is what the controller hands to the host for dispatch: the
// submit message, its framed packet data, and the reply id the host must
// report local submission under.
type OutboundTx struct {
	ReplyID          uint64                                `json:"reply_id"`
	Msg              MsgSubmitTx                           `json:"msg"`
	PacketData       icatypes.InterchainAccountPacketData `json:"packet_data"`
	TimeoutTimestamp uint64                                `json:"timeout_timestamp"`
}

// DecodeCosmosTx returns the instructions framed in packet data.
func DecodeCosmosTx(packetData icatypes.InterchainAccountPacketData) ([]Instruction, error) {
	var cosmosTx icatypes.CosmosTx
	if err := proto.Unmarshal(packetData.Data, &cosmosTx); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidInstruction, "cannot unmarshal CosmosTx: %v", err)
	}

	instructions := make([]Instruction, len(cosmosTx.Messages))
	for i, protoAny := range cosmosTx.Messages {
		instructions[i] = InstructionFromAny(protoAny)
	}

	return instructions, nil
}
