package types_test

import (
	"math"
	"strings"
	"time"

	icatypes "github.com/cosmos/ibc-go/v8/modules/apps/27-interchain-accounts/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

const delegateTypeURL = "/cosmos.staking.v1beta1.MsgDelegate"

func (suite *TypesTestSuite) TestMsgRegisterInterchainAccountValidateBasic() {
	suite.Require().NoError(types.NewMsgRegisterInterchainAccount(connectionID, interchainAccountID).ValidateBasic())
	suite.Require().ErrorIs(types.NewMsgRegisterInterchainAccount("", interchainAccountID).ValidateBasic(), types.ErrInvalidConnectionID)
	suite.Require().ErrorIs(types.NewMsgRegisterInterchainAccount(connectionID, "acc/1").ValidateBasic(), types.ErrInvalidAccountID)
}

func (suite *TypesTestSuite) TestMsgSubmitTxValidateBasic() {
	var msg types.MsgSubmitTx

	testCases := []struct {
		name     string
		malleate func()
		expErr   error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"invalid connection id",
			func() {
				msg.ConnectionID = " "
			},
			types.ErrInvalidConnectionID,
		},
		{
			"invalid interchain account id",
			func() {
				msg.InterchainAccountID = ""
			},
			types.ErrInvalidAccountID,
		},
		{
			"no instructions",
			func() {
				msg.Msgs = nil
			},
			types.ErrInvalidInstruction,
		},
		{
			"instruction without type url",
			func() {
				msg.Msgs = []types.Instruction{types.NewInstruction("cosmos.staking.v1beta1.MsgDelegate", nil)}
			},
			types.ErrInvalidInstruction,
		},
		{
			"memo too long",
			func() {
				msg.Memo = strings.Repeat("m", icatypes.MaxMemoCharLength+1)
			},
			types.ErrInvalidInstruction,
		},
		{
			"zero timeout",
			func() {
				msg.Timeout = 0
			},
			types.ErrInvalidInstruction,
		},
		{
			"success: max timeout",
			func() {
				msg.Timeout = types.MaxTimeoutSeconds
			},
			nil,
		},
		{
			"timeout overflows nanoseconds",
			func() {
				msg.Timeout = types.MaxTimeoutSeconds + 1
			},
			types.ErrInvalidInstruction,
		},
		{
			"max uint64 timeout",
			func() {
				msg.Timeout = math.MaxUint64
			},
			types.ErrInvalidInstruction,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			msg = types.MsgSubmitTx{
				ConnectionID:        connectionID,
				InterchainAccountID: interchainAccountID,
				Msgs:                []types.Instruction{types.NewInstruction(delegateTypeURL, []byte{0x0a, 0x01})},
				Timeout:             types.DefaultTimeoutSeconds,
			}

			tc.malleate()

			err := msg.ValidateBasic()
			if tc.expErr == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TypesTestSuite) TestMsgSubmitTxPacketData() {
	instructions := []types.Instruction{
		types.NewInstruction(delegateTypeURL, []byte{0x0a, 0x01, 0x61}),
		types.NewInstruction("/osmosis.gamm.v1beta1.MsgSwapExactAmountIn", []byte{0x0a, 0x01, 0x62}),
	}

	msg := types.MsgSubmitTx{
		ConnectionID:        connectionID,
		InterchainAccountID: interchainAccountID,
		Msgs:                instructions,
		Memo:                "memo",
		Timeout:             60,
	}

	packetData, err := msg.PacketData()
	suite.Require().NoError(err)
	suite.Require().Equal(icatypes.EXECUTE_TX, packetData.Type)
	suite.Require().Equal("memo", packetData.Memo)

	decoded, err := types.DecodeCosmosTx(packetData)
	suite.Require().NoError(err)
	suite.Require().Equal(instructions, decoded)

	blockTime := time.Unix(1_700_000_000, 0)
	suite.Require().Equal(uint64(blockTime.Add(time.Minute).UnixNano()), msg.TimeoutTimestamp(blockTime))

	msg.Timeout = types.MaxTimeoutSeconds
	suite.Require().Greater(msg.TimeoutTimestamp(blockTime), uint64(blockTime.UnixNano()))
}

func (suite *TypesTestSuite) TestDecodeCosmosTxInvalid() {
	_, err := types.DecodeCosmosTx(icatypes.InterchainAccountPacketData{Type: icatypes.EXECUTE_TX, Data: []byte{0xff, 0xff}})
	suite.Require().ErrorIs(err, types.ErrInvalidInstruction)
}

func (suite *TypesTestSuite) TestInstructionAny() {
	instruction := types.NewInstruction(delegateTypeURL, []byte{0x01})
	suite.Require().NoError(instruction.ValidateBasic())
	suite.Require().Equal(instruction, types.InstructionFromAny(instruction.ToAny()))

	suite.Require().ErrorIs(types.NewInstruction("/", nil).ValidateBasic(), types.ErrInvalidInstruction)
}
