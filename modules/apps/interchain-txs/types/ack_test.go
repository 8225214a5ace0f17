package types_test

import (
	"github.com/cosmos/gogoproto/proto"

	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *TypesTestSuite) TestParseAcknowledgementResult() {
	var bz []byte

	testCases := []struct {
		name         string
		malleate     func()
		expResponses []types.MsgResponse
		expErr       error
	}{
		{
			"success msg responses",
			func() {
				var err error
				bz, err = proto.Marshal(&sdk.TxMsgData{
					MsgResponses: []*codectypes.Any{
						{TypeUrl: "/cosmos.staking.v1beta1.MsgDelegateResponse", Value: []byte{}},
						{TypeUrl: "/cosmos.bank.v1beta1.MsgSendResponse", Value: []byte{0x01}},
					},
				})
				suite.Require().NoError(err)
			},
			[]types.MsgResponse{
				{MsgType: "/cosmos.staking.v1beta1.MsgDelegateResponse", Data: []byte{}},
				{MsgType: "/cosmos.bank.v1beta1.MsgSendResponse", Data: []byte{0x01}},
			},
			nil,
		},
		{
			"success legacy data",
			func() {
				var err error
				bz, err = proto.Marshal(&sdk.TxMsgData{
					Data: []*sdk.MsgData{{MsgType: "/cosmos.staking.v1beta1.MsgDelegate", Data: []byte{0x02}}}, //nolint:staticcheck
				})
				suite.Require().NoError(err)
			},
			[]types.MsgResponse{{MsgType: "/cosmos.staking.v1beta1.MsgDelegate", Data: []byte{0x02}}},
			nil,
		},
		{
			"success empty result",
			func() {
				bz = []byte{}
			},
			[]types.MsgResponse{},
			nil,
		},
		{
			"undecodable result",
			func() {
				bz = []byte{0xff, 0xff, 0xff}
			},
			nil,
			types.ErrResponseDecode,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			tc.malleate()

			responses, err := types.ParseAcknowledgementResult(bz)
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Len(responses, len(tc.expResponses))
				for i, expResponse := range tc.expResponses {
					suite.Require().Equal(expResponse.MsgType, responses[i].MsgType)
					suite.Require().Equal(len(expResponse.Data), len(responses[i].Data))
				}
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *TypesTestSuite) TestOutcomes() {
	success := types.NewSuccessOutcome([]types.AckItem{
		{MsgType: "/a", Status: types.ItemInterpreted},
		{MsgType: "/b", Status: types.ItemUninterpreted},
	})
	suite.Require().Equal([]string{"/a", "/b"}, success.MsgTypes)
	suite.Require().Equal("success(/a,/b)", success.String())

	suite.Require().Equal("error(message: out of gas)", types.NewErrorOutcome("message", "out of gas").String())
	suite.Require().Equal("timeout(message)", types.NewTimeoutOutcome("message").String())
	suite.Require().Equal("unreadable_result(message: bad bytes)", types.NewUnreadableResultOutcome("message", "bad bytes").String())
	suite.Require().NotEqual(types.NewErrorOutcome("message", "bad bytes").Kind, types.NewUnreadableResultOutcome("message", "bad bytes").Kind)

	suite.Require().NoError(types.OutcomeTimeout.Validate())
	suite.Require().NoError(types.OutcomeUnreadableResult.Validate())
	suite.Require().Error(types.OutcomeKind("pending").Validate())
}
