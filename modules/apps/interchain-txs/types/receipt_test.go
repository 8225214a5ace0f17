package types_test

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *TypesTestSuite) TestParseSubmitTxResponse() {
	var bz []byte

	testCases := []struct {
		name     string
		malleate func()
		expResp  types.MsgSubmitTxResponse
		expErr   error
	}{
		{
			"success",
			func() {},
			types.MsgSubmitTxResponse{SequenceID: 7, Channel: "chan-1"},
			nil,
		},
		{
			"success with unknown field",
			func() {
				bz = protowire.AppendTag(bz, 9, protowire.BytesType)
				bz = protowire.AppendString(bz, "ignored")
			},
			types.MsgSubmitTxResponse{SequenceID: 7, Channel: "chan-1"},
			nil,
		},
		{
			"empty data",
			func() {
				bz = nil
			},
			types.MsgSubmitTxResponse{},
			types.ErrInvalidReceipt,
		},
		{
			"missing channel",
			func() {
				bz = types.MsgSubmitTxResponse{SequenceID: 7}.Marshal()
			},
			types.MsgSubmitTxResponse{},
			types.ErrInvalidReceipt,
		},
		{
			"truncated",
			func() {
				bz = bz[:len(bz)-1]
			},
			types.MsgSubmitTxResponse{},
			types.ErrInvalidReceipt,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			bz = types.MsgSubmitTxResponse{SequenceID: 7, Channel: "chan-1"}.Marshal()

			tc.malleate()

			resp, err := types.ParseSubmitTxResponse(bz)
			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().Equal(tc.expResp, resp)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
