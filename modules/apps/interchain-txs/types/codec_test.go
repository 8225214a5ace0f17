package types_test

import (
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *TypesTestSuite) TestJSONValueCodec() {
	codec := types.NewJSONValueCodec[types.AccountSlot]()

	slot := types.AccountSlot{Remote: &types.RemoteAccount{Address: remoteAddress, ConnectionID: connectionID}}
	bz, err := codec.Encode(slot)
	suite.Require().NoError(err)
	suite.Require().JSONEq(`{"remote":{"address":"`+remoteAddress+`","connection_id":"`+connectionID+`"}}`, string(bz))

	decoded, err := codec.Decode(bz)
	suite.Require().NoError(err)
	suite.Require().Equal(slot, decoded)

	empty, err := codec.Encode(types.AccountSlot{})
	suite.Require().NoError(err)
	suite.Require().Equal("{}", string(empty))

	_, err = codec.Decode([]byte("{"))
	suite.Require().Error(err)

	suite.Require().Equal("json/types.AccountSlot", codec.ValueType())
}

func (suite *TypesTestSuite) TestExecuteMsgValidateBasic() {
	suite.Require().NoError(types.ExecuteMsg{CleanAckResults: &struct{}{}}.ValidateBasic())
	suite.Require().ErrorIs(types.ExecuteMsg{}.ValidateBasic(), types.ErrUnknownRequest)
	suite.Require().ErrorIs(types.ExecuteMsg{
		Register:        &types.ExecuteRegister{},
		CleanAckResults: &struct{}{},
	}.ValidateBasic(), types.ErrUnknownRequest)

	suite.Require().NoError(types.QueryMsg{AcknowledgementResult: &types.QueryAccount{}}.ValidateBasic())
	suite.Require().ErrorIs(types.QueryMsg{}.ValidateBasic(), types.ErrUnknownRequest)
}
