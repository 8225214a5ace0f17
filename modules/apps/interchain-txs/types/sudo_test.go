package types_test

import (
	"encoding/json"

	clienttypes "github.com/cosmos/ibc-go/v8/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *TypesTestSuite) TestRequestPacketID() {
	packet := channeltypes.NewPacket([]byte("data"), 7, "icacontroller-owner", "chan-1", "icahost", "chan-9", clienttypes.NewHeight(1, 100), 0)

	channel, sequence, err := types.NewRequestPacket(packet).PacketID()
	suite.Require().NoError(err)
	suite.Require().Equal("chan-1", channel)
	suite.Require().Equal(uint64(7), sequence)

	request := types.NewRequestPacket(packet)
	request.Sequence = nil
	_, _, err = request.PacketID()
	suite.Require().ErrorIs(err, types.ErrInvalidRequestPacket)
	suite.Require().Contains(err.Error(), "sequence not found")

	request = types.NewRequestPacket(packet)
	request.SourceChannel = nil
	_, _, err = request.PacketID()
	suite.Require().ErrorIs(err, types.ErrInvalidRequestPacket)
	suite.Require().Contains(err.Error(), "channel_id not found")
}

func (suite *TypesTestSuite) TestSudoMsgJSON() {
	var msg types.SudoMsg
	err := json.Unmarshal([]byte(`{"timeout":{"request":{"sequence":3,"source_channel":"chan-2"}}}`), &msg)
	suite.Require().NoError(err)
	suite.Require().Nil(msg.Response)
	suite.Require().NotNil(msg.Timeout)

	channel, sequence, err := msg.Timeout.Request.PacketID()
	suite.Require().NoError(err)
	suite.Require().Equal("chan-2", channel)
	suite.Require().Equal(uint64(3), sequence)
}
