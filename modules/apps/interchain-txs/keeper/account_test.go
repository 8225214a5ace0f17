package keeper_test

import (
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *KeeperTestSuite) TestRegister() {
	msg, err := suite.keeper.Register(suite.ctx, connectionID, interchainAccountID)
	suite.Require().NoError(err)
	suite.Require().Equal(types.NewMsgRegisterInterchainAccount(connectionID, interchainAccountID), msg)

	slot, found, err := suite.keeper.GetAccount(suite.ctx, interchainAccountID)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().False(slot.IsOpen())

	_, err = suite.keeper.ResolveAddress(suite.ctx, interchainAccountID)
	suite.Require().ErrorIs(err, types.ErrAccountNotReady)

	events := suite.ctx.EventManager().Events()
	suite.Require().NotEmpty(events)
	suite.Require().Equal(types.EventTypeRegisterInterchainAccount, events[len(events)-1].Type)

	_, err = suite.keeper.Register(suite.ctx, "", interchainAccountID)
	suite.Require().ErrorIs(err, types.ErrInvalidConnectionID)
}

func (suite *KeeperTestSuite) TestReRegisterResetsConfirmedAccount() {
	suite.openAccount()

	_, err := suite.keeper.Register(suite.ctx, connectionID, interchainAccountID)
	suite.Require().NoError(err)

	_, err = suite.keeper.ResolveAddress(suite.ctx, interchainAccountID)
	suite.Require().ErrorIs(err, types.ErrAccountNotReady)

	suite.Require().Len(suite.logger.WarnLogs, 1)
	address, found := suite.logger.WarnLogs[0].Value("address")
	suite.Require().True(found)
	suite.Require().Equal(remoteAddress, address)
}

func (suite *KeeperTestSuite) TestOnChannelOpen() {
	var (
		portID  string
		version string
	)

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
			"success: account was not registered",
			func() {
				var err error
				portID, err = types.NewAccountKey(owner, "acc-2")
				suite.Require().NoError(err)
			},
			nil,
		},
		{
			"malformed metadata",
			func() {
				version = "not json"
			},
			types.ErrHandshakeMetadataInvalid,
		},
		{
			"empty address",
			func() {
				version = suite.counterpartyVersion("", connectionID)
			},
			types.ErrHandshakeMetadataInvalid,
		},
		{
			"empty controller connection id",
			func() {
				version = suite.counterpartyVersion(remoteAddress, "")
			},
			types.ErrHandshakeMetadataInvalid,
		},
		{
			"invalid port id",
			func() {
				portID = "p"
			},
			types.ErrInvalidAccountID,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			_, err := suite.keeper.Register(suite.ctx, connectionID, interchainAccountID)
			suite.Require().NoError(err)

			portID = suite.accountKey
			version = suite.counterpartyVersion(remoteAddress, connectionID)

			tc.malleate()

			err = suite.keeper.OnChannelOpen(suite.ctx, portID, channelID, counterpartyChannel, version)

			if tc.expErr == nil {
				suite.Require().NoError(err)

				if portID == suite.accountKey {
					remote, err := suite.keeper.ResolveAddress(suite.ctx, interchainAccountID)
					suite.Require().NoError(err)
					suite.Require().Equal(types.RemoteAccount{Address: remoteAddress, ConnectionID: connectionID}, remote)
				} else {
					remote, err := suite.keeper.ResolveAddress(suite.ctx, "acc-2")
					suite.Require().NoError(err)
					suite.Require().Equal(remoteAddress, remote.Address)
				}
			} else {
				suite.Require().ErrorIs(err, tc.expErr)

				slot, found, err := suite.keeper.GetAccount(suite.ctx, interchainAccountID)
				suite.Require().NoError(err)
				suite.Require().True(found)
				suite.Require().False(slot.IsOpen())
			}
		})
	}
}

func (suite *KeeperTestSuite) TestGetAccountAbsent() {
	_, found, err := suite.keeper.GetAccount(suite.ctx, interchainAccountID)
	suite.Require().NoError(err)
	suite.Require().False(found)

	_, err = suite.keeper.ResolveAddress(suite.ctx, interchainAccountID)
	suite.Require().ErrorIs(err, types.ErrAccountNotReady)
}
