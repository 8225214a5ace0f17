package keeper_test

import (
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/keeper"
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *KeeperTestSuite) TestInitGenesis() {
	payload := types.SudoPayload{AccountKey: suite.accountKey, Message: keeper.LabelDelegate}
	params := types.DefaultParams()
	params.DefaultTimeoutSeconds = 120

	genesisState := types.NewGenesisState(
		params,
		[]types.RegisteredAccount{{AccountKey: suite.accountKey, Slot: types.AccountSlot{Remote: &types.RemoteAccount{Address: remoteAddress, ConnectionID: connectionID}}}},
		&payload,
		[]types.InFlightPayload{{ChannelID: channelID, Sequence: sequence, Payload: payload}},
		[]types.AccountOutcome{{AccountKey: suite.accountKey, Outcome: types.NewErrorOutcome(keeper.LabelDelegate, "failed")}},
	)

	keeper.InitGenesis(suite.ctx, suite.keeper, *genesisState)

	remote, err := suite.keeper.ResolveAddress(suite.ctx, interchainAccountID)
	suite.Require().NoError(err)
	suite.Require().Equal(remoteAddress, remote.Address)

	storedParams, err := suite.keeper.GetParams(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(120), storedParams.DefaultTimeoutSeconds)

	outcome, found, err := suite.keeper.GetOutcome(suite.ctx, interchainAccountID)
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Require().Equal(types.OutcomeError, outcome.Kind)

	// the in-flight packet resolves after import
	suite.Require().NoError(suite.keeper.OnTimeout(suite.ctx, request(channelID, sequence)))

	// the pending payload is moved by the next reply
	suite.Require().NoError(suite.keeper.Reply(suite.ctx, types.Reply{ID: types.SudoPayloadReplyID, Data: receipt(channelID, sequence+1)}))
}

func (suite *KeeperTestSuite) TestInitGenesisInvalid() {
	genesisState := types.DefaultGenesis()
	genesisState.Params.DefaultTimeoutSeconds = 0

	suite.Require().Panics(func() {
		keeper.InitGenesis(suite.ctx, suite.keeper, *genesisState)
	})
}

func (suite *KeeperTestSuite) TestExportGenesis() {
	suite.openAccount()
	suite.submitDelegation(sequence)
	suite.submitDelegation(sequence + 1)
	suite.Require().NoError(suite.keeper.OnTimeout(suite.ctx, request(channelID, sequence)))

	_, err := suite.keeper.Delegate(suite.ctx, interchainAccountID, validator, sdkInt(1), nil)
	suite.Require().NoError(err)

	genesisState := keeper.ExportGenesis(suite.ctx, suite.keeper)
	suite.Require().NoError(genesisState.Validate())

	suite.Require().Len(genesisState.Accounts, 1)
	suite.Require().True(genesisState.Accounts[0].Slot.IsOpen())
	suite.Require().NotNil(genesisState.PendingPayload)
	suite.Require().Len(genesisState.InFlight, 1)
	suite.Require().Equal(sequence+1, genesisState.InFlight[0].Sequence)
	suite.Require().Len(genesisState.Outcomes, 1)

	// import into a fresh store and export again
	suite.SetupTest()
	keeper.InitGenesis(suite.ctx, suite.keeper, *genesisState)
	suite.Require().Equal(genesisState.InFlight, keeper.ExportGenesis(suite.ctx, suite.keeper).InFlight)
}
