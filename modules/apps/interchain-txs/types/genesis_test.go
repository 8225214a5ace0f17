package types_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *TypesTestSuite) TestParamsValidate() {
	suite.Require().NoError(types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.DefaultTimeoutSeconds = 0
	suite.Require().ErrorIs(params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.DefaultTimeoutSeconds = types.MaxTimeoutSeconds + 1
	suite.Require().ErrorIs(params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.StakingDenom = "1"
	suite.Require().ErrorIs(params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.SwapMinTokenOut = sdkmath.ZeroInt()
	suite.Require().ErrorIs(params.Validate(), types.ErrInvalidParams)

	params = types.DefaultParams()
	params.SwapMinTokenOut = sdkmath.Int{}
	suite.Require().ErrorIs(params.Validate(), types.ErrInvalidParams)
}

func (suite *TypesTestSuite) TestGenesisStateValidate() {
	var genesisState *types.GenesisState

	accountKey, err := types.NewAccountKey(owner, interchainAccountID)
	suite.Require().NoError(err)

	testCases := []struct {
		name     string
		malleate func()
		expPass  bool
	}{
		{
			"success: default genesis",
			func() {
				genesisState = types.DefaultGenesis()
			},
			true,
		},
		{
			"success: populated genesis",
			func() {},
			true,
		},
		{
			"invalid params",
			func() {
				genesisState.Params.DefaultTimeoutSeconds = 0
			},
			false,
		},
		{
			"duplicate account",
			func() {
				genesisState.Accounts = append(genesisState.Accounts, genesisState.Accounts[0])
			},
			false,
		},
		{
			"invalid account key",
			func() {
				genesisState.Accounts[0].AccountKey = "a"
			},
			false,
		},
		{
			"open account without address",
			func() {
				genesisState.Accounts[0].Slot.Remote.Address = ""
			},
			false,
		},
		{
			"invalid pending payload",
			func() {
				genesisState.PendingPayload = &types.SudoPayload{Message: "message"}
			},
			false,
		},
		{
			"zero sequence",
			func() {
				genesisState.InFlight[0].Sequence = 0
			},
			false,
		},
		{
			"duplicate in flight payload",
			func() {
				genesisState.InFlight = append(genesisState.InFlight, genesisState.InFlight[0])
			},
			false,
		},
		{
			"duplicate outcome",
			func() {
				genesisState.Outcomes = append(genesisState.Outcomes, genesisState.Outcomes[0])
			},
			false,
		},
		{
			"unknown outcome kind",
			func() {
				genesisState.Outcomes[0].Outcome.Kind = "pending"
			},
			false,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			payload := types.SudoPayload{AccountKey: accountKey, Message: "message"}
			genesisState = types.NewGenesisState(
				types.DefaultParams(),
				[]types.RegisteredAccount{{AccountKey: accountKey, Slot: types.AccountSlot{Remote: &types.RemoteAccount{Address: remoteAddress, ConnectionID: connectionID}}}},
				&payload,
				[]types.InFlightPayload{{ChannelID: "chan-1", Sequence: 7, Payload: payload}},
				[]types.AccountOutcome{{AccountKey: accountKey, Outcome: types.NewTimeoutOutcome("message")}},
			)

			tc.malleate()

			err := genesisState.Validate()
			if tc.expPass {
				suite.Require().NoError(err)
			} else {
				suite.Require().Error(err)
			}
		})
	}
}
