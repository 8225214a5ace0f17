package keeper_test

import (
	"encoding/json"
	"errors"

	"github.com/golang/mock/gomock"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/keeper"
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

func (suite *KeeperTestSuite) TestInterchainAccountAddress() {
	suite.hostQuerier.EXPECT().
		InterchainAccountAddress(gomock.Any(), owner, interchainAccountID, connectionID).
		Return(remoteAddress, nil)

	addr, err := suite.keeper.InterchainAccountAddress(suite.ctx, interchainAccountID, connectionID)
	suite.Require().NoError(err)
	suite.Require().Equal(remoteAddress, addr)

	expErr := errors.New("interchain account not found")
	suite.hostQuerier.EXPECT().
		InterchainAccountAddress(gomock.Any(), owner, "acc-2", connectionID).
		Return("", expErr)

	_, err = suite.keeper.InterchainAccountAddress(suite.ctx, "acc-2", connectionID)
	suite.Require().ErrorIs(err, expErr)

	_, err = suite.keeper.InterchainAccountAddress(suite.ctx, interchainAccountID, "")
	suite.Require().ErrorIs(err, types.ErrInvalidConnectionID)
}

func (suite *KeeperTestSuite) TestQuery() {
	var msg types.QueryMsg

	testCases := []struct {
		name     string
		malleate func()
		expResp  string
		expErr   error
	}{
		{
			"interchain account address",
			func() {
				suite.hostQuerier.EXPECT().
					InterchainAccountAddress(gomock.Any(), owner, interchainAccountID, connectionID).
					Return(remoteAddress, nil)

				msg = types.QueryMsg{InterchainAccountAddress: &types.QueryInterchainAccountAddress{
					InterchainAccountID: interchainAccountID,
					ConnectionID:        connectionID,
				}}
			},
			`{"interchain_account_address":"` + remoteAddress + `"}`,
			nil,
		},
		{
			"interchain account address from contract",
			func() {
				suite.openAccount()
				msg = types.QueryMsg{InterchainAccountAddressFromContract: &types.QueryAccount{InterchainAccountID: interchainAccountID}}
			},
			`{"address":"` + remoteAddress + `","connection_id":"` + connectionID + `"}`,
			nil,
		},
		{
			"interchain account address from contract: not ready",
			func() {
				msg = types.QueryMsg{InterchainAccountAddressFromContract: &types.QueryAccount{InterchainAccountID: interchainAccountID}}
			},
			"",
			types.ErrAccountNotReady,
		},
		{
			"acknowledgement result",
			func() {
				suite.openAccount()
				suite.submitDelegation(sequence)
				suite.Require().NoError(suite.keeper.OnTimeout(suite.ctx, request(channelID, sequence)))

				msg = types.QueryMsg{AcknowledgementResult: &types.QueryAccount{InterchainAccountID: interchainAccountID}}
			},
			`{"outcome":{"kind":"timeout","label":"` + keeper.LabelDelegate + `"}}`,
			nil,
		},
		{
			"acknowledgement result: none recorded",
			func() {
				msg = types.QueryMsg{AcknowledgementResult: &types.QueryAccount{InterchainAccountID: interchainAccountID}}
			},
			`{"outcome":null}`,
			nil,
		},
		{
			"empty query",
			func() {
				msg = types.QueryMsg{}
			},
			"",
			types.ErrUnknownRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			tc.malleate()

			bz, err := suite.keeper.Query(suite.ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				suite.Require().JSONEq(tc.expResp, string(bz))
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}

func (suite *KeeperTestSuite) TestExecute() {
	var msg types.ExecuteMsg

	testCases := []struct {
		name     string
		malleate func()
		check    func(resp types.ExecuteResponse)
		expErr   error
	}{
		{
			"register",
			func() {
				msg = types.ExecuteMsg{Register: &types.ExecuteRegister{ConnectionID: connectionID, InterchainAccountID: interchainAccountID}}
			},
			func(resp types.ExecuteResponse) {
				suite.Require().NotNil(resp.Register)
				suite.Require().Nil(resp.SubmitTx)
			},
			nil,
		},
		{
			"delegate",
			func() {
				suite.openAccount()

				var delegate types.ExecuteDelegate
				suite.Require().NoError(json.Unmarshal([]byte(`{"interchain_account_id":"acc-1","validator":"`+validator+`","amount":"100"}`), &delegate))
				msg = types.ExecuteMsg{Delegate: &delegate}
			},
			func(resp types.ExecuteResponse) {
				suite.Require().NotNil(resp.SubmitTx)
				suite.Require().Equal(types.DefaultTimeoutSeconds, resp.SubmitTx.Msg.Timeout)
			},
			nil,
		},
		{
			"undelegate: account not ready",
			func() {
				msg = types.ExecuteMsg{Undelegate: &types.ExecuteDelegate{InterchainAccountID: interchainAccountID, Validator: validator, Amount: sdkInt(1)}}
			},
			nil,
			types.ErrAccountNotReady,
		},
		{
			"delegate: empty amount",
			func() {
				suite.openAccount()
				msg = types.ExecuteMsg{Delegate: &types.ExecuteDelegate{InterchainAccountID: interchainAccountID, Validator: validator}}
			},
			nil,
			types.ErrInvalidInstruction,
		},
		{
			"swap",
			func() {
				suite.openAccount()
				msg = types.ExecuteMsg{Swap: &types.ExecuteSwap{
					Routes:              []types.SwapAmountInRoute{{PoolID: 2, TokenOutDenom: "uosmo"}},
					InterchainAccountID: interchainAccountID,
					TokenIn:             "uatom",
					TokenInAmount:       "10",
				}}
			},
			func(resp types.ExecuteResponse) {
				suite.Require().NotNil(resp.SubmitTx)
			},
			nil,
		},
		{
			"clean ack results",
			func() {
				suite.openAccount()
				suite.submitDelegation(sequence)
				suite.Require().NoError(suite.keeper.OnTimeout(suite.ctx, request(channelID, sequence)))

				msg = types.ExecuteMsg{}
				suite.Require().NoError(json.Unmarshal([]byte(`{"clean_ack_results":{}}`), &msg))
			},
			func(resp types.ExecuteResponse) {
				suite.Require().Equal(uint64(1), resp.Cleared)
			},
			nil,
		},
		{
			"empty message",
			func() {
				msg = types.ExecuteMsg{}
			},
			nil,
			types.ErrUnknownRequest,
		},
	}

	for _, tc := range testCases {
		tc := tc

		suite.Run(tc.name, func() {
			suite.SetupTest() // reset

			tc.malleate()

			resp, err := suite.keeper.Execute(suite.ctx, msg)

			if tc.expErr == nil {
				suite.Require().NoError(err)
				tc.check(resp)
			} else {
				suite.Require().ErrorIs(err, tc.expErr)
			}
		})
	}
}
