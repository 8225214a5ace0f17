package cmd

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	iqtypes "github.com/cosmos/interchaintxs/modules/apps/interchain-queries/types"
)

const (
	flagConnectionID = "connection-id"
	flagZoneID       = "zone-id"
	flagUpdatePeriod = "update-period"
	flagMinHeight    = "min-height"
)

func registerCmd(a *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Build interchain query registrations",
	}

	cmd.PersistentFlags().String(flagConnectionID, "", "connection the query is registered over")
	cmd.PersistentFlags().String(flagZoneID, "", "zone id of the remote chain")
	cmd.PersistentFlags().String(flagUpdatePeriod, "1", "number of blocks between query updates")
	if err := a.viper.BindPFlags(cmd.PersistentFlags()); err != nil {
		panic(err)
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "balance [address] [denom]",
			Short:   "Register a query of the balance of an address in a denom",
			Args:    cobra.ExactArgs(2),
			Example: "icactl register balance cosmos1... uatom --connection-id connection-0 --update-period 10",
			RunE: func(cmd *cobra.Command, args []string) error {
				updatePeriod, err := a.updatePeriod()
				if err != nil {
					return err
				}

				msg, err := iqtypes.NewRegisterBalanceQuery(a.viper.GetString(flagConnectionID), a.viper.GetString(flagZoneID), args[0], args[1], updatePeriod)
				if err != nil {
					return err
				}

				return a.printRegistration(cmd, msg)
			},
		},
		&cobra.Command{
			Use:     "delegations [delegator] [validator]...",
			Short:   "Register a query of the delegations of a delegator to validators",
			Args:    cobra.MinimumNArgs(2),
			Example: "icactl register delegations cosmos1... cosmosvaloper1... --connection-id connection-0",
			RunE: func(cmd *cobra.Command, args []string) error {
				updatePeriod, err := a.updatePeriod()
				if err != nil {
					return err
				}

				msg, err := iqtypes.NewRegisterDelegatorDelegationsQuery(a.viper.GetString(flagConnectionID), a.viper.GetString(flagZoneID), args[0], args[1:], updatePeriod)
				if err != nil {
					return err
				}

				return a.printRegistration(cmd, msg)
			},
		},
		transfersCmd(a),
	)

	return cmd
}

func transfersCmd(a *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transfers [recipient]",
		Short:   "Register a query of the transfers to a recipient",
		Args:    cobra.ExactArgs(1),
		Example: "icactl register transfers cosmos1... --connection-id connection-0 --min-height 100",
		RunE: func(cmd *cobra.Command, args []string) error {
			updatePeriod, err := a.updatePeriod()
			if err != nil {
				return err
			}

			minHeight, err := cast.ToUint64E(a.viper.Get(flagMinHeight))
			if err != nil {
				return fmt.Errorf("invalid %s: %w", flagMinHeight, err)
			}

			msg, err := iqtypes.NewRegisterTransfersQuery(a.viper.GetString(flagConnectionID), a.viper.GetString(flagZoneID), args[0], updatePeriod, minHeight)
			if err != nil {
				return err
			}

			return a.printRegistration(cmd, msg)
		},
	}

	cmd.Flags().String(flagMinHeight, "0", "minimum height of the matched transfers")
	if err := a.viper.BindPFlag(flagMinHeight, cmd.Flags().Lookup(flagMinHeight)); err != nil {
		panic(err)
	}

	return cmd
}

func (a *appState) updatePeriod() (uint64, error) {
	updatePeriod, err := cast.ToUint64E(a.viper.Get(flagUpdatePeriod))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", flagUpdatePeriod, err)
	}

	return updatePeriod, nil
}

func (a *appState) printRegistration(cmd *cobra.Command, msg iqtypes.MsgRegisterInterchainQuery) error {
	a.log.Info(
		"built interchain query registration",
		zap.String("query_type", string(msg.QueryType)),
		zap.String("connection_id", msg.ConnectionID),
		zap.Uint64("update_period", msg.UpdatePeriod),
	)

	text := msg.Keys.String()
	if msg.QueryType == iqtypes.QueryTypeTX {
		text = msg.TransactionsFilter
	}

	return a.print(cmd, msg, text)
}
