package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/internal/validate"
	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Register records a pending interchain account interchainAccountID over
// connectionID and returns the registration the host must dispatch. The
// account stays unconfirmed until the channel open acknowledgement. A
// previously confirmed account under the same id is reset.
func (k Keeper) Register(ctx sdk.Context, connectionID, interchainAccountID string) (types.MsgRegisterInterchainAccount, error) {
	msg := types.NewMsgRegisterInterchainAccount(connectionID, interchainAccountID)
	if err := msg.ValidateBasic(); err != nil {
		return types.MsgRegisterInterchainAccount{}, err
	}

	accountKey, err := k.accountKey(interchainAccountID)
	if err != nil {
		return types.MsgRegisterInterchainAccount{}, err
	}

	existing, found, err := k.getAccountSlot(ctx, accountKey)
	if err != nil {
		return types.MsgRegisterInterchainAccount{}, err
	}

	if found && existing.IsOpen() {
		k.Logger(ctx).Warn(
			"re-registering confirmed interchain account",
			"account_key", accountKey,
			"address", existing.Remote.Address,
			"connection_id", existing.Remote.ConnectionID,
		)
	}

	if err := k.accounts.Set(ctx, accountKey, types.AccountSlot{}); err != nil {
		return types.MsgRegisterInterchainAccount{}, err
	}

	k.Logger(ctx).Info("interchain account registration requested", "account_key", accountKey, "connection_id", connectionID)
	emitRegisterInterchainAccountEvent(ctx, accountKey, msg)

	return msg, nil
}

// OnChannelOpen confirms the interchain account bound to portID with the
// address and connection reported in the counterparty version. On invalid
// metadata the account is left untouched.
func (k Keeper) OnChannelOpen(ctx sdk.Context, portID, channelID, counterpartyChannelID, counterpartyVersion string) error {
	if err := validate.PortID(portID); err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAccountID, "port id %s: %v", portID, err)
	}

	remote, err := types.ParseCounterpartyVersion(counterpartyVersion)
	if err != nil {
		k.Logger(ctx).Error("failed to parse counterparty version", "port_id", portID, "channel_id", channelID, "error", err)
		return err
	}

	_, found, err := k.getAccountSlot(ctx, portID)
	if err != nil {
		return err
	}

	if !found {
		k.Logger(ctx).Info("channel opened for an account that was not registered", "port_id", portID, "channel_id", channelID)
	}

	if err := k.accounts.Set(ctx, portID, types.AccountSlot{Remote: &remote}); err != nil {
		return err
	}

	k.Logger(ctx).Info(
		"interchain account confirmed",
		"port_id", portID,
		"channel_id", channelID,
		"counterparty_channel_id", counterpartyChannelID,
		"address", remote.Address,
	)
	emitChannelOpenAckEvent(ctx, portID, channelID, remote)

	return nil
}

// GetAccount returns the registry slot of interchainAccountID and whether it exists.
func (k Keeper) GetAccount(ctx sdk.Context, interchainAccountID string) (types.AccountSlot, bool, error) {
	accountKey, err := k.accountKey(interchainAccountID)
	if err != nil {
		return types.AccountSlot{}, false, err
	}

	return k.getAccountSlot(ctx, accountKey)
}

// ResolveAddress returns the confirmed remote account of interchainAccountID.
// It fails with ErrAccountNotReady until the channel open acknowledgement.
func (k Keeper) ResolveAddress(ctx sdk.Context, interchainAccountID string) (types.RemoteAccount, error) {
	slot, found, err := k.GetAccount(ctx, interchainAccountID)
	if err != nil {
		return types.RemoteAccount{}, err
	}

	if !found || !slot.IsOpen() {
		return types.RemoteAccount{}, errorsmod.Wrapf(types.ErrAccountNotReady, "interchain account id %s", interchainAccountID)
	}

	return *slot.Remote, nil
}

func (k Keeper) getAccountSlot(ctx sdk.Context, accountKey string) (types.AccountSlot, bool, error) {
	slot, err := k.accounts.Get(ctx, accountKey)
	if errors.Is(err, collections.ErrNotFound) {
		return types.AccountSlot{}, false, nil
	}
	if err != nil {
		return types.AccountSlot{}, false, err
	}

	return slot, true, nil
}
