package keeper

import (
	"errors"
	"fmt"
	"strings"

	"cosmossdk.io/collections"
	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/interchaintxs/modules/apps/interchain-txs/types"
)

// Keeper defines the interchain transactions controller keeper. All
// correlation state lives in the KV store; nothing is kept in memory across
// invocations.
type Keeper struct {
	storeService corestore.KVStoreService
	cdc          codec.Codec

	hostQuerier types.HostQuerier
	decoders    types.ResponseDecoders

	// the address owning every interchain account of this controller
	owner string

	Schema collections.Schema
	// params stores the controller parameters
	params collections.Item[types.Params]
	// accounts maps (account key) => account slot
	accounts collections.Map[string, types.AccountSlot]
	// replyPayloads maps (reply id) => payload awaiting the local submission reply
	replyPayloads collections.Map[uint64, types.SudoPayload]
	// sudoPayloads maps (channel id, sequence) => payload awaiting the remote result
	sudoPayloads collections.Map[collections.Pair[string, uint64], types.SudoPayload]
	// outcomes maps (account key) => result of the last submitted transaction
	outcomes collections.Map[string, types.Outcome]
}

// NewKeeper creates a new interchain transactions controller Keeper instance
func NewKeeper(
	cdc codec.Codec, storeService corestore.KVStoreService,
	hostQuerier types.HostQuerier, decoders types.ResponseDecoders, owner string,
) Keeper {
	if strings.TrimSpace(owner) == "" {
		panic(errors.New("owner must be non-empty"))
	}

	if hostQuerier == nil {
		panic(errors.New("host querier must be set"))
	}

	if decoders == nil {
		panic(errors.New("response decoders must be set"))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		cdc:          cdc,
		hostQuerier:  hostQuerier,
		decoders:     decoders,
		owner:        owner,

		params: collections.NewItem(
			sb,
			types.ParamsKey,
			"params",
			types.NewJSONValueCodec[types.Params](),
		),
		accounts: collections.NewMap(
			sb,
			types.AccountsKeyPrefix,
			"accounts",
			// key: (account key)
			collections.StringKey,
			types.NewJSONValueCodec[types.AccountSlot](),
		),
		replyPayloads: collections.NewMap(
			sb,
			types.ReplyPayloadKeyPrefix,
			"reply_payloads",
			// key: (reply id)
			collections.Uint64Key,
			types.NewJSONValueCodec[types.SudoPayload](),
		),
		sudoPayloads: collections.NewMap(
			sb,
			types.SudoPayloadKeyPrefix,
			"sudo_payloads",
			// key: (channel id, sequence)
			collections.PairKeyCodec(collections.StringKey, collections.Uint64Key),
			types.NewJSONValueCodec[types.SudoPayload](),
		),
		outcomes: collections.NewMap(
			sb,
			types.OutcomesKeyPrefix,
			"outcomes",
			// key: (account key)
			collections.StringKey,
			types.NewJSONValueCodec[types.Outcome](),
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema

	return k
}

// Logger returns the application logger, scoped to the associated module
func (Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Owner returns the address owning the interchain accounts of this controller.
func (k Keeper) Owner() string {
	return k.owner
}

// GetParams returns the controller parameters, or the defaults if none were set.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	params, err := k.params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams(), nil
	}

	return params, err
}

// SetParams validates and sets the controller parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	return k.params.Set(ctx, params)
}

// accountKey returns the account key of interchainAccountID of the owner.
func (k Keeper) accountKey(interchainAccountID string) (string, error) {
	return types.NewAccountKey(k.owner, interchainAccountID)
}
