package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	iqtypes "github.com/cosmos/interchaintxs/modules/apps/interchain-queries/types"
)

// kvKeyJSON is the JSON output of a decoded key.
type kvKeyJSON struct {
	Path string `json:"path"`
	Key  string `json:"key"`
}

func newKVKeyJSON(kv iqtypes.KVKey) kvKeyJSON {
	return kvKeyJSON{Path: kv.Path, Key: iqtypes.EncodeHex(kv.Key)}
}

func kvKeyCmd(a *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kvkey",
		Short: "Encode and decode a single remote storage key",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "encode [path] [hex-key]",
			Short:   "Encode a store path and a hex key as <path>/<hex-key>",
			Args:    cobra.ExactArgs(2),
			Example: "icactl kvkey encode bank 0214",
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := iqtypes.DecodeHex(args[1])
				if err != nil {
					return err
				}

				kv := iqtypes.NewKVKey(args[0], key)
				if err := kv.Validate(); err != nil {
					return err
				}

				a.log.Debug("encoded key", zap.String("path", kv.Path), zap.Int("key_len", len(kv.Key)))
				return a.print(cmd, kv.String(), kv.String())
			},
		},
		&cobra.Command{
			Use:     "decode [encoded-key]",
			Short:   "Decode <path>/<hex-key> into its store path and key",
			Args:    cobra.ExactArgs(1),
			Example: "icactl kvkey decode bank/0214",
			RunE: func(cmd *cobra.Command, args []string) error {
				kv, err := iqtypes.KVKeyFromString(args[0])
				if err != nil {
					return err
				}

				out := newKVKeyJSON(kv)
				return a.print(cmd, out, out.Path+" "+out.Key)
			},
		},
	)

	return cmd
}

func kvKeysCmd(a *appState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kvkeys",
		Short: "Join and split lists of remote storage keys",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "join [encoded-key]...",
			Short:   "Validate encoded keys and join them into a list",
			Example: "icactl kvkeys join params/01 staking/21ff",
			RunE: func(cmd *cobra.Command, args []string) error {
				kvs := make(iqtypes.KVKeys, len(args))
				for i, arg := range args {
					kv, err := iqtypes.KVKeyFromString(arg)
					if err != nil {
						return err
					}
					kvs[i] = kv
				}

				if err := kvs.Validate(); err != nil {
					return err
				}

				return a.print(cmd, kvs.String(), kvs.String())
			},
		},
		&cobra.Command{
			Use:     "decode [encoded-keys]",
			Short:   "Decode a comma separated list of encoded keys",
			Args:    cobra.ExactArgs(1),
			Example: "icactl kvkeys decode params/01,staking/21ff",
			RunE: func(cmd *cobra.Command, args []string) error {
				kvs, err := iqtypes.KVKeysFromString(args[0])
				if err != nil {
					return err
				}

				a.log.Debug("decoded keys", zap.Int("count", len(kvs)))

				out := make([]kvKeyJSON, len(kvs))
				lines := make([]string, len(kvs))
				for i, kv := range kvs {
					out[i] = newKVKeyJSON(kv)
					lines[i] = out[i].Path + " " + out[i].Key
				}

				return a.print(cmd, out, strings.Join(lines, "\n"))
			},
		},
	)

	return cmd
}
