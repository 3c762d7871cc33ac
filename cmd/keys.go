package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keysCmd)
}

var keysCmd = &cobra.Command{
	Use:   "keys [key]...",
	Short: "Shows or sets the keys random picks from",
	Long: `With no arguments, prints the keys "ukulala random" picks from. With
arguments, saves them as the new selection.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx, 0)
		if err != nil {
			return err
		}
		defer closeStore(ctx, store)

		if len(args) == 0 {
			keys, ok := store.SelectedKeys(ctx)
			if !ok {
				keys = music.AllKeys[:]
			}
			fmt.Fprintln(cmd.OutOrStdout(), joinKeys(keys))
			return nil
		}

		keys := make([]model.Key, 0, len(args))
		for _, a := range args {
			k, err := music.ParseKey(a)
			if err != nil {
				return err
			}
			keys = append(keys, k)
		}
		store.SetSelectedKeys(ctx, keys)
		fmt.Fprintln(cmd.OutOrStdout(), joinKeys(keys))
		return nil
	},
}

func joinKeys(keys []model.Key) string {
	ss := make([]string, 0, len(keys))
	for _, k := range keys {
		ss = append(ss, string(k))
	}
	return strings.Join(ss, " ")
}
