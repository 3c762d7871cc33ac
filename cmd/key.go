package cmd

import (
	"fmt"

	"github.com/jsphweid/ukulala/music"
	"github.com/jsphweid/ukulala/progression"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key <key>",
	Short: "Shows the diatonic chords of a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := music.ParseKey(args[0])
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closeStore(ctx, s.store)

		chords, err := progression.Diatonic(key, s.table, s.prefs)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Key of %s (%s)\n", key, s.tuning.Label())
		return printResolved(cmd.OutOrStdout(), s.tuning, chords)
	},
}
