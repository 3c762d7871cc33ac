package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/ukulala/music"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <key> <numeral>...",
	Short: "Prints the chord names of a progression in a key",
	Long: `Prints the chord names of a progression in a key, e.g.

  ukulala resolve G I V vi IV`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := music.ParseKey(args[0])
		if err != nil {
			return err
		}
		numerals, err := music.ParseNumerals(args[1:])
		if err != nil {
			return err
		}
		chords, err := music.ResolveProgression(key, numerals)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(chords, " "))
		return nil
	},
}
