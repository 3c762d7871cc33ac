package cmd

import (
	"fmt"

	"github.com/jsphweid/ukulala/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tuningCmd)
}

var tuningCmd = &cobra.Command{
	Use:       "tuning [standard|baritone]",
	Short:     "Shows or chooses the tuning",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(model.Standard), string(model.Baritone)},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := openStore(ctx, 0)
		if err != nil {
			return err
		}
		defer closeStore(ctx, store)

		w := cmd.OutOrStdout()
		if len(args) == 0 {
			t, err := currentTuning(ctx, store)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s (%s)\n", t.Label(), t.Hint())
			return nil
		}

		t := model.Tuning(args[0])
		if !t.Valid() {
			return fmt.Errorf("unknown tuning %q", args[0])
		}
		store.SetTuning(ctx, t)
		fmt.Fprintf(w, "%s (%s)\n", t.Label(), t.Hint())
		return nil
	},
}
