package cmd

import (
	"fmt"
	"strconv"

	"github.com/jsphweid/ukulala/chord"
	"github.com/spf13/cobra"
)

var (
	clearFlag  bool
	toggleFlag bool
)

func init() {
	preferCmd.Flags().BoolVar(&clearFlag, "clear", false, "forget the preference, back to the canonical fingering")
	preferCmd.Flags().BoolVar(&toggleFlag, "toggle", false, "clear the preference if index is already preferred")
	rootCmd.AddCommand(preferCmd)
}

var preferCmd = &cobra.Command{
	Use:   "prefer <chord> <index|next|prev>",
	Short: "Sets the voicing shown for a chord",
	Long: `Sets which voicing of a chord progressions and key charts show, as
numbered by "ukulala chord". next and prev step from the current choice
and wrap around.

  ukulala prefer G 1
  ukulala prefer G next
  ukulala prefer --clear G`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearFlag && len(args) != 2 {
			return fmt.Errorf("need a voicing index, next or prev")
		}

		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closeStore(ctx, s.store)

		c, ok := s.table.Find(args[0])
		if !ok {
			return fmt.Errorf("no %s chord %q", s.tuning, args[0])
		}
		w := cmd.OutOrStdout()

		if clearFlag {
			s.store.ClearVoicing(ctx, s.tuning, c.Name)
			fmt.Fprintf(w, "%s: canonical fingering\n", c.Name)
			return nil
		}

		current := s.prefs.Index(c.Name)
		var index int
		switch args[1] {
		case "next":
			index = chord.NextVoicing(c, current)
		case "prev":
			index = chord.PrevVoicing(c, current)
		default:
			index, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("bad voicing index %q", args[1])
			}
		}
		if index < 0 || index > len(c.Voicings) {
			return fmt.Errorf("%s has voicings 0 to %d", c.Name, len(c.Voicings))
		}

		if toggleFlag && !s.store.ToggleVoicing(ctx, s.tuning, c.Name, index) {
			fmt.Fprintf(w, "%s: canonical fingering\n", c.Name)
			return nil
		}
		if !toggleFlag {
			s.store.SetVoicing(ctx, s.tuning, c.Name, index)
		}
		fmt.Fprintf(w, "%s: voicing %d, %s\n", c.Name, index, frets(chord.ApplyVoicing(c, index).Fingering))
		return nil
	},
}
