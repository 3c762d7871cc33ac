package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/ukulala/chord"
	"github.com/spf13/cobra"
)

var categoryFlag string

func init() {
	keys := make([]string, 0, len(chord.Categories))
	for _, c := range chord.Categories {
		keys = append(keys, string(c.Key))
	}
	chordsCmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "only this category: "+strings.Join(keys, ", "))
	rootCmd.AddCommand(chordsCmd)
	rootCmd.AddCommand(chordCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords",
	Short: "Lists the chord library for the current tuning",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer closeStore(ctx, s.store)

		chords := s.table.All()
		if categoryFlag != "" {
			cat, err := chord.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}
			chords = s.table.ByCategory(cat)
		}

		tw := newTable(cmd.OutOrStdout())
		fmt.Fprintf(tw, "\t\t%s\n", header(s.tuning))
		for _, c := range chords {
			c = chord.ApplyVoicing(c, s.prefs.Index(c.Name))
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Name, c.FullName, frets(c.Fingering))
		}
		return tw.Flush()
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord <name>",
	Short: "Shows every voicing of a chord",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		preferred := s.prefs.Index(c.Name)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s (%s, %s)\n", c.FullName, c.Name, s.tuning.Label())
		tw := newTable(w)
		fmt.Fprintf(tw, "\t\t%s\n", header(s.tuning))
		for i, v := range chord.AllVoicings(c) {
			mark := ""
			if i == preferred {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\n", mark, i, frets(v))
		}
		return tw.Flush()
	},
}
