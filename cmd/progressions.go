package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jsphweid/ukulala/constants"
	"github.com/jsphweid/ukulala/data"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"github.com/jsphweid/ukulala/progression"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

var (
	genreFlag     string
	starredFlag   bool
	keyFlag       string
	currentKey    string
	randomStarred bool
	randomSource  = func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) }
)

func init() {
	progressionsCmd.Flags().StringVarP(&genreFlag, "genre", "g", "", "only this genre")
	progressionsCmd.Flags().BoolVarP(&starredFlag, "starred", "s", false, "only starred progressions")
	rootCmd.AddCommand(progressionsCmd)

	progressionCmd.Flags().StringVarP(&keyFlag, "key", "k", constants.DefaultKey, "key to play it in")
	rootCmd.AddCommand(progressionCmd)

	rootCmd.AddCommand(starCmd)

	randomCmd.Flags().BoolVarP(&randomStarred, "starred", "s", false, "only pick from starred progressions")
	randomCmd.Flags().StringVarP(&currentKey, "key", "k", "", "current key, never picked again")
	rootCmd.AddCommand(randomCmd)
}

func numeralString(ns []model.Numeral) string {
	ss := make([]string, 0, len(ns))
	for _, n := range ns {
		ss = append(ss, string(n))
	}
	return strings.Join(ss, " ")
}

var progressionsCmd = &cobra.Command{
	Use:   "progressions",
	Short: "Lists the progression library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := data.Progressions()
		if err != nil {
			return err
		}
		ps = progression.FilterByGenre(ps, genreFlag)

		ctx := cmd.Context()
		store, err := openStore(ctx, 0)
		if err != nil {
			return err
		}
		defer closeStore(ctx, store)
		starred := store.StarredProgressions(ctx)
		if starredFlag {
			ps = progression.Starred(ps, starred)
		}

		tw := newTable(cmd.OutOrStdout())
		for _, p := range ps {
			mark := ""
			if slices.Contains(starred, p.ID) {
				mark = "*"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", mark, p.ID, p.Name, p.Genre, numeralString(p.Numerals))
		}
		return tw.Flush()
	},
}

func showProgression(cmd *cobra.Command, p model.Progression, key model.Key) error {
	ctx := cmd.Context()
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer closeStore(ctx, s.store)

	chords, err := progression.Resolve(key, p.Numerals, s.table, s.prefs)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s in %s (%s)\n", p.Name, key, s.tuning.Label())
	if p.Description != "" {
		fmt.Fprintln(w, p.Description)
	}
	if len(p.Examples) > 0 {
		fmt.Fprintf(w, "Heard in: %s\n", strings.Join(p.Examples, ", "))
	}
	return printResolved(w, s.tuning, chords)
}

var progressionCmd = &cobra.Command{
	Use:   "progression <id>",
	Short: "Shows a progression's chords in a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := data.Progressions()
		if err != nil {
			return err
		}
		p, ok := progression.FindByID(ps, args[0])
		if !ok {
			return fmt.Errorf("no progression %q", args[0])
		}
		key, err := music.ParseKey(keyFlag)
		if err != nil {
			return err
		}
		return showProgression(cmd, p, key)
	},
}

var starCmd = &cobra.Command{
	Use:   "star <id>",
	Short: "Stars a progression, or unstars it if already starred",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := data.Progressions()
		if err != nil {
			return err
		}
		p, ok := progression.FindByID(ps, args[0])
		if !ok {
			return fmt.Errorf("no progression %q", args[0])
		}

		ctx := cmd.Context()
		store, err := openStore(ctx, 0)
		if err != nil {
			return err
		}
		defer closeStore(ctx, store)

		if store.ToggleStarred(ctx, p.ID) {
			fmt.Fprintf(cmd.OutOrStdout(), "starred %s\n", p.ID)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "unstarred %s\n", p.ID)
		}
		return nil
	},
}

// pickKey chooses among the selected keys when there are any, avoiding
// current whenever another choice exists.
func pickKey(rng *rand.Rand, selected []model.Key, current model.Key) model.Key {
	if len(selected) == 0 {
		return progression.PickKey(rng, current)
	}
	choices := make([]model.Key, 0, len(selected))
	for _, k := range selected {
		if k != current {
			choices = append(choices, k)
		}
	}
	if len(choices) == 0 {
		return selected[0]
	}
	return choices[rng.Intn(len(choices))]
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Shows a random progression in a random key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := data.Progressions()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		store, err := openStore(ctx, 0)
		if err != nil {
			return err
		}
		selected, _ := store.SelectedKeys(ctx)
		if randomStarred {
			ps = progression.Starred(ps, store.StarredProgressions(ctx))
		}
		closeStore(ctx, store)
		if len(ps) == 0 {
			return fmt.Errorf("no progressions to pick from")
		}

		current := music.KeyOr(currentKey, "")
		rng := randomSource()
		return showProgression(cmd, progression.Pick(rng, ps), pickKey(rng, selected, current))
	},
}
