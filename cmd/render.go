package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jsphweid/ukulala/model"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// frets renders a fingering string by string, "x" for a muted string.
func frets(f model.Fingering) string {
	parts := make([]string, 0, model.NumStrings)
	for _, fret := range f.Frets {
		if fret == model.Muted {
			parts = append(parts, "x")
			continue
		}
		parts = append(parts, strconv.Itoa(fret))
	}
	s := strings.Join(parts, " ")
	if f.BarFret > 0 {
		s += fmt.Sprintf(" (barre %d)", f.BarFret)
	}
	return s
}

func header(t model.Tuning) string {
	s := t.Strings()
	return strings.Join(s[:], " ")
}

func printResolved(w io.Writer, t model.Tuning, chords []model.ResolvedChord) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "\t\t%s\n", header(t))
	for _, c := range chords {
		if !c.Found {
			fmt.Fprintf(tw, "%s\t%s\t(no diagram)\n", c.Numeral, c.Name)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Numeral, c.Name, frets(c.Chord.Fingering))
	}
	return tw.Flush()
}
