package data

import (
	"testing"

	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTablesLoad(t *testing.T) {
	tables, err := Tables()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(73, tables[model.Standard].Len())
	assert.Equal(73, tables[model.Baritone].Len())

	c, ok := tables[model.Standard].Find("C")
	assert.True(ok)
	assert.Equal([4]int{0, 0, 0, 3}, c.Frets)
	assert.Len(c.Voicings, 2)
	assert.Equal(3, c.Voicings[0].BarFret)

	g, ok := tables[model.Baritone].Find("G")
	assert.True(ok)
	assert.Equal([4]int{0, 0, 0, 3}, g.Frets)
}

func TestChordsIsLoadedOnce(t *testing.T) {
	a, err := Chords(model.Standard)
	require.NoError(t, err)
	b, err := Chords(model.Standard)
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestUnknownTuning(t *testing.T) {
	_, err := Chords("tenor")
	assert.Error(t, err)
}

func TestEveryResolvedChordIsInBothTables(t *testing.T) {
	tables, err := Tables()
	require.NoError(t, err)

	for tuning, table := range tables {
		for _, k := range music.AllKeys {
			for _, n := range music.Numerals() {
				name, err := music.ResolveNumeral(k, n)
				require.NoError(t, err)
				_, ok := table.Find(name)
				assert.True(t, ok, "%s table is missing %s (%s in %s)", tuning, name, n, k)
			}
		}
	}
}

func TestProgressions(t *testing.T) {
	ps, err := Progressions()
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Len(ps, 24)
	assert.Equal("major-4", ps[0].ID)
	assert.Equal([]model.Numeral{"I", "V", "vi", "IV"}, ps[0].Numerals)

	// callers get their own copy
	ps[0].Name = "changed"
	again, _ := Progressions()
	assert.Equal("Major 4", again[0].Name)
}

func TestParseChordsRejectsBadFingerings(t *testing.T) {
	cases := map[string]string{
		"three frets": `
- name: C
  category: major
  frets: [0, 0, 3]
  fingers: [0, 0, 0, 3]`,
		"bad finger": `
- name: C
  category: major
  frets: [0, 0, 0, 3]
  fingers: [0, 0, 0, 5]`,
		"below muted": `
- name: C
  category: major
  frets: [-2, 0, 0, 3]
  fingers: [0, 0, 0, 3]`,
		"bad category": `
- name: C
  category: power
  frets: [0, 0, 0, 3]
  fingers: [0, 0, 0, 3]`,
		"duplicate": `
- name: C
  category: major
  frets: [0, 0, 0, 3]
  fingers: [0, 0, 0, 3]
- name: C
  category: major
  frets: [0, 0, 0, 3]
  fingers: [0, 0, 0, 3]`,
		"bad voicing": `
- name: C
  category: major
  frets: [0, 0, 0, 3]
  fingers: [0, 0, 0, 3]
  voicings:
    - frets: [5, 4, 3]
      fingers: [3, 2, 1, 1]`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseChords([]byte(src))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseChordsAcceptsMutedStrings(t *testing.T) {
	table, err := ParseChords([]byte(`
- name: C5
  fullName: C Power
  category: other
  frets: [-1, 0, 3, 3]
  fingers: [0, 0, 1, 2]`))
	require.NoError(t, err)
	c, ok := table.Find("C5")
	assert.True(t, ok)
	assert.Equal(t, model.Muted, c.Frets[0])
}

func TestParseProgressionsRejectsUnknownNumerals(t *testing.T) {
	_, err := ParseProgressions([]byte(`
- id: modal
  name: Modal
  numerals: ["I", "bVII", "IV"]
  genre: Rock`))
	assert.ErrorIs(t, err, ErrInvalid)
}
