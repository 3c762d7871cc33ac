package progression_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/data"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"github.com/jsphweid/ukulala/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standard(t *testing.T) *chord.Table {
	t.Helper()
	table, err := data.Chords(model.Standard)
	require.NoError(t, err)
	return table
}

func TestResolveAppliesPreferences(t *testing.T) {
	table := standard(t)
	prefs := model.VoicingPrefs{"Am": 2, "G": 7}

	got, err := progression.Resolve("C", []model.Numeral{"I", "V", "vi", "IV"}, table, prefs)
	require.NoError(t, err)

	assert := assert.New(t)
	require.Len(t, got, 4)
	for _, rc := range got {
		assert.True(rc.Found)
	}
	assert.Equal([]int{1, 5, 6, 4}, []int{got[0].Degree, got[1].Degree, got[2].Degree, got[3].Degree})

	am, _ := table.Find("Am")
	assert.Equal(am.Voicings[1].Frets, got[2].Chord.Frets)

	// stale index falls back to the canonical shape
	g, _ := table.Find("G")
	assert.Equal(g.Frets, got[1].Chord.Frets)
}

func TestResolveReportsMissingChords(t *testing.T) {
	table, err := chord.NewTable([]model.Chord{{Name: "C", Category: model.Major}})
	require.NoError(t, err)

	got, err := progression.Resolve("C", []model.Numeral{"I", "V"}, table, nil)
	require.NoError(t, err)

	want := []model.ResolvedChord{
		{Name: "C", Numeral: "I", Degree: 1, Found: true, Chord: &model.Chord{Name: "C", Category: model.Major}},
		{Name: "G", Numeral: "V", Degree: 5},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveRejectsUnknownKey(t *testing.T) {
	_, err := progression.Resolve("H", []model.Numeral{"I"}, standard(t), nil)
	assert.ErrorIs(t, err, music.ErrUnknownKey)
}

func TestDiatonic(t *testing.T) {
	got, err := progression.Diatonic("G", standard(t), model.VoicingPrefs{})
	require.NoError(t, err)

	var names []string
	for _, rc := range got {
		names = append(names, rc.Name)
	}
	assert.Equal(t, []string{"G", "Am", "Bm", "C", "D", "Em", "F#dim"}, names)
}

func TestCatalogHelpers(t *testing.T) {
	ps, err := data.Progressions()
	require.NoError(t, err)

	assert := assert.New(t)
	genres := progression.Genres(ps)
	assert.Equal("Pop", genres[0])
	assert.Contains(genres, "Blues")
	assert.Len(genres, 11)

	blues := progression.FilterByGenre(ps, "Blues")
	assert.Len(blues, 4)
	assert.Len(progression.FilterByGenre(ps, ""), len(ps))

	p, ok := progression.FindByID(ps, "12-bar-blues")
	assert.True(ok)
	assert.Len(p.Numerals, 12)
	_, ok = progression.FindByID(ps, "nope")
	assert.False(ok)

	starred := progression.Starred(ps, []string{"royal-road", "creep"})
	assert.Equal("creep", starred[0].ID)
	assert.Equal("royal-road", starred[1].ID)
}

func TestPick(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ps, err := data.Progressions()
	require.NoError(t, err)

	p := progression.Pick(rng, ps)
	_, ok := progression.FindByID(ps, p.ID)
	assert.True(t, ok)

	for i := 0; i < 50; i++ {
		assert.NotEqual(t, model.Key("C"), progression.PickKey(rng, "C"))
	}
}
