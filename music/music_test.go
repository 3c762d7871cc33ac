package music

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/ukulala/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTonicNeverTransposes(t *testing.T) {
	for _, k := range AllKeys {
		name, err := ResolveNumeral(k, "I")
		require.NoError(t, err)
		assert.Equal(t, string(k), name)
	}
}

func TestSubmediantIsNineSemitonesUpMinor(t *testing.T) {
	for i, k := range AllKeys {
		name, err := ResolveNumeral(k, "vi")
		require.NoError(t, err)
		assert.Equal(t, string(AllKeys[(i+9)%12])+"m", name)
	}

	assert := assert.New(t)
	am, _ := ResolveNumeral("C", "vi")
	em, _ := ResolveNumeral("G", "vi")
	assert.Equal("Am", am)
	assert.Equal("Em", em)
}

func TestResolveNumeral(t *testing.T) {
	cases := []struct {
		key     model.Key
		numeral model.Numeral
		want    string
	}{
		{"B", "IV", "E"},
		{"C", "vii°", "Bdim"},
		{"G", "V7", "D7"},
		{"F", "ii7", "Gm7"},
		{"A", "iii", "Dbm"},
		{"E", "vi7", "Dbm7"},
		{"Bb", "IV7", "Eb7"},
		{"F#", "V", "Db"},
		{"Ab", "I7", "Ab7"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s in %s", tc.numeral, tc.key), func(t *testing.T) {
			got, err := ResolveNumeral(tc.key, tc.numeral)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveProgression(t *testing.T) {
	got, err := ResolveProgression("C", []model.Numeral{"I", "V", "vi", "IV"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "G", "Am", "F"}, got)
}

func TestResolveEmptyProgression(t *testing.T) {
	got, err := ResolveProgression("D", nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveProgressionIsRepeatable(t *testing.T) {
	numerals := []model.Numeral{"ii", "V7", "I", "vi7"}
	first, err := ResolveProgression("Eb", numerals)
	require.NoError(t, err)
	second, err := ResolveProgression("Eb", numerals)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNumeralDegree(t *testing.T) {
	assert := assert.New(t)
	five, err := NumeralDegree("V")
	assert.NoError(err)
	five7, err := NumeralDegree("V7")
	assert.NoError(err)
	assert.Equal(5, five)
	assert.Equal(five, five7)

	for _, n := range Numerals() {
		d, err := NumeralDegree(n)
		assert.NoError(err)
		assert.GreaterOrEqual(d, 1)
		assert.LessOrEqual(d, 7)
	}
}

func TestEveryResolvedNameHasCanonicalShape(t *testing.T) {
	labels := map[string]bool{}
	for _, k := range AllKeys {
		labels[string(k)] = true
	}
	suffixes := []string{"m7", "dim", "m", "7", ""}

	for _, k := range AllKeys {
		for _, n := range Numerals() {
			name, err := ResolveNumeral(k, n)
			require.NoError(t, err)

			ok := false
			for _, s := range suffixes {
				if strings.HasSuffix(name, s) && labels[strings.TrimSuffix(name, s)] {
					ok = true
					break
				}
			}
			assert.True(t, ok, "unexpected chord name %q for %s in %s", name, n, k)
		}
	}
}

func TestUnknownSymbolsAreErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ResolveNumeral("H", "I")
	assert.True(errors.Is(err, ErrUnknownKey))

	_, err = ResolveNumeral("C#", "I")
	assert.True(errors.Is(err, ErrUnknownKey), "only the canonical spelling is accepted")

	_, err = ResolveNumeral("C", "VIII")
	assert.True(errors.Is(err, ErrUnknownNumeral))

	_, err = ResolveProgression("C", []model.Numeral{"I", "bVII"})
	assert.True(errors.Is(err, ErrUnknownNumeral))

	_, err = ResolveProgression("H", nil)
	assert.True(errors.Is(err, ErrUnknownKey))

	_, err = NumeralDegree("v")
	assert.True(errors.Is(err, ErrUnknownNumeral))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	n, err := ParseNumeral("viio")
	assert.NoError(err)
	assert.Equal(model.Numeral("vii°"), n)

	ns, err := ParseNumerals([]string{"I", "IV", "V7"})
	assert.NoError(err)
	assert.Equal([]model.Numeral{"I", "IV", "V7"}, ns)

	_, err = ParseNumerals([]string{"I", "iv"})
	assert.ErrorIs(err, ErrUnknownNumeral)

	assert.Equal(model.Key("Bb"), KeyOr("Bb", "C"))
	assert.Equal(model.Key("C"), KeyOr("A#", "C"))
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	k, err := Transpose("B", 5)
	assert.NoError(err)
	assert.Equal(model.Key("E"), k)

	k, err = Transpose("C", -1)
	assert.NoError(err)
	assert.Equal(model.Key("B"), k)
}
