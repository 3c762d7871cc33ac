package model

type PrefKind string

const (
	VoicingsPref     PrefKind = "voicings"
	TuningPref       PrefKind = "tuning"
	StarredPref      PrefKind = "starred"
	SelectedKeysPref PrefKind = "selected_keys"
)

// PrefKey addresses one stored preference document. Tuning is empty for
// preferences that are not scoped to an instrument.
type PrefKey struct {
	Tuning Tuning
	Kind   PrefKind
}

func VoicingsKey(t Tuning) PrefKey {
	return PrefKey{Tuning: t, Kind: VoicingsPref}
}

func GlobalKey(kind PrefKind) PrefKey {
	return PrefKey{Kind: kind}
}

// VoicingPrefs maps a chord name to the preferred voicing index,
// 0 being the canonical fingering.
type VoicingPrefs map[string]int

func (p VoicingPrefs) Index(name string) int {
	return p[name]
}

// Toggle marks index as preferred for name, or clears the preference when
// index is already the preferred one. It returns whether a preference is set
// afterwards.
func (p VoicingPrefs) Toggle(name string, index int) bool {
	if cur, ok := p[name]; ok && cur == index {
		delete(p, name)
		return false
	}
	p[name] = index
	return true
}

func (p VoicingPrefs) Clone() VoicingPrefs {
	res := make(VoicingPrefs, len(p))
	for k, v := range p {
		res[k] = v
	}
	return res
}
