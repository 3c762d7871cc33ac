package model

type Tuning string

const (
	Standard Tuning = "standard"
	Baritone Tuning = "baritone"
)

var Tunings = []Tuning{Standard, Baritone}

func (t Tuning) Valid() bool {
	return t == Standard || t == Baritone
}

func (t Tuning) Label() string {
	switch t {
	case Baritone:
		return "Baritone"
	default:
		return "Ukulele"
	}
}

// Strings names the open strings in the order fingerings list them.
func (t Tuning) Strings() [NumStrings]string {
	switch t {
	case Baritone:
		return [NumStrings]string{"D", "G", "B", "E"}
	default:
		return [NumStrings]string{"G", "C", "E", "A"}
	}
}

// Hint is the short string-name label, like "GCEA".
func (t Tuning) Hint() string {
	s := t.Strings()
	return s[0] + s[1] + s[2] + s[3]
}
