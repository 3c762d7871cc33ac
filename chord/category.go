package chord

import (
	"fmt"

	"github.com/jsphweid/ukulala/model"
)

type Category struct {
	Key   model.ChordCategory `json:"key"`
	Label string              `json:"label"`
}

var Categories = []Category{
	{model.Major, "Major"},
	{model.Minor, "Minor"},
	{model.Seventh, "7th"},
	{model.Diminished, "Dim"},
	{model.Augmented, "Aug"},
	{model.Suspended, "Sus"},
	{model.Other, "Other"},
}

func ParseCategory(s string) (model.ChordCategory, error) {
	for _, c := range Categories {
		if string(c.Key) == s {
			return c.Key, nil
		}
	}
	return "", fmt.Errorf("unknown chord category %q", s)
}
