// Package db stores preference documents. Every backend addresses a document
// by the two parts of model.PrefKey kept apart, never by a joined string.
package db

import (
	"errors"

	"github.com/jsphweid/ukulala/model"
)

var ErrNotFound = errors.New("preference not found")

// globalTuning stands in for an empty tuning where the store cannot hold
// empty key parts.
const globalTuning = "global"

func tuningPart(key model.PrefKey) string {
	if key.Tuning == "" {
		return globalTuning
	}
	return string(key.Tuning)
}
