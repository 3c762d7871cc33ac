// Package analytics records usage events. Sending them anywhere is left to
// whatever sits behind a Tracker.
package analytics

import (
	"github.com/jsphweid/ukulala/util"
	"go.uber.org/zap"
)

const (
	VoicingPreferred     = "voicing_preferred"
	VoicingCleared       = "voicing_cleared"
	ProgressionStarred   = "progression_starred"
	ProgressionUnstarred = "progression_unstarred"
	TuningChanged        = "tuning_changed"
)

type Tracker interface {
	Pageview(path string)
	Event(name string, props map[string]string)
}

type LogTracker struct {
	logger *zap.Logger
}

func NewLogTracker(logger *zap.Logger) *LogTracker {
	return &LogTracker{logger: logger.Named("analytics")}
}

func (t *LogTracker) Pageview(path string) {
	t.logger.Info("pageview", zap.String("path", path))
}

func (t *LogTracker) Event(name string, props map[string]string) {
	fields := []zap.Field{zap.String("event", name)}
	for _, k := range util.SortedKeys(props) {
		fields = append(fields, zap.String(k, props[k]))
	}
	t.logger.Info("event", fields...)
}

type nop struct{}

func (nop) Pageview(string)                 {}
func (nop) Event(string, map[string]string) {}

var Nop Tracker = nop{}
