//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsphweid/ukulala/analytics"
	"github.com/jsphweid/ukulala/data"
	"github.com/jsphweid/ukulala/db"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/prefs"
	"github.com/jsphweid/ukulala/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// start serves the API over backend with debounced writes, the way
// "ukulala serve" runs. The returned stop flushes and closes the store.
func start(t *testing.T, backend prefs.Backend) (*httptest.Server, func()) {
	t.Helper()
	tables, err := data.Tables()
	require.NoError(t, err)
	ps, err := data.Progressions()
	require.NoError(t, err)

	logger := zaptest.NewLogger(t)
	store := prefs.New(backend, logger, 50*time.Millisecond)
	ts := httptest.NewServer(server.New(tables, ps, store, analytics.NewLogTracker(logger), logger).Handler([]string{"*"}))
	return ts, func() {
		ts.Close()
		require.NoError(t, store.Close(context.Background()))
	}
}

func call(t *testing.T, method, url, body string, out any) {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "%s %s", method, url)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
}

func exercise(t *testing.T, open func() prefs.Backend) {
	ts, stop := start(t, open())
	call(t, http.MethodPut, ts.URL+"/prefs/tuning", `{"tuning":"baritone"}`, nil)
	call(t, http.MethodPut, ts.URL+"/prefs/baritone/voicings/G", `{"index":1}`, nil)
	call(t, http.MethodPut, ts.URL+"/prefs/baritone/voicings/G", `{"index":2}`, nil)
	call(t, http.MethodPost, ts.URL+"/progressions/creep/star", "", nil)
	stop()

	ts, stop = start(t, open())
	defer stop()

	assert := assert.New(t)

	var tr model.TuningResponse
	call(t, http.MethodGet, ts.URL+"/prefs/tuning", "", &tr)
	assert.Equal(model.Baritone, tr.Tuning)
	assert.True(tr.Chosen)

	var p model.ProgressionResponse
	call(t, http.MethodGet, ts.URL+"/progressions/major-4?key=G", "", &p)
	assert.Equal(model.Baritone, p.Tuning)
	assert.Equal([4]int{0, 0, 0, 0}, p.Chords[0].Chord.Frets)

	var standard model.VoicingPrefs
	call(t, http.MethodGet, ts.URL+"/prefs/standard/voicings", "", &standard)
	assert.Empty(standard)

	var ps model.ProgressionsResponse
	call(t, http.MethodGet, ts.URL+"/progressions?starred=true", "", &ps)
	require.Len(t, ps.Progressions, 1)
	assert.Equal("creep", ps.Progressions[0].ID)
}

func TestSQLitePreferencesSurviveRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	exercise(t, func() prefs.Backend {
		s, err := db.OpenSQLite(path)
		require.NoError(t, err)
		return s
	})
}

// Runs against DynamoDB Local, e.g.
// docker run -p 8000:8000 amazon/dynamodb-local
func TestDynamoPreferencesSurviveRestart(t *testing.T) {
	endpoint := os.Getenv("DYNAMODB_ENDPOINT")
	if endpoint == "" {
		t.Skip("DYNAMODB_ENDPOINT not set")
	}
	table := "ukulala-e2e-" + time.Now().Format("150405")
	exercise(t, func() prefs.Backend {
		d, err := db.OpenDynamo(endpoint, "localhost", table)
		require.NoError(t, err)
		require.NoError(t, d.CreateTable(context.Background()))
		return d
	})
}
