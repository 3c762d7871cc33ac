package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/constants"
	"github.com/jsphweid/ukulala/data"
	"github.com/jsphweid/ukulala/db"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/prefs"
	"go.uber.org/zap"
)

// openBackend is swapped out in tests so commands share one in-memory store.
var openBackend = func(ctx context.Context, name string) (prefs.Backend, error) {
	switch name {
	case constants.BackendMemory:
		return db.NewMemory(), nil
	case constants.BackendSQLite:
		return db.OpenSQLite(constants.GetPrefsDBPath())
	case constants.BackendDynamoDB:
		d, err := db.OpenDynamo(constants.GetDynamoEndpoint(), constants.GetDynamoRegion(), constants.GetDynamoTable())
		if err != nil {
			return nil, err
		}
		if err := d.CreateTable(ctx); err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func openStore(ctx context.Context, delay time.Duration) (*prefs.Store, error) {
	backend, err := openBackend(ctx, backendFlag)
	if err != nil {
		return nil, fmt.Errorf("could not open %s preferences: %w", backendFlag, err)
	}
	logger.Debug("opened preferences", zap.String("backend", backendFlag))
	return prefs.New(backend, logger, delay), nil
}

// closeStore flushes pending writes; failing to close is only worth a log line.
func closeStore(ctx context.Context, store *prefs.Store) {
	if err := store.Close(ctx); err != nil {
		logger.Warn("could not close preferences", zap.Error(err))
	}
}

// currentTuning is the --tuning flag, else the stored choice, else
// UKULALA_TUNING, else standard.
func currentTuning(ctx context.Context, store *prefs.Store) (model.Tuning, error) {
	if tuningFlag != "" {
		t := model.Tuning(tuningFlag)
		if !t.Valid() {
			return "", fmt.Errorf("unknown tuning %q", tuningFlag)
		}
		return t, nil
	}
	if t, chosen := store.Tuning(ctx); chosen {
		return t, nil
	}
	if t := model.Tuning(constants.GetTuning()); t.Valid() {
		return t, nil
	}
	return model.Standard, nil
}

type session struct {
	store  *prefs.Store
	tuning model.Tuning
	table  *chord.Table
	prefs  model.VoicingPrefs
}

func openSession(ctx context.Context) (*session, error) {
	store, err := openStore(ctx, 0)
	if err != nil {
		return nil, err
	}
	t, err := currentTuning(ctx, store)
	if err != nil {
		closeStore(ctx, store)
		return nil, err
	}
	table, err := data.Chords(t)
	if err != nil {
		closeStore(ctx, store)
		return nil, err
	}
	return &session{
		store:  store,
		tuning: t,
		table:  table,
		prefs:  store.VoicingPrefs(ctx, t),
	}, nil
}
