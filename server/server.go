package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/ukulala/analytics"
	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/prefs"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type Server struct {
	tables       map[model.Tuning]*chord.Table
	progressions []model.Progression
	prefs        *prefs.Store
	tracker      analytics.Tracker
	logger       *zap.Logger
}

func New(tables map[model.Tuning]*chord.Table, progressions []model.Progression, store *prefs.Store, tracker analytics.Tracker, logger *zap.Logger) *Server {
	return &Server{
		tables:       tables,
		progressions: progressions,
		prefs:        store,
		tracker:      tracker,
		logger:       logger,
	}
}

// Handler routes the JSON API and allows cross-origin calls from origins.
func (s *Server) Handler(origins []string) http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.withRequestID, s.withAccessLog)

	router.HandleFunc("/keys", s.HandleKeys).Methods("GET")
	router.HandleFunc("/keys/{key}/chords", s.HandleKeyChords).Methods("GET")
	router.HandleFunc("/numerals", s.HandleNumerals).Methods("GET")
	router.HandleFunc("/resolve", s.HandleResolve).Methods("POST")

	router.HandleFunc("/progressions", s.HandleProgressions).Methods("GET")
	router.HandleFunc("/progressions/{id}", s.HandleProgression).Methods("GET")
	router.HandleFunc("/progressions/{id}/star", s.HandleStar).Methods("POST")

	router.HandleFunc("/chords", s.HandleChords).Methods("GET")
	router.HandleFunc("/chords/{name}", s.HandleChord).Methods("GET")

	router.HandleFunc("/prefs/tuning", s.HandleGetTuning).Methods("GET")
	router.HandleFunc("/prefs/tuning", s.HandleSetTuning).Methods("PUT")
	router.HandleFunc("/prefs/{tuning}/voicings", s.HandleVoicingPrefs).Methods("GET")
	router.HandleFunc("/prefs/{tuning}/voicings/{name}", s.HandleSetVoicing).Methods("PUT")
	router.HandleFunc("/prefs/{tuning}/voicings/{name}", s.HandleClearVoicing).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	})
	return c.Handler(router)
}

// Run serves handler on addr until ctx is done, then shuts down.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	srv := http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() { errs <- srv.ListenAndServe() }()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
