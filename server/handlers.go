package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/ukulala/analytics"
	"github.com/jsphweid/ukulala/chord"
	"github.com/jsphweid/ukulala/constants"
	"github.com/jsphweid/ukulala/model"
	"github.com/jsphweid/ukulala/music"
	"github.com/jsphweid/ukulala/progression"
	"go.uber.org/zap"
)

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("could not write response",
			zap.String("request_id", requestID(r.Context())), zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.writeJSON(w, r, status, model.ErrorResponse{Error: err.Error()})
}

func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("could not read request body: %w", err))
		return false
	}
	return true
}

// tuning reads the tuning from the named route variable or the "tuning"
// query parameter, falling back to the stored choice.
func (s *Server) tuning(w http.ResponseWriter, r *http.Request) (model.Tuning, *chord.Table, bool) {
	raw := mux.Vars(r)["tuning"]
	if raw == "" {
		raw = r.URL.Query().Get("tuning")
	}
	t := model.Tuning(raw)
	if raw == "" {
		t, _ = s.prefs.Tuning(r.Context())
	}
	table, ok := s.tables[t]
	if !ok {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("unknown tuning %q", raw))
		return "", nil, false
	}
	return t, table, true
}

func (s *Server) HandleKeys(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, music.AllKeys)
}

func (s *Server) HandleNumerals(w http.ResponseWriter, r *http.Request) {
	res := make([]model.NumeralInfo, 0)
	for _, n := range music.Numerals() {
		degree, _ := music.NumeralDegree(n)
		res = append(res, model.NumeralInfo{Numeral: n, Degree: degree})
	}
	s.writeJSON(w, r, http.StatusOK, res)
}

func (s *Server) HandleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if !s.readJSON(w, r, &input) {
		return
	}

	raw := make([]string, 0, len(input.Numerals))
	for _, n := range input.Numerals {
		raw = append(raw, string(n))
	}
	numerals, err := music.ParseNumerals(raw)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	chords, err := music.ResolveProgression(input.Key, numerals)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	degrees := make([]int, 0, len(numerals))
	for _, n := range numerals {
		d, _ := music.NumeralDegree(n)
		degrees = append(degrees, d)
	}
	s.writeJSON(w, r, http.StatusOK, model.ResolveResponse{Chords: chords, Degrees: degrees})
}

func (s *Server) HandleKeyChords(w http.ResponseWriter, r *http.Request) {
	key, err := music.ParseKey(mux.Vars(r)["key"])
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	t, table, ok := s.tuning(w, r)
	if !ok {
		return
	}

	chords, err := progression.Diatonic(key, table, s.prefs.VoicingPrefs(r.Context(), t))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.tracker.Pageview(r.URL.Path)
	s.writeJSON(w, r, http.StatusOK, model.KeyChordsResponse{Key: key, Tuning: t, Chords: chords})
}

func (s *Server) HandleProgressions(w http.ResponseWriter, r *http.Request) {
	ps := s.progressions
	if r.URL.Query().Get("starred") == "true" {
		ps = progression.Starred(ps, s.prefs.StarredProgressions(r.Context()))
	} else {
		ps = progression.FilterByGenre(ps, r.URL.Query().Get("genre"))
	}
	if ps == nil {
		ps = []model.Progression{}
	}
	s.writeJSON(w, r, http.StatusOK, model.ProgressionsResponse{
		Genres:       progression.Genres(s.progressions),
		Progressions: ps,
	})
}

func (s *Server) HandleProgression(w http.ResponseWriter, r *http.Request) {
	p, ok := progression.FindByID(s.progressions, mux.Vars(r)["id"])
	if !ok {
		s.writeError(w, r, http.StatusNotFound, fmt.Errorf("no progression %q", mux.Vars(r)["id"]))
		return
	}

	rawKey := r.URL.Query().Get("key")
	if rawKey == "" {
		rawKey = constants.DefaultKey
	}
	key, err := music.ParseKey(rawKey)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	t, table, ok := s.tuning(w, r)
	if !ok {
		return
	}

	chords, err := progression.Resolve(key, p.Numerals, table, s.prefs.VoicingPrefs(r.Context(), t))
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	s.tracker.Pageview(r.URL.Path)
	s.writeJSON(w, r, http.StatusOK, model.ProgressionResponse{
		Progression: p,
		Key:         key,
		Tuning:      t,
		Chords:      chords,
	})
}

func (s *Server) HandleStar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, ok := progression.FindByID(s.progressions, id); !ok {
		s.writeError(w, r, http.StatusNotFound, fmt.Errorf("no progression %q", id))
		return
	}

	starred := s.prefs.ToggleStarred(r.Context(), id)
	event := analytics.ProgressionStarred
	if !starred {
		event = analytics.ProgressionUnstarred
	}
	s.tracker.Event(event, map[string]string{"progression": id})
	s.writeJSON(w, r, http.StatusOK, model.StarResponse{
		ID:      id,
		Starred: starred,
		All:     s.prefs.StarredProgressions(r.Context()),
	})
}

func (s *Server) HandleChords(w http.ResponseWriter, r *http.Request) {
	t, table, ok := s.tuning(w, r)
	if !ok {
		return
	}

	chords := table.All()
	if raw := r.URL.Query().Get("category"); raw != "" {
		cat, err := chord.ParseCategory(raw)
		if err != nil {
			s.writeError(w, r, http.StatusBadRequest, err)
			return
		}
		chords = table.ByCategory(cat)
	}
	if chords == nil {
		chords = []model.Chord{}
	}
	s.writeJSON(w, r, http.StatusOK, model.ChordsResponse{Tuning: t, Chords: chords})
}

func (s *Server) findChord(w http.ResponseWriter, r *http.Request, table *chord.Table) (model.Chord, bool) {
	name := mux.Vars(r)["name"]
	c, ok := table.Find(name)
	if !ok {
		s.writeError(w, r, http.StatusNotFound, fmt.Errorf("no chord %q", name))
	}
	return c, ok
}

func (s *Server) HandleChord(w http.ResponseWriter, r *http.Request) {
	t, table, ok := s.tuning(w, r)
	if !ok {
		return
	}
	c, ok := s.findChord(w, r, table)
	if !ok {
		return
	}

	preferred := s.prefs.VoicingPrefs(r.Context(), t).Index(c.Name)
	s.writeJSON(w, r, http.StatusOK, model.ChordResponse{
		Chord:     c,
		Voicings:  chord.AllVoicings(c),
		Preferred: preferred,
		Applied:   chord.ApplyVoicing(c, preferred),
	})
}

func (s *Server) HandleVoicingPrefs(w http.ResponseWriter, r *http.Request) {
	t, _, ok := s.tuning(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, r, http.StatusOK, s.prefs.VoicingPrefs(r.Context(), t))
}

var errVoicingRange = errors.New("voicing index out of range")

func (s *Server) HandleSetVoicing(w http.ResponseWriter, r *http.Request) {
	t, table, ok := s.tuning(w, r)
	if !ok {
		return
	}
	c, ok := s.findChord(w, r, table)
	if !ok {
		return
	}
	var input model.VoicingPrefRequestBody
	if !s.readJSON(w, r, &input) {
		return
	}
	if input.Index < 0 || input.Index > len(c.Voicings) {
		s.writeError(w, r, http.StatusBadRequest,
			fmt.Errorf("%w: %s has %d voicings", errVoicingRange, c.Name, len(c.Voicings)+1))
		return
	}

	s.prefs.SetVoicing(r.Context(), t, c.Name, input.Index)
	s.tracker.Event(analytics.VoicingPreferred, map[string]string{
		"tuning": string(t),
		"chord":  c.Name,
		"index":  strconv.Itoa(input.Index),
	})
	s.writeJSON(w, r, http.StatusOK, s.prefs.VoicingPrefs(r.Context(), t))
}

func (s *Server) HandleClearVoicing(w http.ResponseWriter, r *http.Request) {
	t, _, ok := s.tuning(w, r)
	if !ok {
		return
	}
	name := mux.Vars(r)["name"]

	s.prefs.ClearVoicing(r.Context(), t, name)
	s.tracker.Event(analytics.VoicingCleared, map[string]string{"tuning": string(t), "chord": name})
	s.writeJSON(w, r, http.StatusOK, s.prefs.VoicingPrefs(r.Context(), t))
}

func tuningResponse(t model.Tuning, chosen bool) model.TuningResponse {
	return model.TuningResponse{Tuning: t, Chosen: chosen, Label: t.Label(), Hint: t.Hint()}
}

func (s *Server) HandleGetTuning(w http.ResponseWriter, r *http.Request) {
	t, chosen := s.prefs.Tuning(r.Context())
	s.writeJSON(w, r, http.StatusOK, tuningResponse(t, chosen))
}

func (s *Server) HandleSetTuning(w http.ResponseWriter, r *http.Request) {
	var input model.TuningRequestBody
	if !s.readJSON(w, r, &input) {
		return
	}
	if !input.Tuning.Valid() {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("unknown tuning %q", input.Tuning))
		return
	}

	s.prefs.SetTuning(r.Context(), input.Tuning)
	s.tracker.Event(analytics.TuningChanged, map[string]string{"tuning": string(input.Tuning)})
	s.writeJSON(w, r, http.StatusOK, tuningResponse(input.Tuning, true))
}
