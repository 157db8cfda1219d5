// Package server exposes a named color table over HTTP and websockets.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/wbrown/namedcolor"
)

// Server answers nearest named color lookups.
type Server struct {
	table    *namedcolor.CachedTable
	router   *mux.Router
	upgrader websocket.Upgrader
	log      zerolog.Logger
}

type matchResponse struct {
	ID       string  `json:"id"`
	Query    string  `json:"query"`
	Name     string  `json:"name"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
	DeltaE   float64 `json:"deltaE"`
}

type errorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type statsResponse struct {
	namedcolor.TableStats
	Capacity    int `json:"capacity"`
	CacheSize   int `json:"cacheSize"`
	CacheHits   int `json:"cacheHits"`
	CacheMisses int `json:"cacheMisses"`
}

// New creates a server answering from t. Allowed websocket origins are
// checked by checkOrigin; nil accepts every origin.
func New(t *namedcolor.CachedTable, l zerolog.Logger, checkOrigin func(r *http.Request) bool) *Server {
	s := &Server{
		table: t,
		log:   l.With().Str("context", "server").Logger(),
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin,
		},
	}
	if s.upgrader.CheckOrigin == nil {
		s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	router := mux.NewRouter()
	router.HandleFunc("/hex/{code}", s.hexHandler).Methods(http.MethodGet)
	router.HandleFunc("/rgb/{r:[0-9]+}/{g:[0-9]+}/{b:[0-9]+}", s.rgbHandler).Methods(http.MethodGet)
	router.HandleFunc("/stats", s.statsHandler).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.websocketHandler)
	s.router = router
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	server := &http.Server{
		Handler:      s.router,
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("http_listening")
	return server.ListenAndServe()
}

func (s *Server) hexHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	m, err := s.table.LookupHex(code)
	s.respond(w, code, m, err)
}

func (s *Server) rgbHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := vars["r"] + "," + vars["g"] + "," + vars["b"]
	m, err := lookupChannels(s.table, vars["r"], vars["g"], vars["b"])
	s.respond(w, query, m, err)
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	hits, misses := s.table.Counters()
	writeJSON(w, http.StatusOK, statsResponse{
		TableStats:  s.table.Stats(),
		Capacity:    s.table.Capacity(),
		CacheSize:   s.table.Cached(),
		CacheHits:   hits,
		CacheMisses: misses,
	})
}

func (s *Server) respond(w http.ResponseWriter, query string, m namedcolor.Match, err error) {
	id := uuid.New().String()
	if err != nil {
		status := http.StatusInternalServerError
		if isInputError(err) {
			status = http.StatusBadRequest
		}
		s.log.Debug().Str("id", id).Str("query", query).Err(err).Msg("lookup_rejected")
		writeJSON(w, status, errorResponse{ID: id, Error: err.Error()})
		return
	}
	s.log.Debug().Str("id", id).Str("query", query).Str("name", m.Name()).Msg("lookup_served")
	writeJSON(w, http.StatusOK, newMatchResponse(id, query, m))
}

func newMatchResponse(id, query string, m namedcolor.Match) matchResponse {
	return matchResponse{
		ID:       id,
		Query:    query,
		Name:     m.Name(),
		Hex:      m.Color.Hex(),
		Distance: m.Distance,
		DeltaE:   m.DeltaE,
	}
}

// lookupChannels parses three decimal channels and looks them up.
func lookupChannels(t *namedcolor.CachedTable, r, g, b string) (namedcolor.Match, error) {
	var channels [3]int
	for i, raw := range [3]string{r, g, b} {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return namedcolor.Match{}, fmt.Errorf("%w: %q is not a number", namedcolor.ErrMalformedChannel, raw)
		}
		channels[i] = v
	}
	return t.LookupRGB(channels[0], channels[1], channels[2])
}

func isInputError(err error) bool {
	return errors.Is(err, namedcolor.ErrMalformedHex) ||
		errors.Is(err, namedcolor.ErrChannelRange) ||
		errors.Is(err, namedcolor.ErrMalformedChannel)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
