package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/commons-pulse/commons-pulse/internal/application/analytics"
	"github.com/commons-pulse/commons-pulse/internal/domain/bill"
	"github.com/commons-pulse/commons-pulse/internal/domain/intervention"
	"github.com/commons-pulse/commons-pulse/internal/domain/member"
	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	analytics     *analytics.Service
	stats         stats.Repository
	members       member.Repository
	bills         bill.Repository
	interventions intervention.Repository
	committee     intervention.CommitteeRepository
	runs          syncstate.RunRepository
	deadLetters   syncstate.DeadLetterRepository

	defaultParliament string
	defaultSession    string
	logger            zerolog.Logger
}

func NewServer(
	analyticsSvc *analytics.Service,
	statsRepo stats.Repository,
	members member.Repository,
	bills bill.Repository,
	interventions intervention.Repository,
	committee intervention.CommitteeRepository,
	runs syncstate.RunRepository,
	deadLetters syncstate.DeadLetterRepository,
	defaultParliament, defaultSession string,
	logger zerolog.Logger,
) *Server {
	return &Server{
		analytics:         analyticsSvc,
		stats:             statsRepo,
		members:           members,
		bills:             bills,
		interventions:     interventions,
		committee:         committee,
		runs:              runs,
		deadLetters:       deadLetters,
		defaultParliament: defaultParliament,
		defaultSession:    defaultSession,
		logger:            logger.With().Str("service", "api").Logger(),
	}
}

// Router builds the HTTP router.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(120 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.Post("/compute/session/{parliament}/{session}", s.computeSession)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/session", s.sessionFacts)
			r.Get("/votes", s.voteStats)
			r.Get("/members", s.memberStats)
			r.Get("/member-vote-records", s.memberVoteRecords)
		})

		r.Route("/metrics", func(r chi.Router) {
			r.Get("/members", s.memberMetrics)
			r.Get("/member/{personId}", s.memberMetricDetail)
		})

		r.Get("/bills", s.listBills)
		r.Get("/export/members.csv", s.exportMembersCSV)
		r.Get("/sync/runs", s.syncRuns)
		r.Get("/sync/dead-letters", s.deadLetterList)
	})

	r.Get("/health", s.health)
	return r
}

// session resolves the target (parliament, session) from query params,
// falling back to the configured defaults.
func (s *Server) session(r *http.Request) (string, string) {
	parliament := r.URL.Query().Get("parliament")
	if parliament == "" {
		parliament = s.defaultParliament
	}
	session := r.URL.Query().Get("session")
	if session == "" {
		session = s.defaultSession
	}
	return parliament, session
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, map[string]interface{}{
		"error":   code,
		"message": message,
	})
}
