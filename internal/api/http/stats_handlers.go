package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/commons-pulse/commons-pulse/internal/domain/stats"
	"github.com/commons-pulse/commons-pulse/internal/domain/syncstate"
)

func (s *Server) computeSession(w http.ResponseWriter, r *http.Request) {
	parliament := chi.URLParam(r, "parliament")
	session := chi.URLParam(r, "session")
	if parliament == "" || session == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "parliament and session are required")
		return
	}

	res, err := s.analytics.ComputeSession(r.Context(), parliament, session)
	if err != nil {
		s.logger.Error().Err(err).Str("parliament", parliament).Str("session", session).Msg("compute failed")
		respondError(w, http.StatusInternalServerError, "COMPUTE_FAILED", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, res)
}

func (s *Server) sessionFacts(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	facts, err := s.stats.GetSessionFacts(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	if facts == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "session has not been synced")
		return
	}
	rosterSize, err := s.members.Count(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament":     parliament,
		"session":        session,
		"facts":          facts,
		"roster_members": rosterSize,
	})
}

func (s *Server) listBills(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	docs, err := s.bills.ListBySession(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"count":      len(docs),
		"bills":      docs,
	})
}

func (s *Server) voteStats(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	docs, err := s.stats.ListVoteStats(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"count":      len(docs),
		"votes":      docs,
	})
}

func (s *Server) memberStats(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	docs, err := s.stats.ListMemberStats(r.Context(), parliament, session, stats.MemberStatFilter{})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"count":      len(docs),
		"stats":      docs,
	})
}

func (s *Server) memberVoteRecords(w http.ResponseWriter, r *http.Request) {
	parliament, session := s.session(r)
	docs, err := s.stats.ListMemberVoteRecords(r.Context(), parliament, session)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"parliament": parliament,
		"session":    session,
		"count":      len(docs),
		"records":    docs,
	})
}

func (s *Server) syncRuns(w http.ResponseWriter, r *http.Request) {
	runs, err := s.runs.ListRecent(r.Context(), 20)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(runs),
		"runs":  runs,
	})
}

func (s *Server) deadLetterList(w http.ResponseWriter, r *http.Request) {
	entity := syncstate.Entity(r.URL.Query().Get("entity"))
	if entity == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAM", "entity is required")
		return
	}
	items, err := s.deadLetters.ListByEntity(r.Context(), entity, 50)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entity": entity,
		"count":  len(items),
		"items":  items,
	})
}
