package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/match"
	"github.com/mkrogh/shuttletrack/internal/ranking"
	"github.com/mkrogh/shuttletrack/internal/roster"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.GetAllPlayers()
		if err != nil {
			s.writeError(w, err)
			return
		}
		if players == nil {
			players = []club.Player{}
		}
		s.respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) AvailablePlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		started := time.Now()
		result, err := s.Resolver.Resolve(date)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.Metrics.ObserveResolveDuration(time.Since(started).Seconds())

		if gender := r.URL.Query().Get("gender"); gender != "" {
			players := result.ByGender(club.Gender(gender))
			if players == nil {
				players = []club.Player{}
			}
			s.respondJSON(w, http.StatusOK, map[string]any{
				"players": players,
				"source":  result.Source,
			})
			return
		}
		s.respondJSON(w, http.StatusOK, result)
	}
}

func (s *Server) RankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.GetAllPlayers()
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.respondJSON(w, http.StatusOK, ranking.Rank(players))
	}
}

func (s *Server) NotifyRankingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.GetAllPlayers()
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.Notifier.SendRankings(ranking.Rank(players), isDryRunFromContext(r)); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Rankings sent.")
	}
}

func (s *Server) AttendanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			date := r.URL.Query().Get("date")
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}
			present, err := s.Attendance.Get(date)
			if err != nil {
				if errors.Is(err, attendance.ErrNoRecord) {
					http.Error(w, "no attendance record for date", http.StatusNotFound)
					return
				}
				s.writeError(w, err)
				return
			}
			s.respondJSON(w, http.StatusOK, map[string]any{"date": date, "present": present})

		case http.MethodPost:
			var req putAttendanceRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			if req.Date == "" {
				req.Date = time.Now().Format("2006-01-02")
			}
			if err := s.Attendance.Put(req.Date, req.Present); err != nil {
				s.writeError(w, err)
				return
			}
			s.respondJSON(w, http.StatusOK, map[string]any{"date": req.Date, "present": len(req.Present)})

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) ListMatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := match.Filter{
			Status: match.Status(r.URL.Query().Get("status")),
			Date:   r.URL.Query().Get("date"),
			Player: r.URL.Query().Get("player"),
		}
		matches, err := s.Matches.List(filter)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if matches == nil {
			matches = []*match.Match{}
		}
		s.respondJSON(w, http.StatusOK, matches)
	}
}

func (s *Server) CreateMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createMixedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Date == "" {
			req.Date = time.Now().Format("2006-01-02")
		}
		if req.GameType == "" {
			req.GameType = "Mixed Doubles"
		}

		avail, err := s.Resolver.Resolve(req.Date)
		if err != nil {
			s.writeError(w, err)
			return
		}

		resolved, err := s.Assigner.AssignMixed(req.Slots, avail)
		if err != nil {
			s.Metrics.IncAssignmentFailures()
			s.writeError(w, err)
			return
		}

		m, err := s.Lifecycle.CreateMatch(resolved, req.Date, req.GameType)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.respondJSON(w, http.StatusCreated, m)
	}
}

func (s *Server) CreateCustomMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req createCustomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.Date == "" {
			req.Date = time.Now().Format("2006-01-02")
		}
		if req.GameType == "" {
			req.GameType = "Custom"
		}

		resolved, err := roster.AssignCustom(req.Team1PlayerA, req.Team1PlayerB, req.Team2PlayerA, req.Team2PlayerB)
		if err != nil {
			s.Metrics.IncAssignmentFailures()
			s.writeError(w, err)
			return
		}

		m, err := s.Lifecycle.CreateMatch(resolved, req.Date, req.GameType)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.respondJSON(w, http.StatusCreated, m)
	}
}

func (s *Server) StartMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "matchID is required", http.StatusBadRequest)
			return
		}
		if err := s.Lifecycle.StartMatch(matchID); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Match started.")
	}
}

func (s *Server) CancelMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchID")
		if matchID == "" {
			http.Error(w, "matchID is required", http.StatusBadRequest)
			return
		}
		if err := s.Lifecycle.CancelMatch(matchID); err != nil {
			s.writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Match canceled.")
	}
}

func (s *Server) FinishMatchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var req finishMatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if req.MatchID == "" {
			http.Error(w, "match_id is required", http.StatusBadRequest)
			return
		}
		if req.WinnerTeam != string(match.Team1) && req.WinnerTeam != string(match.Team2) {
			http.Error(w, "winner_team must be 'Team 1' or 'Team 2'", http.StatusBadRequest)
			return
		}

		m, err := s.Lifecycle.FinishMatch(req.MatchID, match.Team(req.WinnerTeam), req.Score)
		if err != nil {
			s.writeError(w, err)
			return
		}
		s.respondJSON(w, http.StatusOK, m)
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP status codes. Anything
// unrecognized is treated as a storage failure the caller should retry.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, match.ErrNotFound) || errors.Is(err, club.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, match.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, match.ErrRosterInvalid),
		errors.Is(err, roster.ErrDuplicatePlayer),
		errors.Is(err, roster.ErrIncompleteRoster),
		errors.Is(err, roster.ErrInsufficientCandidates):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		log.Error("Request failed", "error", err)
		http.Error(w, "storage unavailable, retry the operation", http.StatusServiceUnavailable)
	}
}
