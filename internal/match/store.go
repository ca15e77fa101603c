package match

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
)

// New creates a new MatchStore backed by the given database.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

func (s *store) Insert(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO matches (id, team1_player1, team1_player2, team2_player1, team2_player2, match_date, game_type, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, m.Roster.Team1PlayerA, m.Roster.Team1PlayerB, m.Roster.Team2PlayerA, m.Roster.Team2PlayerB,
		m.Date, m.GameType, string(m.Status), m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert match %s: %w", m.ID, err)
	}

	log.Info("Inserted match", "matchID", m.ID, "date", m.Date, "gameType", m.GameType)
	return nil
}

func (s *store) Get(id string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, team1_player1, team1_player2, team2_player1, team2_player2, match_date, game_type, status, winner_team, score, remark, created_at
		FROM matches WHERE id = ?
	`, id)

	m, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match %s: %w", id, err)
	}
	return m, nil
}

func (s *store) List(filter Filter) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, team1_player1, team1_player2, team2_player1, team2_player2, match_date, game_type, status, winner_team, score, remark, created_at
		FROM matches WHERE 1=1
	`
	var args []any
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, string(filter.Status))
	}
	if filter.Date != "" {
		query += " AND match_date = ?"
		args = append(args, filter.Date)
	}
	if filter.Player != "" {
		query += " AND ? IN (team1_player1, team1_player2, team2_player1, team2_player2)"
		args = append(args, filter.Player)
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate match rows: %w", err)
	}
	return matches, nil
}

// ActivePlayers collects the slot-holders of every scheduled or ongoing
// match. Active matches never expire on their own, so no date filter.
func (s *store) ActivePlayers() (map[string]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT team1_player1, team1_player2, team2_player1, team2_player2
		FROM matches WHERE status IN (?, ?)
	`, string(StatusScheduled), string(StatusOngoing))
	if err != nil {
		return nil, fmt.Errorf("failed to query active matches: %w", err)
	}
	defer rows.Close()

	active := make(map[string]bool)
	for rows.Next() {
		var slots [4]string
		if err := rows.Scan(&slots[0], &slots[1], &slots[2], &slots[3]); err != nil {
			log.Error("Failed to scan active match row", "error", err)
			continue
		}
		for _, u := range slots {
			active[u] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate active match rows: %w", err)
	}
	return active, nil
}

func (s *store) Transition(id string, from []Status, to Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := currentStatus(tx, id)
	if err != nil {
		return err
	}
	if !statusIn(current, from) {
		return fmt.Errorf("match %s is %s: %w", id, current, ErrInvalidTransition)
	}

	if _, err := tx.Exec("UPDATE matches SET status = ? WHERE id = ?", string(to), id); err != nil {
		return fmt.Errorf("failed to update match status: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status transition: %w", err)
	}

	log.Info("Match status transitioned", "matchID", id, "from", current, "to", to)
	return nil
}

// CompleteMatch is the single atomic unit behind finish(): the match's
// result fields and both teams' counters move together or not at all.
func (s *store) CompleteMatch(id string, winner Team, score, remark string, winners, losers [2]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := currentStatus(tx, id)
	if err != nil {
		return err
	}
	if !current.Active() {
		return fmt.Errorf("match %s is %s: %w", id, current, ErrInvalidTransition)
	}

	_, err = tx.Exec(`
		UPDATE matches SET status = ?, winner_team = ?, score = ?, remark = ?
		WHERE id = ?
	`, string(StatusCompleted), string(winner), score, remark, id)
	if err != nil {
		return fmt.Errorf("failed to record match result: %w", err)
	}

	res, err := tx.Exec("UPDATE players SET wins = wins + 1 WHERE username IN (?, ?)", winners[0], winners[1])
	if err != nil {
		return fmt.Errorf("failed to increment wins: %w", err)
	}
	if n, _ := res.RowsAffected(); n != 2 {
		return fmt.Errorf("expected 2 win updates, got %d: %w", n, ErrRosterInvalid)
	}

	res, err = tx.Exec("UPDATE players SET losses = losses + 1 WHERE username IN (?, ?)", losers[0], losers[1])
	if err != nil {
		return fmt.Errorf("failed to increment losses: %w", err)
	}
	if n, _ := res.RowsAffected(); n != 2 {
		return fmt.Errorf("expected 2 loss updates, got %d: %w", n, ErrRosterInvalid)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match completion: %w", err)
	}

	log.Info("Match completed", "matchID", id, "winner", winner, "score", score, "remark", remark)
	return nil
}

func currentStatus(tx *sql.Tx, id string) (Status, error) {
	var current string
	err := tx.QueryRow("SELECT status FROM matches WHERE id = ?", id).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read match status: %w", err)
	}
	return Status(current), nil
}

func statusIn(status Status, set []Status) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var status string
	var winner, score, remark sql.NullString

	err := scanner.Scan(
		&m.ID, &m.Roster.Team1PlayerA, &m.Roster.Team1PlayerB, &m.Roster.Team2PlayerA, &m.Roster.Team2PlayerB,
		&m.Date, &m.GameType, &status, &winner, &score, &remark, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Status = Status(status)
	m.WinnerTeam = Team(winner.String)
	m.Score = score.String
	m.Remark = remark.String
	return &m, nil
}
