package club

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new ClubStore backed by the given database.
func New(db *sql.DB) ClubStore {
	return &store{
		db: db,
	}
}

// UpsertPlayer inserts a new player or updates an existing one's profile
// fields. Win/loss counters are never touched on conflict.
func (s *store) UpsertPlayer(player Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO players (username, name, age, gender, wins, losses, created_at)
		VALUES (?, ?, ?, ?, 0, 0, ?)
		ON CONFLICT(username) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender;
	`, player.Username, player.Name, player.Age, string(player.Gender), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to upsert player %s: %w", player.Username, err)
	}

	log.Debug("Upserted player", "username", player.Username, "name", player.Name)
	return nil
}

// GetPlayer retrieves a single player by username.
func (s *store) GetPlayer(username string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT username, name, age, gender, wins, losses, created_at
		FROM players WHERE username = ?
	`, username)

	player, err := scanPlayer(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player %s: %w", username, err)
	}
	return player, nil
}

// GetAllPlayers retrieves every registered player in directory insertion
// order. The ranking engine relies on this order for stable ties.
func (s *store) GetAllPlayers() ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT username, name, age, gender, wins, losses, created_at
		FROM players ORDER BY created_at ASC, username ASC
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	return collectPlayers(rows)
}

// GetPlayers retrieves the players for the given usernames. Unknown
// usernames are simply absent from the result.
func (s *store) GetPlayers(usernames []string) ([]Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(usernames) == 0 {
		return []Player{}, nil
	}

	placeholders := strings.Repeat("?,", len(usernames)-1) + "?"
	query := fmt.Sprintf(`
		SELECT username, name, age, gender, wins, losses, created_at
		FROM players WHERE username IN (%s)
	`, placeholders)

	args := make([]any, len(usernames))
	for i, u := range usernames {
		args[i] = u
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players, err := collectPlayers(rows)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = []Player{}
	}
	return players, nil
}

func (s *store) IsKnownPlayer(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM players WHERE username = ?)", username).Scan(&exists)
	if err != nil {
		log.Error("Failed to check if player exists", "error", err, "username", username)
		return false
	}
	return exists
}

func scanPlayer(scanner interface{ Scan(...any) error }) (*Player, error) {
	var p Player
	var gender string
	err := scanner.Scan(&p.Username, &p.Name, &p.Age, &gender, &p.Wins, &p.Losses, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Gender = Gender(gender)
	return &p, nil
}

func collectPlayers(rows *sql.Rows) ([]Player, error) {
	var players []Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		players = append(players, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player rows: %w", err)
	}
	return players, nil
}
