package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/mkrogh/shuttletrack/internal/attendance"
	"github.com/mkrogh/shuttletrack/internal/club"
	"github.com/mkrogh/shuttletrack/internal/database"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := map[string]string{
		"DB_NAME":           "shuttletrack.db",
		"TURSO_PRIMARY_URL": "",
		"TURSO_AUTH_TOKEN":  "",
		"MIGRATIONS_DIR":    "./migrations",
	}
	for key := range config {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		}
	}
	return config
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	db, teardown, err := database.InitDB(cfg["DB_NAME"], cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"], cfg["MIGRATIONS_DIR"])
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()

	players := club.New(db)
	demo := []club.Player{
		{Username: "m1", Name: "Anders Holm", Age: 34, Gender: club.GenderMale},
		{Username: "m2", Name: "Jonas Beck", Age: 29, Gender: club.GenderMale},
		{Username: "m3", Name: "Viktor Lund", Age: 41, Gender: club.GenderMale},
		{Username: "f1", Name: "Mette Kjaer", Age: 31, Gender: club.GenderFemale},
		{Username: "f2", Name: "Sofie Dahl", Age: 27, Gender: club.GenderFemale},
		{Username: "f3", Name: "Clara Winther", Age: 36, Gender: club.GenderFemale},
	}

	for _, p := range demo {
		if err := players.UpsertPlayer(p); err != nil {
			log.Fatalf("Failed to seed player %s: %s", p.Username, err)
		}
	}
	log.Info("Seeded players", "count", len(demo))

	// Mark everyone present today so the availability resolver has a real
	// attendance record to work from.
	att := attendance.New(db)
	today := time.Now().Format("2006-01-02")
	present := make([]string, 0, len(demo))
	for _, p := range demo {
		present = append(present, p.Username)
	}
	if err := att.Put(today, present); err != nil {
		log.Fatalf("Failed to seed attendance: %s", err)
	}

	summary, _ := json.Marshal(present)
	log.Info("Seeded attendance", "date", today, "present", string(summary))
	log.Info("Seeder finished.")
}
