package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rounds-golf/rounds-server/internal/scorecard"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

type seedPlayer struct {
	ID   string
	Name string
}

// randomScores builds a complete round with scores between 3 and 7 per hole.
func randomScores() []int {
	scores := make([]int, scorecard.Holes)
	for i := range scores {
		scores[i] = 3 + rand.Intn(5)
	}
	return scores
}

func main() {
	log.Info("Starting database seeder...")
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	// Create 4 dummy players to use in matches
	dummyPlayers := []seedPlayer{
		{ID: "player-1", Name: "Seeder Player A"},
		{ID: "player-2", Name: "Seeder Player B"},
		{ID: "player-3", Name: "Seeder Player C"},
		{ID: "player-4", Name: "Seeder Player D"},
	}

	for _, p := range dummyPlayers {
		_, err := db.Exec("INSERT OR IGNORE INTO players (id, name, created_at) VALUES (?, ?, ?)", p.ID, p.Name, time.Now().Unix())
		if err != nil {
			log.Fatalf("Failed to insert dummy player %s: %s", p.Name, err)
		}
	}
	log.Info("Ensured dummy players exist.")

	// A flat par 4 course keeps the seeded data predictable.
	pars := make([]int, scorecard.Holes)
	total := 0
	for i := range pars {
		pars[i] = 4
		total += 4
	}
	parsJSON, _ := json.Marshal(pars)
	_, err = db.Exec("INSERT OR IGNORE INTO courses (id, name, tee_name, pars_json, total_par) VALUES (?, ?, ?, ?, ?)",
		"seeded-course", "Seeded Links", "Yellow", string(parsJSON), total)
	if err != nil {
		log.Fatalf("Failed to insert seeded course: %s", err)
	}
	log.Info("Ensured seeded course exists.")

	const batchSize = 100 // Insert 100 matches at a time
	const numMatches = 10000

	log.Info("Preparing to insert dummy matches...", "total", numMatches, "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*19) // 19 columns per match

	for i := 0; i < numMatches; i++ {
		teeTime := time.Now().Add(-time.Duration(rand.Intn(365*24)) * time.Hour)
		pA := dummyPlayers[rand.Intn(len(dummyPlayers))]
		pB := pA
		for pB.ID == pA.ID {
			pB = dummyPlayers[rand.Intn(len(dummyPlayers))]
		}
		scoresA, _ := json.Marshal(randomScores())
		scoresB, _ := json.Marshal(randomScores())

		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			uuid.NewString(),
			"seeded-course",
			pA.ID,
			pA.Name,
			pB.ID,
			pB.Name,
			teeTime.Unix(),
			teeTime.Unix(),
			teeTime.Add(4*time.Hour).Unix(),
			"PLAYED",
			"COMPLETED",
			string(scoresA),
			string(scoresB),
			nil, // winner_id
			0,   // draw
			nil, // rating_delta_a
			nil, // rating_delta_b
			nil, // result_notified_ts
			teeTime.Unix(),
		)

		if (i+1)%batchSize == 0 || (i+1) == numMatches {
			stmt := fmt.Sprintf(`
				INSERT INTO matches (id, course_id, player_a_id, player_a_name, player_b_id, player_b_name,
					scheduled_at, started_at, ended_at, status, processing_status,
					player_a_scores_json, player_b_scores_json, winner_id, draw,
					rating_delta_a, rating_delta_b, result_notified_ts, created_at)
				VALUES %s;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*19)
			log.Info("Inserted batch", "completed", i+1, "total", numMatches)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully inserted all dummy matches.", "duration", duration)
}
