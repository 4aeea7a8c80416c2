package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wiratama/expense-tracker-api/config"
	"github.com/wiratama/expense-tracker-api/pkg/helpers"
)

// Seeds a demo user with a handful of transactions for local development.
func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@example.com"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, user_type, phone)
		VALUES ($1, $2, $3, 'admin', '5550001234')
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`, "Demo User", email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	samples := []struct {
		text   string
		amount float64
	}{
		{"Salary", 3200},
		{"Rent", -1100},
		{"Groceries", -86.5},
		{"Coffee", -4.25},
	}
	for _, s := range samples {
		if _, err := db.Exec(`
			INSERT INTO transactions (text, amount, user_id)
			VALUES ($1, $2, $3)
		`, s.text, s.amount, id); err != nil {
			log.Fatalf("failed to seed transaction %q: %v", s.text, err)
		}
	}
	fmt.Printf("seeded %d transactions\n", len(samples))
}
