package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ratehub/ratehub/config"
	"github.com/ratehub/ratehub/pkg/helpers"
)

type seedUser struct {
	name     string
	email    string
	password string
	address  string
	role     string
}

// Demo accounts for local development. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	users := []seedUser{
		{"System Administrator", "admin@system.com", "AdminPassword1!", "HQ Address, 123 Admin St", "admin"},
		{"Store Owner User", "owner@store.com", "OwnerPassword1!", "Owner St, 456 Business Rd", "owner"},
		{"Normal User Test", "user@test.com", "UserPassword1!", "User Ln, 789 Customer Ave", "user"},
	}

	ids := make(map[string]int64, len(users))
	for _, u := range users {
		hash, err := helpers.HashPassword(u.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id int64
		err = db.QueryRow(`
			INSERT INTO users (name, email, password, address, role)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.name, u.email, hash, u.address, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		ids[u.email] = id
		fmt.Printf("seeded user: id=%d email=%s role=%s password=%s\n", id, u.email, u.role, u.password)
	}

	ownerID := ids["owner@store.com"]
	stores := []struct {
		name    string
		email   string
		address string
	}{
		{"Tech Gadgets Store Inc.", "contact@techgadgets.com", "101 Tech Blvd, Silicon Valley"},
		{"Organic Foods Market", "info@organicfoods.com", "202 Green Way, Eco City"},
	}

	storeIDs := make([]int64, 0, len(stores))
	for _, s := range stores {
		var id int64
		err = db.QueryRow(`SELECT id FROM stores WHERE email = $1`, s.email).Scan(&id)
		if err == sql.ErrNoRows {
			err = db.QueryRow(`
				INSERT INTO stores (name, email, address, owner_id)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`, s.name, s.email, s.address, ownerID).Scan(&id)
		}
		if err != nil {
			log.Fatalf("failed to seed store %s: %v", s.name, err)
		}
		storeIDs = append(storeIDs, id)
		fmt.Printf("seeded store: id=%d name=%s\n", id, s.name)
	}

	userID := ids["user@test.com"]
	ratings := []int{5, 4}
	for i, storeID := range storeIDs {
		if _, err := db.Exec(`
			INSERT INTO ratings (user_id, store_id, rating)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, store_id) DO UPDATE SET rating = EXCLUDED.rating
		`, userID, storeID, ratings[i]); err != nil {
			log.Fatalf("failed to seed rating: %v", err)
		}
	}
	fmt.Println("database seeded successfully")
}
