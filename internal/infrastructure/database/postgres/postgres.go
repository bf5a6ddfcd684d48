// Package postgres opens the database and keeps its schema current.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open connects through the pgx stdlib driver and checks the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// Schema is applied in order by Migrate. Every statement is idempotent.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id SERIAL PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		avatar_pic TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS setting (
		setting_id INT PRIMARY KEY CHECK (setting_id = 1),
		site_name TEXT NOT NULL,
		tagline TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		resume_url TEXT,
		logo TEXT,
		github_url TEXT NOT NULL DEFAULT '',
		linkedin_url TEXT NOT NULL DEFAULT '',
		twitter_url TEXT NOT NULL DEFAULT '',
		instagram_url TEXT NOT NULL DEFAULT '',
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS article (
		article_id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		excerpt TEXT,
		body TEXT NOT NULL,
		cover_image TEXT,
		tags TEXT[] NOT NULL DEFAULT '{}',
		published BOOLEAN NOT NULL DEFAULT FALSE,
		published_at TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS award (
		award_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		issuer TEXT NOT NULL,
		award_date TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		url TEXT,
		image TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS certification (
		certification_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		issuer TEXT NOT NULL,
		issue_date TEXT NOT NULL,
		expiry_date TEXT,
		credential_id TEXT,
		credential_url TEXT,
		image TEXT,
		created_at TEXT,
		updated_at TEXT,
		CHECK (expiry_date IS NULL OR expiry_date >= issue_date)
	)`,
	`CREATE TABLE IF NOT EXISTS education (
		education_id SERIAL PRIMARY KEY,
		institution TEXT NOT NULL,
		degree TEXT NOT NULL,
		field_of_study TEXT,
		start_month TEXT NOT NULL,
		end_month TEXT,
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		grade TEXT,
		description TEXT,
		logo TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS experience (
		experience_id SERIAL PRIMARY KEY,
		company TEXT NOT NULL,
		position TEXT NOT NULL,
		location TEXT,
		employment_type TEXT,
		start_month TEXT NOT NULL,
		end_month TEXT,
		is_current BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT,
		logo TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS service (
		service_id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		icon TEXT,
		ord INT NOT NULL DEFAULT 0,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS testimonial (
		testimonial_id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT,
		company TEXT,
		quote TEXT NOT NULL,
		rating INT NOT NULL DEFAULT 0 CHECK (rating BETWEEN 0 AND 5),
		avatar TEXT,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS project (
		project_id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		tech_stack TEXT[] NOT NULL DEFAULT '{}',
		github_url TEXT,
		live_url TEXT,
		image TEXT,
		project_year INT NOT NULL DEFAULT 0,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TEXT,
		updated_at TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS article_published_idx ON article (published, published_at DESC)`,
	`CREATE INDEX IF NOT EXISTS project_featured_idx ON project (featured DESC, project_year DESC)`,
}

// Migrate applies Schema inside one transaction.
func Migrate(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range Schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return tx.Commit()
}
