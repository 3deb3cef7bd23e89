package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migration is one versioned schema change. Names are applied in slice
// order and recorded in schema_migrations, so they must never be reordered
// or renamed once released.
type Migration struct {
	Name string
	Up   string
	Down string
}

// Migrations is the ordered schema history of the application.
var Migrations = []Migration{
	{
		Name: "001_initial_schema",
		Up: `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	username VARCHAR NOT NULL UNIQUE,
	password VARCHAR NOT NULL,
	email VARCHAR NOT NULL UNIQUE,
	full_name VARCHAR NOT NULL,
	headline VARCHAR,
	bio TEXT,
	location VARCHAR,
	profile_image VARCHAR,
	user_type VARCHAR NOT NULL,
	company_name VARCHAR,
	company_logo VARCHAR,
	skills VARCHAR[],
	resume_url VARCHAR,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS videos (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	title VARCHAR NOT NULL,
	description TEXT,
	video_url VARCHAR NOT NULL,
	thumbnail_url VARCHAR,
	video_type VARCHAR NOT NULL,
	views BIGINT NOT NULL DEFAULT 0,
	likes BIGINT NOT NULL DEFAULT 0,
	comments BIGINT NOT NULL DEFAULT 0,
	shares BIGINT NOT NULL DEFAULT 0,
	skills VARCHAR[],
	salary VARCHAR,
	location VARCHAR,
	job_type VARCHAR,
	duration INTEGER,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS applications (
	id BIGSERIAL PRIMARY KEY,
	job_video_id BIGINT NOT NULL,
	user_video_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	employer_id BIGINT NOT NULL,
	status VARCHAR NOT NULL DEFAULT 'pending',
	note TEXT,
	resume_url VARCHAR,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS comments (
	id BIGSERIAL PRIMARY KEY,
	video_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS messages (
	id BIGSERIAL PRIMARY KEY,
	sender_id BIGINT NOT NULL,
	receiver_id BIGINT NOT NULL,
	content TEXT NOT NULL,
	read BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookmarks (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	video_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, video_id)
);`,
		Down: `
DROP TABLE IF EXISTS bookmarks;
DROP TABLE IF EXISTS messages;
DROP TABLE IF EXISTS comments;
DROP TABLE IF EXISTS applications;
DROP TABLE IF EXISTS videos;
DROP TABLE IF EXISTS users;`,
	},
	{
		Name: "002_indexes",
		Up: `
CREATE INDEX IF NOT EXISTS idx_videos_type_created ON videos (video_type, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_videos_user ON videos (user_id);
CREATE INDEX IF NOT EXISTS idx_applications_user ON applications (user_id);
CREATE INDEX IF NOT EXISTS idx_applications_employer ON applications (employer_id);
CREATE INDEX IF NOT EXISTS idx_comments_video ON comments (video_id);
CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages (sender_id, receiver_id);
CREATE INDEX IF NOT EXISTS idx_bookmarks_user ON bookmarks (user_id);`,
		Down: `
DROP INDEX IF EXISTS idx_bookmarks_user;
DROP INDEX IF EXISTS idx_messages_pair;
DROP INDEX IF EXISTS idx_comments_video;
DROP INDEX IF EXISTS idx_applications_employer;
DROP INDEX IF EXISTS idx_applications_user;
DROP INDEX IF EXISTS idx_videos_user;
DROP INDEX IF EXISTS idx_videos_type_created;`,
	},
}

// Migrate applies all pending migrations in order. Each migration runs in
// its own transaction together with its schema_migrations record.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			name VARCHAR NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedMigrations(ctx, pool)
	if err != nil {
		return err
	}

	for _, m := range Migrations {
		if applied[m.Name] {
			continue
		}
		if err := runMigration(ctx, pool, m.Name, m.Up, true); err != nil {
			return err
		}
	}
	return nil
}

// Rollback reverts the most recently applied migration, if any.
func Rollback(ctx context.Context, pool *pgxpool.Pool) error {
	var name string
	err := pool.QueryRow(ctx,
		`SELECT name FROM schema_migrations ORDER BY id DESC LIMIT 1`).Scan(&name)
	if err != nil {
		return fmt.Errorf("no migrations to roll back: %w", err)
	}

	for _, m := range Migrations {
		if m.Name == name {
			return runMigration(ctx, pool, m.Name, m.Down, false)
		}
	}
	return fmt.Errorf("unknown migration %q recorded in schema_migrations", name)
}

func appliedMigrations(ctx context.Context, pool *pgxpool.Pool) (map[string]bool, error) {
	rows, err := pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}

func runMigration(ctx context.Context, pool *pgxpool.Pool, name, script string, up bool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, script); err != nil {
		return fmt.Errorf("migration %s: %w", name, err)
	}

	if up {
		_, err = tx.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name)
	} else {
		_, err = tx.Exec(ctx, `DELETE FROM schema_migrations WHERE name = $1`, name)
	}
	if err != nil {
		return fmt.Errorf("record migration %s: %w", name, err)
	}

	return tx.Commit(ctx)
}
