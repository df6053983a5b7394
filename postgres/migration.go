// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"

	"github.com/rubenv/sql-migrate"
)

// This file maintains the database migration code.  See
// https://github.com/rubenv/sql-migrate for details of what goes in
// here.  This runs "outside" the normal placeholder flow, either at
// initial startup or from an external tool.

var migrationSource = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1-initial",
			Up: []string{
				`CREATE TABLE users(
					id INTEGER PRIMARY KEY,
					name TEXT NOT NULL,
					username TEXT NOT NULL,
					email TEXT NOT NULL,
					phone TEXT NOT NULL,
					website TEXT NOT NULL,
					address JSONB NOT NULL,
					company JSONB NOT NULL
				)`,
				`CREATE INDEX users_username ON users(username)`,
				`CREATE INDEX users_email ON users(email)`,
				`CREATE TABLE posts(
					id SERIAL PRIMARY KEY,
					user_id INTEGER NOT NULL,
					title TEXT NOT NULL,
					body TEXT NOT NULL
				)`,
				`CREATE INDEX posts_user_id ON posts(user_id)`,
				`CREATE TABLE comments(
					id SERIAL PRIMARY KEY,
					post_id INTEGER NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
					name TEXT NOT NULL,
					email TEXT NOT NULL,
					body TEXT NOT NULL
				)`,
				`CREATE INDEX comments_post_id ON comments(post_id)`,
			},
			Down: []string{
				`DROP TABLE comments`,
				`DROP TABLE posts`,
				`DROP TABLE users`,
			},
		},
	},
}

// Upgrade upgrades a database to the latest database schema version.
func Upgrade(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Up)
	return err
}

// Drop clears a database by running all of the migrations in reverse,
// ultimately resulting in dropping all of the tables.
func Drop(db *sql.DB) error {
	_, err := migrate.Exec(db, "postgres", migrationSource, migrate.Down)
	return err
}
