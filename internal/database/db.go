package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/goconduit/conduit/internal/config"
	_ "github.com/lib/pq"
	"github.com/mdobak/go-xerrors"
)

// Open establishes the connection pool and verifies it with a ping.
func Open(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, xerrors.New(err)
	}

	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, xerrors.New(err)
	}

	return db, nil
}

// InitSchema creates the tables if they do not exist. Every uniqueness and
// referential-integrity invariant lives in the database itself, so a
// constraint check always happens atomically with the insert that could
// violate it.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, statement := range schemaStatements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return xerrors.New(err)
		}
	}

	return nil
}
