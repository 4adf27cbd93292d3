package core

import (
	"database/sql"
	"log/slog"

	"github.com/goconduit/conduit/internal/credentials"
	"github.com/goconduit/conduit/internal/utils/databaseutils"
)

// Core creates and links the content-graph entities. Every write either
// fully satisfies the uniqueness and referential-integrity invariants or
// fails; the invariants themselves are enforced by the database atomically
// with each insert.
type Core struct {
	log         *slog.Logger
	db          *sql.DB
	sqlTemplate *databaseutils.SQLTemplate
	session     databaseutils.Session
	credentials *credentials.Manager
}

func NewCore(dbConn *sql.DB, log *slog.Logger, sqlTemplate *databaseutils.SQLTemplate, creds *credentials.Manager) *Core {
	return &Core{
		log:         log,
		db:          dbConn,
		sqlTemplate: sqlTemplate,
		session:     databaseutils.NewSession(dbConn),
		credentials: creds,
	}
}
