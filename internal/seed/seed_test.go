package seed_test

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/goconduit/conduit/internal/config"
	"github.com/goconduit/conduit/internal/core"
	"github.com/goconduit/conduit/internal/credentials"
	"github.com/goconduit/conduit/internal/database"
	"github.com/goconduit/conduit/internal/seed"
	"github.com/goconduit/conduit/internal/utils/databaseutils"
	"github.com/stretchr/testify/suite"
)

type SeedTestSuite struct {
	suite.Suite
	db     *sql.DB
	seeder *seed.Seeder
	core   *core.Core
	ctx    context.Context
}

func TestSeedTestSuite(t *testing.T) {
	if os.Getenv("CONDUIT_TEST_DB_DSN") == "" {
		t.Skip("CONDUIT_TEST_DB_DSN not set, skipping database-backed tests")
	}
	suite.Run(t, new(SeedTestSuite))
}

func (s *SeedTestSuite) SetupSuite() {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			DSN:             os.Getenv("CONDUIT_TEST_DB_DSN"),
			MaxIdleConns:    10,
			ConnMaxIdleTime: 10 * time.Second,
			QueryTimeout:    3 * time.Second,
		},
		JWT: config.JWTConfig{
			Secret:     "test-secret",
			Algorithm:  "HS256",
			Expiration: time.Hour,
		},
	}

	db, err := database.Open(cfg)
	s.Require().NoError(err)
	s.db = db

	s.ctx = context.Background()
	s.Require().NoError(database.InitSchema(s.ctx, db))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sqlTemplate := databaseutils.NewSQLTemplate(db, cfg.Database.QueryTimeout)
	s.core = core.NewCore(db, logger, sqlTemplate, credentials.NewManager(cfg))
	s.seeder = seed.New(s.core, logger)
}

func (s *SeedTestSuite) TearDownSuite() {
	if s.db != nil {
		s.Require().NoError(s.db.Close())
	}
}

func (s *SeedTestSuite) SetupTest() {
	_, err := s.db.ExecContext(s.ctx, `TRUNCATE TABLE follows, comments, article_tags, articles, tags, users RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *SeedTestSuite) countRows(table string) int64 {
	var count int64
	s.Require().NoError(s.db.QueryRowContext(s.ctx, `SELECT COUNT(*) FROM `+table).Scan(&count))
	return count
}

func (s *SeedTestSuite) TestRunPopulatesEveryStage() {
	s.Require().NoError(s.seeder.Run(s.ctx))

	s.Equal(int64(3), s.countRows("users"))
	s.Equal(int64(8), s.countRows("tags"))
	s.Equal(int64(5), s.countRows("articles"))
	s.Equal(int64(17), s.countRows("article_tags"))
	s.Equal(int64(5), s.countRows("comments"))
	s.Equal(int64(5), s.countRows("follows"))

	// Every seeded credential verifies through the normal login path.
	user, err := s.core.GetUserByEmail(s.ctx, "john@example.com")
	s.Require().NoError(err)
	s.Equal("johndoe", user.Username)
	s.NotContains(user.PasswordHash, "password123")

	// Every foreign key resolves: no dangling associations.
	var dangling int64
	s.Require().NoError(s.db.QueryRowContext(s.ctx, `
		SELECT COUNT(*)
		FROM article_tags at
		LEFT JOIN articles a ON a.id = at.article_id
		LEFT JOIN tags t ON t.id = at.tag_id
		WHERE a.id IS NULL OR t.id IS NULL
	`).Scan(&dangling))
	s.Equal(int64(0), dangling)
}

func (s *SeedTestSuite) TestRerunSurfacesConflictWithoutDuplicating() {
	s.Require().NoError(s.seeder.Run(s.ctx))

	err := s.seeder.Run(s.ctx)
	s.Require().Error(err)
	s.True(core.IsConflict(err))

	s.Equal(int64(3), s.countRows("users"))
	s.Equal(int64(5), s.countRows("articles"))
}
