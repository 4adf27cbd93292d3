package seed

import (
	"context"
	"log/slog"

	"github.com/goconduit/conduit/internal/core"
	"github.com/goconduit/conduit/internal/validator"
	"github.com/goconduit/conduit/models"
	"github.com/mdobak/go-xerrors"
)

// Seeder populates an empty database with sample content. The stages run in
// strict dependency order (users, tags, articles with their associations,
// comments, follows) and each stage's identifier mapping is passed explicitly
// into the next, so a later stage can never reference an entity that does
// not exist yet.
type Seeder struct {
	core *core.Core
	log  *slog.Logger
}

func New(c *core.Core, log *slog.Logger) *Seeder {
	return &Seeder{
		core: c,
		log:  log,
	}
}

// Run executes the full pipeline. Re-running against an already seeded
// database surfaces a conflict from the first stage; nothing is duplicated.
func (s *Seeder) Run(ctx context.Context) error {
	usersByName, err := s.seedUsers(ctx)
	if err != nil {
		return xerrors.New(err)
	}

	if err := s.seedTags(ctx); err != nil {
		return xerrors.New(err)
	}

	articlesByTitle, err := s.seedArticles(ctx, usersByName)
	if err != nil {
		return xerrors.New(err)
	}

	if err := s.seedComments(ctx, articlesByTitle, usersByName); err != nil {
		return xerrors.New(err)
	}

	if err := s.seedFollows(ctx, usersByName); err != nil {
		return xerrors.New(err)
	}

	s.log.Info("Database seeded successfully")
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) (map[string]*models.User, error) {
	usersByName := make(map[string]*models.User, len(sampleUsers))
	for _, sample := range sampleUsers {
		v := validator.New()
		v.CheckNotBlank(sample.Username, "username", "must be provided")
		v.CheckEmail(sample.Email, "must be a valid email address")
		v.Check(len(sample.Password) >= 8, "password", "must be at least 8 characters long")
		if !v.IsValid() {
			return nil, xerrors.Newf("invalid sample user %q: %v", sample.Username, v.Errors)
		}

		bio := sample.Bio
		user, err := s.core.CreateUser(ctx, core.NewUser{
			Username: sample.Username,
			Email:    sample.Email,
			Password: sample.Password,
			Bio:      &bio,
		})
		if err != nil {
			return nil, xerrors.New(err)
		}
		usersByName[user.Username] = user
	}

	s.log.Info("Seeded users", "count", len(usersByName))
	return usersByName, nil
}

func (s *Seeder) seedTags(ctx context.Context) error {
	tags, err := s.core.ResolveTags(ctx, sampleTags)
	if err != nil {
		return xerrors.New(err)
	}

	s.log.Info("Seeded tags", "count", len(tags))
	return nil
}

func (s *Seeder) seedArticles(ctx context.Context, usersByName map[string]*models.User) (map[string]*models.Article, error) {
	articlesByTitle := make(map[string]*models.Article, len(sampleArticles))
	for _, sample := range sampleArticles {
		author, ok := usersByName[sample.Author]
		if !ok {
			return nil, xerrors.Newf("sample article %q references unknown author %q", sample.Title, sample.Author)
		}

		v := validator.New()
		v.CheckNotBlank(sample.Title, "title", "must be provided")
		v.CheckNotBlank(sample.Body, "body", "must be provided")
		v.Check(v.IsUnique(sample.Tags), "tags", "must not contain duplicates")
		if !v.IsValid() {
			return nil, xerrors.Newf("invalid sample article %q: %v", sample.Title, v.Errors)
		}

		article, err := s.core.CreateArticle(ctx, core.NewArticle{
			AuthorID:    author.ID,
			Title:       sample.Title,
			Description: sample.Description,
			Body:        sample.Body,
			TagNames:    sample.Tags,
		})
		if err != nil {
			return nil, xerrors.New(err)
		}
		articlesByTitle[sample.Title] = article
	}

	s.log.Info("Seeded articles", "count", len(articlesByTitle))
	return articlesByTitle, nil
}

func (s *Seeder) seedComments(ctx context.Context, articlesByTitle map[string]*models.Article, usersByName map[string]*models.User) error {
	for _, sample := range sampleComments {
		article, ok := articlesByTitle[sample.Article]
		if !ok {
			return xerrors.Newf("sample comment references unknown article %q", sample.Article)
		}
		author, ok := usersByName[sample.Author]
		if !ok {
			return xerrors.Newf("sample comment references unknown author %q", sample.Author)
		}

		if _, err := s.core.CreateComment(ctx, core.NewComment{
			ArticleID: article.ID,
			AuthorID:  author.ID,
			Body:      sample.Body,
		}); err != nil {
			return xerrors.New(err)
		}
	}

	s.log.Info("Seeded comments", "count", len(sampleComments))
	return nil
}

func (s *Seeder) seedFollows(ctx context.Context, usersByName map[string]*models.User) error {
	for _, sample := range sampleFollows {
		follower, ok := usersByName[sample.Follower]
		if !ok {
			return xerrors.Newf("sample follow references unknown follower %q", sample.Follower)
		}
		following, ok := usersByName[sample.Following]
		if !ok {
			return xerrors.Newf("sample follow references unknown user %q", sample.Following)
		}

		if _, err := s.core.FollowUser(ctx, follower.ID, following.ID); err != nil {
			return xerrors.New(err)
		}
	}

	s.log.Info("Seeded follow edges", "count", len(sampleFollows))
	return nil
}
