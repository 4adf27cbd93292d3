package models

import "time"

type User struct {
	ID           int64     `json:"-"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          *string   `json:"bio"`
	ImageURL     *string   `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Tag struct {
	ID        int64     `json:"-"`
	Name      string    `json:"tag"`
	CreatedAt time.Time `json:"createdAt"`
}

type Article struct {
	ID          int64     `json:"-"`
	AuthorID    int64     `json:"-"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Body        string    `json:"body"`
	TagList     []string  `json:"tagList,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArticleTag links one article to one tag. The (ArticleID, TagID) pair is
// unique, so an article can never carry the same tag twice.
type ArticleTag struct {
	ArticleID int64     `json:"-"`
	TagID     int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

type Comment struct {
	ID        int64     `json:"-"`
	ArticleID int64     `json:"-"`
	AuthorID  int64     `json:"-"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Follow is a directed edge: follower follows following. It has no identity
// beyond the ordered pair.
type Follow struct {
	FollowerID  int64     `json:"-"`
	FollowingID int64     `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}
