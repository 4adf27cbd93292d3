package database

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id bigserial PRIMARY KEY,
		username text NOT NULL,
		email text NOT NULL,
		password_hash text NOT NULL,
		bio text,
		image_url text,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL,
		CONSTRAINT users_username_key UNIQUE (username),
		CONSTRAINT users_email_key UNIQUE (email)
	)`,

	`CREATE TABLE IF NOT EXISTS tags (
		id bigserial PRIMARY KEY,
		tag text NOT NULL,
		created_at timestamptz NOT NULL,
		CONSTRAINT tags_tag_key UNIQUE (tag)
	)`,

	`CREATE TABLE IF NOT EXISTS articles (
		id bigserial PRIMARY KEY,
		author_id bigint NOT NULL REFERENCES users (id),
		slug text NOT NULL,
		title text NOT NULL,
		description text NOT NULL,
		body text NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL,
		CONSTRAINT articles_slug_key UNIQUE (slug)
	)`,

	`CREATE TABLE IF NOT EXISTS article_tags (
		article_id bigint NOT NULL REFERENCES articles (id),
		tag_id bigint NOT NULL REFERENCES tags (id),
		created_at timestamptz NOT NULL,
		CONSTRAINT article_tags_pkey PRIMARY KEY (article_id, tag_id)
	)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id bigserial PRIMARY KEY,
		article_id bigint NOT NULL REFERENCES articles (id),
		author_id bigint NOT NULL REFERENCES users (id),
		body text NOT NULL,
		created_at timestamptz NOT NULL,
		updated_at timestamptz NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS follows (
		follower_id bigint NOT NULL REFERENCES users (id),
		following_id bigint NOT NULL REFERENCES users (id),
		created_at timestamptz NOT NULL,
		CONSTRAINT follows_pkey PRIMARY KEY (follower_id, following_id),
		CONSTRAINT follows_no_self_follow CHECK (follower_id <> following_id)
	)`,
}
