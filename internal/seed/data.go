package seed

type sampleUser struct {
	Username string
	Email    string
	Password string
	Bio      string
}

type sampleArticle struct {
	Title       string
	Description string
	Body        string
	Tags        []string
	Author      string
}

type sampleComment struct {
	Article string
	Author  string
	Body    string
}

type sampleFollow struct {
	Follower  string
	Following string
}

var sampleUsers = []sampleUser{
	{
		Username: "johndoe",
		Email:    "john@example.com",
		Password: "password123",
		Bio:      "I'm a software developer who loves writing about technology and programming.",
	},
	{
		Username: "janedoe",
		Email:    "jane@example.com",
		Password: "password123",
		Bio:      "Tech enthusiast and avid reader. I write about my experiences in the industry.",
	},
	{
		Username: "bobsmith",
		Email:    "bob@example.com",
		Password: "password123",
		Bio:      "Full-stack developer with a passion for clean code and best practices.",
	},
}

var sampleTags = []string{
	"python",
	"fastapi",
	"programming",
	"webdev",
	"tutorial",
	"javascript",
	"react",
	"database",
}

var sampleArticles = []sampleArticle{
	{
		Title:       "Getting Started with FastAPI",
		Description: "A comprehensive guide to building APIs with FastAPI",
		Body: `FastAPI is a modern, fast (high-performance), web framework for building APIs with Python 3.7+ based on standard Python type hints.

## Key Features

- **Fast**: Very high performance, on par with NodeJS and Go
- **Intuitive**: Great editor support with completion everywhere
- **Robust**: Get production-ready code with automatic interactive documentation

## Getting Started

First, install FastAPI:

` + "```bash\npip install fastapi uvicorn\n```" + `

Then create a simple API and run it with uvicorn. That's it! You now have a working API.`,
		Tags:   []string{"python", "fastapi", "tutorial", "webdev"},
		Author: "johndoe",
	},
	{
		Title:       "Understanding Python Async/Await",
		Description: "Deep dive into asynchronous programming in Python",
		Body: `Asynchronous programming in Python has become increasingly important for building high-performance applications.

## What is Async/Await?

The async and await keywords in Python allow you to write asynchronous code that looks and behaves like synchronous code.

## Why Use Async?

- Handle many concurrent connections
- Improve I/O-bound application performance
- Better resource utilization

Async programming is essential for modern web applications that need to handle many simultaneous requests efficiently.`,
		Tags:   []string{"python", "programming", "tutorial"},
		Author: "janedoe",
	},
	{
		Title:       "Building RESTful APIs: Best Practices",
		Description: "Learn the best practices for designing and building RESTful APIs",
		Body: `REST (Representational State Transfer) is an architectural style for designing networked applications.

## Key Principles

1. **Use HTTP Methods Correctly** - GET for retrieving, POST for creating, PUT/PATCH for updating, DELETE for removing
2. **Use Meaningful Resource Names** - nouns, not verbs; plural names for collections
3. **Handle Errors Gracefully** - appropriate status codes and meaningful error messages
4. **Version Your API** - include the version in the URL or a header
5. **Implement Pagination** - use limit and offset parameters

Following these practices will help you build APIs that are intuitive, maintainable, and scalable.`,
		Tags:   []string{"webdev", "programming", "tutorial"},
		Author: "bobsmith",
	},
	{
		Title:       "Introduction to React Hooks",
		Description: "A beginner's guide to using React Hooks",
		Body: `React Hooks were introduced in React 16.8 and have revolutionized how we write React components.

## What are Hooks?

Hooks are functions that let you "hook into" React state and lifecycle features from function components.

## Common Hooks

- useState for local component state
- useEffect for side effects and lifecycle behavior
- useContext for consuming context values

## Benefits

Simpler code, reusable logic, no more class components needed. Hooks make React development more intuitive and enjoyable!`,
		Tags:   []string{"javascript", "react", "tutorial", "webdev"},
		Author: "johndoe",
	},
	{
		Title:       "Database Design Fundamentals",
		Description: "Essential concepts for designing efficient databases",
		Body: `Good database design is crucial for building scalable and maintainable applications.

## Normalization

Normalization is the process of organizing data to reduce redundancy: 1NF eliminates repeating groups, 2NF removes partial dependencies, 3NF removes transitive dependencies.

## Indexing

Indexes improve query performance but have trade-offs: faster reads, slower writes, additional storage.

## Relationships

One-to-One (User -> Profile), One-to-Many (Author -> Articles), Many-to-Many (Articles <-> Tags).

A well-designed database is the foundation of a successful application.`,
		Tags:   []string{"database", "programming", "tutorial"},
		Author: "janedoe",
	},
}

var sampleComments = []sampleComment{
	{Article: "Getting Started with FastAPI", Author: "janedoe", Body: "Great introduction to FastAPI! Very helpful."},
	{Article: "Getting Started with FastAPI", Author: "bobsmith", Body: "I've been using FastAPI for a while now, it's amazing!"},
	{Article: "Understanding Python Async/Await", Author: "johndoe", Body: "Async programming can be tricky, thanks for the clear explanation."},
	{Article: "Building RESTful APIs: Best Practices", Author: "janedoe", Body: "These best practices are spot on. I wish I had read this earlier."},
	{Article: "Introduction to React Hooks", Author: "bobsmith", Body: "Hooks changed how I write React code. Great article!"},
}

var sampleFollows = []sampleFollow{
	{Follower: "johndoe", Following: "janedoe"},
	{Follower: "johndoe", Following: "bobsmith"},
	{Follower: "janedoe", Following: "johndoe"},
	{Follower: "bobsmith", Following: "johndoe"},
	{Follower: "bobsmith", Following: "janedoe"},
}
