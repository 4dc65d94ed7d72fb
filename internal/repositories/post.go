package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// PostReadRepository handles blog post read operations.
type PostReadRepository struct {
	db *sqlx.DB
}

func NewPostReadRepository(db *sqlx.DB) *PostReadRepository {
	return &PostReadRepository{db: db}
}

// GetByID returns the post with the given id, or nil when absent.
func (r *PostReadRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	const query = `
		SELECT post_id, user_id, category_id, title, content, created_at, updated_at
		FROM blog_posts
		WHERE post_id = $1
	`

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, postID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// List returns all posts in insertion order.
func (r *PostReadRepository) List(ctx context.Context) ([]models.PostDB, error) {
	const query = `
		SELECT post_id, user_id, category_id, title, content, created_at, updated_at
		FROM blog_posts
		ORDER BY created_at
	`

	posts := make([]models.PostDB, 0)
	err := r.db.SelectContext(ctx, &posts, query)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(posts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return posts, nil
}

// PostWriteRepository handles blog post write operations.
type PostWriteRepository struct {
	db *sqlx.DB
}

func NewPostWriteRepository(db *sqlx.DB) *PostWriteRepository {
	return &PostWriteRepository{db: db}
}

// Save inserts a new post owned by userID and returns the stored record.
func (r *PostWriteRepository) Save(ctx context.Context, userID, categoryID uuid.UUID, title, content string) (*models.PostDB, error) {
	const query = `
		INSERT INTO blog_posts (user_id, category_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING post_id, user_id, category_id, title, content, created_at, updated_at
	`
	args := []any{userID, categoryID, title, content}

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Update replaces the post's category, title and content and returns the
// record after the update. The owner is never changed here. Returns nil
// without error when the post does not exist.
func (r *PostWriteRepository) Update(ctx context.Context, postID, categoryID uuid.UUID, title, content string) (*models.PostDB, error) {
	const query = `
		UPDATE blog_posts
		SET category_id = $2, title = $3, content = $4, updated_at = NOW()
		WHERE post_id = $1
		RETURNING post_id, user_id, category_id, title, content, created_at, updated_at
	`
	args := []any{postID, categoryID, title, content}

	var post models.PostDB
	err := r.db.GetContext(ctx, &post, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Delete removes the post and returns the number of deleted rows.
func (r *PostWriteRepository) Delete(ctx context.Context, postID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM blog_posts
		WHERE post_id = $1
	`

	res, err := r.db.ExecContext(ctx, query, postID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{postID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
