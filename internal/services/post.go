package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/blog-api/internal/facades"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

// Error variables
var (
	ErrPostFieldsRequired = errors.New("all fields are mandatory")
	ErrPostNotFound       = errors.New("blog post not found")
	ErrPostWriteFailed    = errors.New("blog post write failed")
)

// PostReader defines read-only operations for blog posts.
type PostReader interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	List(ctx context.Context) ([]models.PostDB, error)
}

// PostWriter defines write operations for blog posts.
type PostWriter interface {
	Save(ctx context.Context, userID, categoryID uuid.UUID, title, content string) (*models.PostDB, error)
	Update(ctx context.Context, postID, categoryID uuid.UUID, title, content string) (*models.PostDB, error)
	Delete(ctx context.Context, postID uuid.UUID) (int64, error)
}

// CategoryGetter resolves category references.
type CategoryGetter interface {
	GetByID(ctx context.Context, categoryID uuid.UUID) (*models.CategoryDB, error)
}

// PostCache caches post reads. All cache failures are soft.
type PostCache interface {
	GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error)
	SetByID(ctx context.Context, post *models.PostDB) error
	GetList(ctx context.Context) ([]models.PostDB, error)
	SetList(ctx context.Context, posts []models.PostDB) error
	Invalidate(ctx context.Context, postID uuid.UUID) error
}

// EventPublisher publishes blog lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event string, postID, userID uuid.UUID)
}

// PostService handles blog post CRUD, caching and event publishing.
// The post owner is always the authenticated caller.
type PostService struct {
	reader     PostReader
	writer     PostWriter
	categories CategoryGetter
	cache      PostCache
	events     EventPublisher
}

// NewPostService creates a new PostService instance.
func NewPostService(
	reader PostReader,
	writer PostWriter,
	categories CategoryGetter,
	cache PostCache,
	events EventPublisher,
) *PostService {
	return &PostService{
		reader:     reader,
		writer:     writer,
		categories: categories,
		cache:      cache,
		events:     events,
	}
}

// Create persists a new post owned by callerID.
func (svc *PostService) Create(ctx context.Context, callerID, categoryID uuid.UUID, title, content string) (*models.PostDB, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if categoryID == uuid.Nil || title == "" || content == "" {
		return nil, ErrPostFieldsRequired
	}

	category, err := svc.categories.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to resolve category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	post, err := svc.writer.Save(ctx, callerID, categoryID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to save post", "err", err)
		return nil, err
	}

	svc.invalidateCache(ctx, post.PostID)
	if svc.events != nil {
		svc.events.Publish(ctx, facades.EventPostCreated, post.PostID, post.UserID)
	}

	return post, nil
}

// List returns all posts, served from cache when possible.
func (svc *PostService) List(ctx context.Context) ([]models.PostDB, error) {
	if svc.cache != nil {
		if posts, err := svc.cache.GetList(ctx); err == nil && posts != nil {
			return posts, nil
		}
	}

	posts, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "err", err)
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetList(ctx, posts); err != nil {
			logger.Log.Errorw("failed to cache post list", "err", err)
		}
	}

	return posts, nil
}

// GetOne returns the post with the given id, served from cache when possible.
func (svc *PostService) GetOne(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	if svc.cache != nil {
		if post, err := svc.cache.GetByID(ctx, postID); err == nil && post != nil {
			return post, nil
		}
	}

	post, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.SetByID(ctx, post); err != nil {
			logger.Log.Errorw("failed to cache post", "post_id", postID, "err", err)
		}
	}

	return post, nil
}

// Update replaces the post's category, title and content and returns the
// state after the update. Ownership never changes.
func (svc *PostService) Update(ctx context.Context, postID, categoryID uuid.UUID, title, content string) (*models.PostDB, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if categoryID == uuid.Nil || title == "" || content == "" {
		return nil, ErrPostFieldsRequired
	}

	existing, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrPostNotFound
	}

	category, err := svc.categories.GetByID(ctx, categoryID)
	if err != nil {
		logger.Log.Errorw("failed to resolve category", "category_id", categoryID, "err", err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	updated, err := svc.writer.Update(ctx, postID, categoryID, title, content)
	if err != nil {
		logger.Log.Errorw("failed to update post", "post_id", postID, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostWriteFailed
	}

	svc.invalidateCache(ctx, postID)
	if svc.events != nil {
		svc.events.Publish(ctx, facades.EventPostUpdated, updated.PostID, updated.UserID)
	}

	return updated, nil
}

// Delete removes an existing post.
func (svc *PostService) Delete(ctx context.Context, postID uuid.UUID) error {
	existing, err := svc.reader.GetByID(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to get post", "post_id", postID, "err", err)
		return err
	}
	if existing == nil {
		return ErrPostNotFound
	}

	rowsAffected, err := svc.writer.Delete(ctx, postID)
	if err != nil {
		logger.Log.Errorw("failed to delete post", "post_id", postID, "err", err)
		return err
	}
	if rowsAffected < 1 {
		return ErrPostWriteFailed
	}

	svc.invalidateCache(ctx, postID)
	if svc.events != nil {
		svc.events.Publish(ctx, facades.EventPostDeleted, postID, existing.UserID)
	}

	return nil
}

func (svc *PostService) invalidateCache(ctx context.Context, postID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, postID); err != nil {
		logger.Log.Errorw("failed to invalidate post cache", "post_id", postID, "err", err)
	}
}
