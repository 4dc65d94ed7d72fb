package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/blog-api/internal/logger"
	"github.com/sbilibin2017/blog-api/internal/models"
)

const postListCacheKey = "blog_posts:list"

// PostCacheRepository caches post reads in Redis.
type PostCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached entries
}

// NewPostCacheRepository creates a new repository instance with the given TTL.
func NewPostCacheRepository(client *redis.Client, expiration time.Duration) *PostCacheRepository {
	return &PostCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func postCacheKey(postID uuid.UUID) string {
	return fmt.Sprintf("blog_posts:%s", postID)
}

// GetByID returns the cached post, or nil on a cache miss.
func (r *PostCacheRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.PostDB, error) {
	key := postCacheKey(postID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("cache read failed", "key", key, "error", err)
		return nil, err
	}

	var post models.PostDB
	if err := json.Unmarshal([]byte(val), &post); err != nil {
		logger.Log.Errorw("cache entry malformed", "key", key, "error", err)
		return nil, err
	}

	return &post, nil
}

// SetByID caches a post with the configured TTL.
func (r *PostCacheRepository) SetByID(ctx context.Context, post *models.PostDB) error {
	key := postCacheKey(post.PostID)

	data, err := json.Marshal(post)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", key, "error", err)

	return err
}

// GetList returns the cached post list, or nil on a cache miss.
func (r *PostCacheRepository) GetList(ctx context.Context) ([]models.PostDB, error) {
	val, err := r.client.Get(ctx, postListCacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("cache read failed", "key", postListCacheKey, "error", err)
		return nil, err
	}

	var posts []models.PostDB
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		logger.Log.Errorw("cache entry malformed", "key", postListCacheKey, "error", err)
		return nil, err
	}

	return posts, nil
}

// SetList caches the full post list with the configured TTL.
func (r *PostCacheRepository) SetList(ctx context.Context, posts []models.PostDB) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, postListCacheKey, data, r.exp).Err()

	logger.Log.Infow("cache set", "key", postListCacheKey, "error", err)

	return err
}

// Invalidate drops the cached entry for a post and the cached list.
func (r *PostCacheRepository) Invalidate(ctx context.Context, postID uuid.UUID) error {
	err := r.client.Del(ctx, postCacheKey(postID), postListCacheKey).Err()

	logger.Log.Infow("cache invalidated", "post_id", postID, "error", err)

	return err
}
