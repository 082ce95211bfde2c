package course

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/coursegen/internal/cache"
	"github.com/saulo-duarte/coursegen/internal/config"
	"gorm.io/gorm"
)

type cachedRepository struct {
	Repository
	store cache.Store
	ttl   time.Duration
	inTx  bool
}

// NewCachedRepository reads courses through store. Every write drops the cached entry;
// cache failures fall back to the wrapped repository. A transaction-scoped copy reads
// straight from the database, and its writes are only visible to other readers after
// commit, so callers must Invalidate once the transaction succeeds.
func NewCachedRepository(inner Repository, store cache.Store, ttl time.Duration) Repository {
	return &cachedRepository{Repository: inner, store: store, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return "course:" + id.String()
}

func (r *cachedRepository) WithTx(tx *gorm.DB) Repository {
	return &cachedRepository{Repository: r.Repository.WithTx(tx), store: r.store, ttl: r.ttl, inTx: true}
}

func (r *cachedRepository) GetByID(ctx context.Context, id uuid.UUID) (*Course, error) {
	if r.inTx {
		return r.Repository.GetByID(ctx, id)
	}
	log := config.WithContext(ctx).WithField("course_id", id)

	raw, err := r.store.Get(ctx, cacheKey(id))
	if err == nil {
		var c Course
		if err := json.Unmarshal(raw, &c); err == nil {
			return &c, nil
		}
		log.WithError(err).Warn("Discarding undecodable cached course")
	} else if !errors.Is(err, cache.ErrMiss) {
		log.WithError(err).Warn("Course cache read failed")
	}

	c, err := r.Repository.GetByID(ctx, id)
	if err != nil || c == nil {
		return c, err
	}

	if raw, err := json.Marshal(c); err == nil {
		if err := r.store.Set(ctx, cacheKey(id), raw, r.ttl); err != nil {
			log.WithError(err).Warn("Course cache write failed")
		}
	}
	return c, nil
}

func (r *cachedRepository) UpdateChapters(ctx context.Context, id uuid.UUID, chapters []Chapter) error {
	defer r.invalidate(ctx, id)
	return r.Repository.UpdateChapters(ctx, id, chapters)
}

func (r *cachedRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	defer r.invalidate(ctx, id)
	return r.Repository.Update(ctx, id, fields)
}

func (r *cachedRepository) Invalidate(ctx context.Context, id uuid.UUID) {
	r.invalidate(ctx, id)
}

func (r *cachedRepository) invalidate(ctx context.Context, id uuid.UUID) {
	if err := r.store.Delete(ctx, cacheKey(id)); err != nil {
		config.WithContext(ctx).WithError(err).Warn("Course cache invalidation failed")
	}
}
