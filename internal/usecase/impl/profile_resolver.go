package impl

import (
	"context"
	"log/slog"
	"strconv"

	"dashboard/internal/domain/entity"
	"dashboard/internal/domain/repository"
	"dashboard/internal/domain/service"
	"dashboard/internal/errors"
	"dashboard/internal/usecase"

	"golang.org/x/sync/singleflight"
)

// Fallback reasons reported to metrics and logs.
const (
	fallbackNotFound = "not_found"
	fallbackError    = "error"
	fallbackMismatch = "mismatch"
)

type profileResolver struct {
	logger  *slog.Logger
	repo    repository.ProfileRepository
	cache   *ProfileCache
	metrics service.MetricsRecorder
	group   singleflight.Group
}

// NewProfileResolver creates the cached, fail-open profile resolver.
func NewProfileResolver(
	logger *slog.Logger,
	repo repository.ProfileRepository,
	cache *ProfileCache,
	metrics service.MetricsRecorder,
) usecase.ProfileUsecase {
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &profileResolver{
		logger:  logger.With(slog.String("component", "profile_resolver")),
		repo:    repo,
		cache:   cache,
		metrics: metrics,
	}
}

// Resolve returns the cached profile for id or fetches it once.
// Concurrent misses for the same id share a single store lookup.
func (r *profileResolver) Resolve(ctx context.Context, id string) *entity.Profile {
	if profile, ok := r.cache.Get(id); ok {
		r.metrics.RecordProfileCacheHit()

		return profile
	}
	r.metrics.RecordProfileCacheMiss()

	generation := r.cache.Generation()
	key := strconv.FormatUint(generation, 10) + "/" + id

	result, _, _ := r.group.Do(key, func() (any, error) {
		if profile, ok := r.cache.Get(id); ok {
			return profile, nil
		}

		profile, reason, err := resolveOrDefault(id, func() (*entity.Profile, error) {
			return r.repo.FindByID(ctx, id)
		})
		if reason != "" {
			r.metrics.RecordProfileFallback(reason)
			attrs := []any{slog.String("identity_id", id), slog.String("reason", reason)}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}
			r.logger.WarnContext(ctx, "using default profile", attrs...)
		}
		// A fallback caused by the caller giving up must not be cached for the TTL.
		if err != nil && ctx.Err() != nil {
			return profile, nil
		}
		if !r.cache.PutIfGeneration(generation, profile) {
			r.logger.DebugContext(ctx, "profile cache cleared during fetch, result not cached",
				slog.String("identity_id", id),
			)
		}

		return profile, nil
	})

	profile, _ := result.(*entity.Profile)
	if profile == nil {
		return entity.DefaultProfile(id)
	}

	return profile
}

// Clear drops every cached profile.
func (r *profileResolver) Clear() {
	r.cache.Clear()
}

// resolveOrDefault runs fetch and substitutes entity.DefaultProfile(id) when the
// store has no usable row. reason is empty when the fetched row was used; err is
// the store error behind an "error" fallback and is only meant for logging.
func resolveOrDefault(id string, fetch func() (*entity.Profile, error)) (*entity.Profile, string, error) {
	profile, err := fetch()

	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		return entity.DefaultProfile(id), fallbackNotFound, nil
	case err != nil:
		return entity.DefaultProfile(id), fallbackError, err
	case profile == nil:
		return entity.DefaultProfile(id), fallbackNotFound, nil
	case profile.ID != id:
		return entity.DefaultProfile(id), fallbackMismatch, nil
	}

	return profile, "", nil
}
