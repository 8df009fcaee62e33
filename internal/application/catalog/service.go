package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/partytracker/party-service/internal/application/listing"
	"github.com/partytracker/party-service/internal/domain"
	"github.com/partytracker/party-service/internal/metrics"
	zlog "github.com/rs/zerolog/log"
)

// ErrSourceUnavailable marks a failed read or write against the record
// source. It is an AppError so the transport maps it to 503.
var ErrSourceUnavailable = domain.ErrUnavailable("record source unavailable")

type Options struct {
	TTLDetails     time.Duration
	TTLList        time.Duration
	Location       *time.Location // calendar-day filtering zone
	UpcomingWindow time.Duration
	HomeLimit      int
}

type Service struct {
	src   RecordSource
	pub   EventPublisher
	cache Cache
	clock Clock
	auth  Authorizer
	eval  listing.Evaluator

	ttlDetails     time.Duration
	ttlList        time.Duration
	upcomingWindow time.Duration
	homeLimit      int
}

func New(
	src RecordSource,
	clock Clock,
	pub EventPublisher,
	cache Cache,
	auth Authorizer,
	opts Options,
) *Service {
	if opts.TTLDetails == 0 {
		opts.TTLDetails = 5 * time.Minute
	}
	if opts.TTLList == 0 {
		opts.TTLList = 15 * time.Second
	}
	if opts.UpcomingWindow <= 0 {
		opts.UpcomingWindow = listing.DefaultUpcomingWindow
	}
	if opts.HomeLimit <= 0 {
		opts.HomeLimit = listing.DefaultHomeLimit
	}
	if pub == nil {
		pub = NoopPublisher{}
	}
	if auth == nil {
		auth = DefaultAuthorizer()
	}

	return &Service{
		src:            src,
		pub:            pub,
		cache:          cache,
		clock:          clock,
		auth:           auth,
		eval:           listing.NewEvaluator(opts.Location),
		ttlDetails:     opts.TTLDetails,
		ttlList:        opts.TTLList,
		upcomingWindow: opts.UpcomingWindow,
		homeLimit:      opts.HomeLimit,
	}
}

// unavailable wraps infrastructure failures. AppErrors from the source
// (not_found and friends) pass through untouched.
func unavailable(err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
}

// cacheGet is best effort: any failure is logged and reported as a miss.
func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
	if s.cache == nil {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	switch {
	case err != nil:
		metrics.RecordCacheLookup(metrics.CacheError)
		zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	case found:
		metrics.RecordCacheLookup(metrics.CacheHit)
		zlog.Debug().Str("key", key).Msg("cache hit")
		return true
	default:
		metrics.RecordCacheLookup(metrics.CacheMiss)
		zlog.Debug().Str("key", key).Msg("cache miss")
		return false
	}
}

func (s *Service) cacheSet(ctx context.Context, key string, val any, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, val, ttl); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func (s *Service) cacheDelete(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zlog.Warn().Err(err).Strs("keys", keys).Msg("cache delete failed")
	}
}
