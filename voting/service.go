// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/danielhkuo/campus-awards/models"
	"github.com/danielhkuo/campus-awards/store"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Service runs the voting operations over the entity store.
type Service struct {
	store   *store.Store
	clock   Clock
	logger  *slog.Logger
	results *cache.Cache
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithResultsCacheTTL sets how long results of completed votes stay cached.
// Zero disables the cache.
func WithResultsCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl <= 0 {
			s.results = nil
			return
		}
		s.results = cache.New(ttl, 2*ttl)
	}
}

func NewService(st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:   st,
		clock:   SystemClock{},
		logger:  slog.Default(),
		results: cache.New(10*time.Minute, 20*time.Minute),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	return store.DBTime(s.clock.Now())
}

func requireAdmin(p *models.Principal) error {
	if p == nil {
		return fmt.Errorf("%w: authentication required", models.ErrUnauthorized)
	}
	if !p.IsAdmin() {
		return fmt.Errorf("%w: admin role required", models.ErrForbidden)
	}
	return nil
}

func requirePrincipal(p *models.Principal) error {
	if p == nil {
		return fmt.Errorf("%w: authentication required", models.ErrUnauthorized)
	}
	return nil
}

func validationf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{models.ErrValidation}, args...)...)
}
