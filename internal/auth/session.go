package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tair/storefront/internal/store"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// Session bridges asynchronous credential verification into the synchronous
// store. LoginStart is dispatched immediately; the verification result is
// fed back through a later, separate dispatch. Each attempt carries a token
// so completions of superseded attempts are discarded instead of applied.
type Session struct {
	store    *store.Store
	verifier Verifier

	mu      sync.Mutex
	attempt string
}

// NewSession creates a login session manager bound to the given store
func NewSession(st *store.Store, verifier Verifier) *Session {
	return &Session{store: st, verifier: verifier}
}

// Login starts a login attempt. A new call supersedes any attempt still in
// flight. The returned channel closes when this attempt resolves or is
// discarded as stale.
func (s *Session) Login(ctx context.Context, email, secret string) <-chan struct{} {
	token := uuid.NewString()

	s.mu.Lock()
	s.attempt = token
	s.store.Dispatch(store.LoginStart{})
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		user, err := s.verifier.Verify(ctx, email, secret)
		s.complete(token, user, err)
	}()
	return done
}

// complete applies the attempt outcome unless the attempt was superseded
// by a newer login or a logout in the meantime.
func (s *Session) complete(token string, user store.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempt != token {
		logger.Logger.Debug().Msg("Discarding stale login completion")
		return
	}
	s.attempt = ""

	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Logger.Info().Msg("Login rejected")
		} else {
			logger.Logger.Warn().Err(err).Msg("Login attempt errored")
		}
		s.store.Dispatch(store.LoginFailure{})
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Logger.Info().Str("user_id", user.ID).Msg("Login succeeded")
	s.store.Dispatch(store.LoginSuccess{User: user})
}

// Logout resets the session and invalidates any pending login attempt
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempt = ""
	s.store.Dispatch(store.Logout{})
}
