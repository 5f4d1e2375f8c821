// Package session holds the current authenticated identity for the whole
// process and notifies consumers when it changes. Consumers read, never write.
package session

import (
	"RecipeShare-Go/domain"
	"context"
	"sync"
)

type (
	// AuthClient is the underlying identity provider. A transient failure of
	// CurrentIdentity is equivalent to being signed out.
	AuthClient interface {
		CurrentIdentity(ctx context.Context) (*domain.Identity, error)
		SignOut(ctx context.Context) error
	}

	Session interface {
		// Current returns the identity, or nil when signed out.
		Current() *domain.Identity
		// Refresh re-resolves the identity from the auth client. Resolution
		// errors degrade to signed-out rather than surfacing.
		Refresh(ctx context.Context)
		// Subscribe registers fn for identity changes and returns an
		// unsubscribe func. fn is called synchronously on every change.
		Subscribe(fn func(*domain.Identity)) func()
		SignOut(ctx context.Context) error
	}

	session struct {
		mu       sync.RWMutex
		identity *domain.Identity
		subs     map[int]func(*domain.Identity)
		nextSub  int
		auth     AuthClient
	}
)

func NewSession(auth AuthClient) Session {
	return &session{
		subs: make(map[int]func(*domain.Identity)),
		auth: auth,
	}
}

func (s *session) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

func (s *session) Refresh(ctx context.Context) {
	identity, err := s.auth.CurrentIdentity(ctx)
	if err != nil {
		identity = nil
	}
	s.set(identity)
}

func (s *session) Subscribe(fn func(*domain.Identity)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *session) SignOut(ctx context.Context) error {
	err := s.auth.SignOut(ctx)
	s.set(nil)
	return err
}

func (s *session) set(identity *domain.Identity) {
	s.mu.Lock()
	s.identity = identity
	subs := make([]func(*domain.Identity), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(identity)
	}
}
