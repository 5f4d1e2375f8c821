package session

import (
	"RecipeShare-Go/domain"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuthClient struct {
	identity *domain.Identity
	err      error
	signOuts int
}

func (c *fakeAuthClient) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	return c.identity, c.err
}

func (c *fakeAuthClient) SignOut(ctx context.Context) error {
	c.signOuts++
	c.identity = nil
	return nil
}

func TestSessionStartsSignedOut(t *testing.T) {
	s := NewSession(&fakeAuthClient{})
	assert.Nil(t, s.Current())
}

func TestRefreshResolvesIdentity(t *testing.T) {
	auth := &fakeAuthClient{identity: &domain.Identity{ID: "u1", Email: "u1@example.com"}}
	s := NewSession(auth)

	s.Refresh(context.Background())

	require.NotNil(t, s.Current())
	assert.Equal(t, "u1", s.Current().ID)
}

func TestRefreshFailureDegradesToSignedOut(t *testing.T) {
	auth := &fakeAuthClient{identity: &domain.Identity{ID: "u1"}}
	s := NewSession(auth)
	s.Refresh(context.Background())
	require.NotNil(t, s.Current())

	auth.err = errors.New("transport failure")
	s.Refresh(context.Background())

	assert.Nil(t, s.Current())
}

func TestSubscribeNotifiesOnChange(t *testing.T) {
	auth := &fakeAuthClient{identity: &domain.Identity{ID: "u1"}}
	s := NewSession(auth)

	var seen []*domain.Identity
	unsubscribe := s.Subscribe(func(identity *domain.Identity) {
		seen = append(seen, identity)
	})

	s.Refresh(context.Background())
	require.Len(t, seen, 1)
	assert.Equal(t, "u1", seen[0].ID)

	require.NoError(t, s.SignOut(context.Background()))
	require.Len(t, seen, 2)
	assert.Nil(t, seen[1])

	unsubscribe()
	s.Refresh(context.Background())
	assert.Len(t, seen, 2)
}

func TestSignOutClearsIdentity(t *testing.T) {
	auth := &fakeAuthClient{identity: &domain.Identity{ID: "u1"}}
	s := NewSession(auth)
	s.Refresh(context.Background())

	require.NoError(t, s.SignOut(context.Background()))

	assert.Nil(t, s.Current())
	assert.Equal(t, 1, auth.signOuts)
}
