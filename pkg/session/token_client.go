package session

import (
	"RecipeShare-Go/domain"
	"RecipeShare-Go/pkg/jwt"
	"context"
	"sync"
)

type (
	// TokenClient is an AuthClient backed by a held identity token. An empty
	// or expired token resolves to no identity.
	TokenClient struct {
		mu         sync.Mutex
		token      string
		jwtService jwt.JWTService
	}
)

func NewTokenClient(jwtService jwt.JWTService) *TokenClient {
	return &TokenClient{jwtService: jwtService}
}

// SetToken replaces the held token, e.g. after a login response.
func (c *TokenClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *TokenClient) CurrentIdentity(ctx context.Context) (*domain.Identity, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == "" {
		return nil, nil
	}

	userID, email, err := c.jwtService.GetUserIDByToken(token)
	if err != nil {
		return nil, err
	}
	return &domain.Identity{ID: userID, Email: email}, nil
}

func (c *TokenClient) SignOut(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	return nil
}
