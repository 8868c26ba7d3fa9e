package gcal

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// ErrNotAuthenticated is returned by calendar operations before the OAuth
// flow has completed. Callers surface it as a hard re-authenticate stop.
var ErrNotAuthenticated = errors.New("google calendar not authenticated")

// TokenStore persists the OAuth token across restarts. The token is the only
// state in the system that survives a restart.
type TokenStore interface {
	GetGoogleToken() (*oauth2.Token, error)
	SaveGoogleToken(token *oauth2.Token) error
	DeleteGoogleToken() error
}

// Client wraps the Google Calendar API client
type Client struct {
	service *calendar.Service
	config  *oauth2.Config
	store   TokenStore
	token   *oauth2.Token
}

// NewClient creates a new Google Calendar client. If the store already holds
// a token, the service is initialized immediately (refreshing if needed).
func NewClient(credentialsFile string, store TokenStore) (*Client, error) {
	config, err := loadOAuthConfig(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth config: %w", err)
	}

	client := &Client{
		config: config,
		store:  store,
	}

	token, err := store.GetGoogleToken()
	if err != nil {
		fmt.Printf("Note: could not load stored token: %v\n", err)
	} else if token != nil {
		client.token = token
		if err := client.tryInitService(); err != nil {
			// Token might be expired beyond refresh; user re-auths via the surface
			fmt.Printf("Note: could not initialize calendar service with stored token: %v\n", err)
		}
	}

	return client, nil
}

// tryInitService attempts to initialize the service, refreshing the token if needed
func (c *Client) tryInitService() error {
	if c.token == nil {
		return ErrNotAuthenticated
	}

	ctx := context.Background()

	if !c.token.Valid() && c.token.RefreshToken != "" {
		tokenSource := c.config.TokenSource(ctx, c.token)
		newToken, err := tokenSource.Token()
		if err != nil {
			return fmt.Errorf("failed to refresh token: %w", err)
		}
		c.token = newToken
		if err := c.store.SaveGoogleToken(newToken); err != nil {
			fmt.Printf("Warning: could not save refreshed token: %v\n", err)
		}
	}

	return c.initService(ctx)
}

// IsAuthenticated returns true if the client is authenticated
func (c *Client) IsAuthenticated() bool {
	return c.service != nil
}

// GetAuthURL returns the OAuth authorization URL
func (c *Client) GetAuthURL() string {
	return c.config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// initService initializes the Calendar service with the current token
func (c *Client) initService(ctx context.Context) error {
	if c.token == nil {
		return ErrNotAuthenticated
	}

	httpClient := c.config.Client(ctx, c.token)
	service, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return fmt.Errorf("failed to create calendar service: %w", err)
	}

	c.service = service
	return nil
}

// ExchangeCode exchanges an authorization code for a token and persists it
func (c *Client) ExchangeCode(ctx context.Context, code string) error {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}

	c.token = token
	if err := c.store.SaveGoogleToken(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	return c.initService(ctx)
}

// Disconnect drops the current session and deletes the persisted token
func (c *Client) Disconnect() error {
	c.service = nil
	c.token = nil
	return c.store.DeleteGoogleToken()
}
