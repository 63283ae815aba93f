package clerk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// DefaultAPIURL is the Clerk backend API endpoint.
	DefaultAPIURL = "https://api.clerk.com"

	// DefaultCacheSize bounds the profile cache.
	DefaultCacheSize = 256

	defaultTimeout = 10 * time.Second
)

// Client is the Clerk backend API client. Profiles are cached in a bounded
// LRU so one batch submission resolves the owner at most once.
type Client struct {
	apiURL     string
	secretKey  string
	httpClient *http.Client
	profiles   *lru.Cache[string, Profile]
}

// New creates a new Clerk client.
func New(cfg Config) (*Client, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("clerk: secret key is required")
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[string, Profile](size)
	if err != nil {
		return nil, fmt.Errorf("clerk: failed to create profile cache: %w", err)
	}

	return &Client{
		apiURL:     cfg.APIURL,
		secretKey:  cfg.SecretKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
		profiles:   cache,
	}, nil
}

// GetProfile resolves a user id to display name and primary contact email.
// Returns ErrNoPrimaryEmail when the account has no usable primary address.
func (c *Client) GetProfile(ctx context.Context, userID string) (Profile, error) {
	if cached, ok := c.profiles.Get(userID); ok {
		return cached, nil
	}

	var user userResponse
	if err := c.get(ctx, "/v1/users/"+userID, &user); err != nil {
		return Profile{}, err
	}

	primaryEmail := ""
	for _, e := range user.EmailAddresses {
		if e.ID == user.PrimaryEmailAddressID {
			primaryEmail = e.EmailAddress
			break
		}
	}
	if primaryEmail == "" {
		return Profile{}, fmt.Errorf("clerk user %s: %w", userID, ErrNoPrimaryEmail)
	}

	profile := Profile{
		UserID:       user.ID,
		FullName:     strings.TrimSpace(user.FirstName + " " + user.LastName),
		PrimaryEmail: primaryEmail,
	}
	c.profiles.Add(userID, profile)
	return profile, nil
}

// VerifyToken resolves a session token to the owning user.
func (c *Client) VerifyToken(ctx context.Context, token string) (Session, error) {
	body, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return Session{}, fmt.Errorf("clerk: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/tokens/verify", bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("clerk: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("clerk: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusNotFound {
		return Session{}, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return Session{}, fmt.Errorf("clerk: API error %d: %s", resp.StatusCode, string(raw))
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return Session{}, fmt.Errorf("clerk: failed to decode response: %w", err)
	}
	if session.UserID == "" {
		return Session{}, ErrInvalidToken
	}

	return session, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+path, nil)
	if err != nil {
		return fmt.Errorf("clerk: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("clerk: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("clerk: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("clerk: failed to decode response: %w", err)
	}
	return nil
}
