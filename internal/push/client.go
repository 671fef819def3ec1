// internal/push/client.go
package push

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Config represents the configuration for the push relay client
type Config struct {
	// RelayURL is the base URL of the notification relay
	RelayURL string
	// APIKey authenticates this backend against the relay
	APIKey string
	// HTTPClient is an optional custom HTTP client
	HTTPClient *http.Client
	// Timeout is the default request timeout
	Timeout time.Duration
}

// Client clears pending invite registrations held by the notification
// relay. An empty RelayURL disables delivery, which keeps local and test
// environments relay-free.
type Client struct {
	config *Config
	client *http.Client
}

// NewClient creates a new push relay client with the given configuration
func NewClient(config *Config) *Client {
	if config == nil {
		config = &Config{Timeout: 10 * time.Second}
	}

	client := config.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		config: config,
		client: client,
	}
}

// DeleteAndPushUserRegistration removes any pending invite registration
// for the user/organization pair and pushes the change to the user's
// devices. Retry and backpressure belong to the relay, not this client.
func (c *Client) DeleteAndPushUserRegistration(ctx context.Context, orgID, userID uuid.UUID) error {
	if c.config.RelayURL == "" {
		slog.DebugContext(ctx, "push relay disabled, skipping registration cleanup",
			"organization_id", orgID, "user_id", userID)
		return nil
	}

	endpoint := fmt.Sprintf("%s/push/register/%s/%s", c.config.RelayURL, orgID, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building push relay request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling push relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected push relay status code: %d", resp.StatusCode)
	}

	return nil
}
