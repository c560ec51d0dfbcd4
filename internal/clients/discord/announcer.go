// Package discord posts announcements to a Discord channel webhook.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cryptoconquerors/realm-api/internal/errors"
)

//go:generate mockgen -destination=mock/mock_announcer.go -package=discordmock -source=announcer.go

// Announcer publishes messages to the community channel.
type Announcer interface {
	Announce(ctx context.Context, content string) error
}

// Config holds the configuration for the webhook announcer.
type Config struct {
	WebhookURL string
	HTTPClient *http.Client
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.WebhookURL == "" {
		return errors.InvalidArgument("webhook URL is required")
	}
	if c.HTTPClient == nil {
		return errors.InvalidArgument("http client is required")
	}
	return nil
}

type webhookAnnouncer struct {
	webhookURL string
	http       *http.Client
}

// NewWebhook creates an announcer backed by a Discord webhook.
func NewWebhook(cfg *Config) (Announcer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &webhookAnnouncer{webhookURL: cfg.WebhookURL, http: cfg.HTTPClient}, nil
}

var _ Announcer = (*webhookAnnouncer)(nil)

type webhookPayload struct {
	Content string `json:"content"`
}

func (a *webhookAnnouncer) Announce(ctx context.Context, content string) error {
	if content == "" {
		return errors.InvalidArgument("content cannot be empty")
	}

	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal webhook payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return errors.Unavailable(fmt.Sprintf("discord webhook failed: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	// Discord returns 204 on success; treat any 2xx as delivered.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Unavailable(fmt.Sprintf("discord webhook returned status %d", resp.StatusCode))
	}

	return nil
}
