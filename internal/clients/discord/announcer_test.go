package discord_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryptoconquerors/realm-api/internal/clients/discord"
	"github.com/cryptoconquerors/realm-api/internal/errors"
)

func TestAnnounce(t *testing.T) {
	var got struct {
		Content string `json:"content"`
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	announcer, err := discord.NewWebhook(&discord.Config{
		WebhookURL: server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	err = announcer.Announce(context.Background(), "🎉 We have a winner!")
	require.NoError(t, err)
	assert.Equal(t, "🎉 We have a winner!", got.Content)
}

func TestAnnounceRejectedByDiscord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	announcer, err := discord.NewWebhook(&discord.Config{
		WebhookURL: server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	err = announcer.Announce(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
}

func TestAnnounceEmptyContent(t *testing.T) {
	announcer, err := discord.NewWebhook(&discord.Config{
		WebhookURL: "http://localhost/hook",
		HTTPClient: http.DefaultClient,
	})
	require.NoError(t, err)

	err = announcer.Announce(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConfigValidate(t *testing.T) {
	_, err := discord.NewWebhook(&discord.Config{HTTPClient: http.DefaultClient})
	require.Error(t, err)

	_, err = discord.NewWebhook(&discord.Config{WebhookURL: "http://localhost/hook"})
	require.Error(t, err)
}
