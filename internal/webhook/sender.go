package webhook

import (
	"bytes"
	"context"
	"fmt"

	"github.com/brawldash/club-sync/internal/adapter"
)

// Sender defines the interface for outbound webhook delivery to enable mocking
//
//go:generate mockgen -source=sender.go -destination=../mocks/webhook_sender.go -package=mocks -mock_names=Sender=MockWebhookSender
type Sender interface {
	// Send delivers a batch of embeds to the webhook URL, splitting batches
	// larger than MaxEmbedsPerRequest across multiple requests
	Send(ctx context.Context, webhookURL string, embeds []Embed) error
}

// HTTPSender implements Sender over a plain JSON POST
type HTTPSender struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	username   string
	maxEmbeds  int
}

// NewSender creates a new webhook sender. maxEmbeds caps embeds per request;
// values outside (0, MaxEmbedsPerRequest] fall back to the service limit.
func NewSender(httpClient adapter.HTTPClient, json adapter.JSON, username string, maxEmbeds int) Sender {
	if maxEmbeds <= 0 || maxEmbeds > MaxEmbedsPerRequest {
		maxEmbeds = MaxEmbedsPerRequest
	}
	return &HTTPSender{
		httpClient: httpClient,
		json:       json,
		username:   username,
		maxEmbeds:  maxEmbeds,
	}
}

// Send delivers the embeds in chunks of at most maxEmbeds
func (s *HTTPSender) Send(ctx context.Context, webhookURL string, embeds []Embed) error {
	if webhookURL == "" || len(embeds) == 0 {
		return nil
	}

	for start := 0; start < len(embeds); start += s.maxEmbeds {
		end := start + s.maxEmbeds
		if end > len(embeds) {
			end = len(embeds)
		}

		payload := Payload{
			Username: s.username,
			Embeds:   embeds[start:end],
		}
		body, err := s.json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal webhook payload: %w", err)
		}

		if _, err := s.httpClient.Post(ctx, webhookURL, "application/json", bytes.NewReader(body)); err != nil {
			return fmt.Errorf("failed to deliver webhook batch: %w", err)
		}
	}

	return nil
}
