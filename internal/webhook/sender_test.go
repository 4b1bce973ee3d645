package webhook_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/mocks"
	"github.com/brawldash/club-sync/internal/webhook"
)

const testWebhookURL = "https://discord.com/api/webhooks/123/abc"

func makeEmbeds(n int) []webhook.Embed {
	embeds := make([]webhook.Embed, n)
	for i := range embeds {
		embeds[i] = webhook.Embed{Title: "Member joined", Color: webhook.ColorGreen}
	}
	return embeds
}

func TestSend_SingleBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	var captured []byte
	mockHTTP.EXPECT().Post(gomock.Any(), testWebhookURL, "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ string, body io.Reader) ([]byte, error) {
			var err error
			captured, err = io.ReadAll(body)
			require.NoError(t, err)
			return nil, nil
		})

	sender := webhook.NewSender(mockHTTP, adapter.NewJSON(), "Club Sync", 10)
	err := sender.Send(context.Background(), testWebhookURL, makeEmbeds(3))

	require.NoError(t, err)
	assert.Contains(t, string(captured), `"username":"Club Sync"`)
	assert.Contains(t, string(captured), `"Member joined"`)
}

func TestSend_ChunksLargeBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Post(gomock.Any(), testWebhookURL, "application/json", gomock.Any()).
		Return(nil, nil).Times(3)

	sender := webhook.NewSender(mockHTTP, adapter.NewJSON(), "Club Sync", 10)
	err := sender.Send(context.Background(), testWebhookURL, makeEmbeds(25))

	require.NoError(t, err)
}

func TestSend_EmptyURLIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := webhook.NewSender(mocks.NewMockHTTPClient(ctrl), adapter.NewJSON(), "Club Sync", 10)

	assert.NoError(t, sender.Send(context.Background(), "", makeEmbeds(2)))
	assert.NoError(t, sender.Send(context.Background(), testWebhookURL, nil))
}

func TestSend_InvalidMaxEmbedsFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	// 12 embeds with the service cap of 10 means two requests, even when the
	// configured cap was out of range.
	mockHTTP.EXPECT().Post(gomock.Any(), testWebhookURL, "application/json", gomock.Any()).
		Return(nil, nil).Times(2)

	sender := webhook.NewSender(mockHTTP, adapter.NewJSON(), "Club Sync", 0)
	err := sender.Send(context.Background(), testWebhookURL, makeEmbeds(12))

	require.NoError(t, err)
}

func TestSend_DeliveryFailureStopsRemainingBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTP := mocks.NewMockHTTPClient(ctrl)
	mockHTTP.EXPECT().Post(gomock.Any(), testWebhookURL, "application/json", gomock.Any()).
		Return(nil, errors.New("connection refused")).Times(1)

	sender := webhook.NewSender(mockHTTP, adapter.NewJSON(), "Club Sync", 10)
	err := sender.Send(context.Background(), testWebhookURL, makeEmbeds(25))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to deliver webhook batch")
}
