package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/brawldash/club-sync/internal/adapter"
	"github.com/brawldash/club-sync/internal/domain"
	"github.com/brawldash/club-sync/internal/logger"
	"github.com/brawldash/club-sync/internal/store"
	"github.com/brawldash/club-sync/internal/store/schema"
	"github.com/brawldash/club-sync/internal/webhook"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWait        time.Duration
	MaxDeliver     int
}

// Bridge consumes club events from the stream and delivers them as webhook
// embeds. The webhook URL is read from settings per message so rotating it
// needs no restart.
type Bridge interface {
	// Run starts the event bridge; blocks until the context is canceled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	store  store.Store
	sender webhook.Sender
	json   adapter.JSON
	config Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	sender webhook.Sender,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:     nc,
		js:     js,
		store:  st,
		sender: sender,
		json:   jsonAdapter,
		config: cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWait,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: "club.events.>",
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	msgChan := make(chan adapter.Message, 100)
	sub, err := consumer.Consume(func(msg adapter.Message) {
		msgChan <- msg
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case msg := <-msgChan:
			go b.handleMessage(ctx, msg)
		}
	}
}

// handleMessage processes a single stream message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var event domain.ClubEventMessage
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"))
		// Unparseable data never becomes parseable on redelivery.
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	var deliveryCount uint64
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Info("Received club event",
		zap.String("eventId", event.EventID),
		zap.String("eventType", string(event.Type)),
		zap.String("tag", event.Tag.String()),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	if err := b.deliver(ctx, &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to deliver club event"))
		// NAK to retry until MaxDeliver
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// deliver renders the event as an embed and posts it to the configured
// webhook. An unconfigured webhook drops the event.
func (b *bridge) deliver(ctx context.Context, event *domain.ClubEventMessage) error {
	webhookURL, err := b.store.GetSetting(ctx, schema.SettingWebhookURL)
	if err != nil {
		return fmt.Errorf("failed to load webhook URL: %w", err)
	}
	if webhookURL == "" {
		logger.Debug("No webhook configured, dropping event",
			zap.String("eventId", event.EventID))
		return nil
	}

	if err := b.sender.Send(ctx, webhookURL, []webhook.Embed{EmbedForEvent(event)}); err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}

	logger.Info("Club event delivered",
		zap.String("eventId", event.EventID),
		zap.String("eventType", string(event.Type)),
	)

	return nil
}

// EmbedForEvent renders one club event as a webhook embed
func EmbedForEvent(event *domain.ClubEventMessage) webhook.Embed {
	return webhook.Embed{
		Title:       event.Title,
		Description: event.Message,
		Color:       colorForType(event.Type),
		Timestamp:   event.Timestamp.UTC().Format(time.RFC3339),
	}
}

// colorForType maps an event type to its embed accent color
func colorForType(eventType domain.EventType) int {
	switch eventType {
	case domain.EventTypeJoin:
		return webhook.ColorGreen
	case domain.EventTypeLeave, domain.EventTypeDemotion:
		return webhook.ColorRed
	case domain.EventTypePromotion, domain.EventTypeRoleChange:
		return webhook.ColorBlue
	case domain.EventTypeNameChange:
		return webhook.ColorYellow
	default:
		return webhook.ColorGrey
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
