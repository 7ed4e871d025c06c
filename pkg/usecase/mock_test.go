package usecase_test

import (
	"context"
	"errors"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// mockDiscordClient is a mock implementation of DiscordClient
type mockDiscordClient struct {
	postWebhookFunc func(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error)
	payloads        []*model.DiscordPayload
}

func (m *mockDiscordClient) PostWebhook(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error) {
	m.payloads = append(m.payloads, payload)
	if m.postWebhookFunc != nil {
		return m.postWebhookFunc(ctx, payload)
	}
	return nil, errors.New("mock not configured")
}

// mockTelegramClient is a mock implementation of TelegramClient
type mockTelegramClient struct {
	sendMessageFunc func(ctx context.Context, msg *model.TelegramMessage) (*model.DeliveryResult, error)
	messages        []*model.TelegramMessage
}

func (m *mockTelegramClient) SendMessage(ctx context.Context, msg *model.TelegramMessage) (*model.DeliveryResult, error) {
	m.messages = append(m.messages, msg)
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, msg)
	}
	return nil, errors.New("mock not configured")
}
