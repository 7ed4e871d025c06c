package interfaces

import (
	"context"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// DiscordClient delivers payloads to a Discord webhook
type DiscordClient interface {
	// PostWebhook sends payload to the webhook and returns the raw response
	PostWebhook(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error)
}

// TelegramClient delivers messages through the Bot API
type TelegramClient interface {
	// SendMessage calls sendMessage and returns the raw response
	SendMessage(ctx context.Context, msg *model.TelegramMessage) (*model.DeliveryResult, error)
}
