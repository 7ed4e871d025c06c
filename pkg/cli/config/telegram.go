package config

import (
	"github.com/urfave/cli/v3"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
	"github.com/FakeErrorX/relnotify/pkg/infra/telegram"
	"github.com/FakeErrorX/relnotify/pkg/usecase"
)

// Telegram holds Telegram Bot API configuration
type Telegram struct {
	BotToken string `masq:"secret"`
	APIURL   string
	ChatID   string
}

// Flags returns CLI flags for Telegram configuration
func (c *Telegram) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "telegram-bot-token",
			Usage:       "Telegram bot token",
			Destination: &c.BotToken,
			Sources:     cli.EnvVars("TELEGRAM_BOT_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "telegram-api-url",
			Usage:       "Bot API server base URL",
			Value:       telegram.DefaultAPIURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("TELEGRAM_API_URL"),
		},
		&cli.StringFlag{
			Name:        "telegram-chat-id",
			Usage:       "Chat or channel to post to",
			Value:       usecase.DefaultTelegramChatID,
			Destination: &c.ChatID,
			Sources:     cli.EnvVars("TELEGRAM_CHAT_ID"),
		},
	}
}

// Validate checks that the bot token is set
func (c *Telegram) Validate() error {
	if c.BotToken == "" {
		return &model.MissingEnvError{Name: "TELEGRAM_BOT_TOKEN", Kind: model.ErrMissingCredential}
	}
	return nil
}
