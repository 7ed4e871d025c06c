package config

import (
	"github.com/urfave/cli/v3"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// Discord holds Discord webhook configuration
type Discord struct {
	WebhookURL string `masq:"secret"`
}

// Flags returns CLI flags for Discord configuration
func (c *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-webhook-url",
			Usage:       "Discord webhook URL",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("DISCORD_WEBHOOK_URL"),
		},
	}
}

// Validate checks that the webhook URL is set
func (c *Discord) Validate() error {
	if c.WebhookURL == "" {
		return &model.MissingEnvError{Name: "DISCORD_WEBHOOK_URL", Kind: model.ErrMissingCredential}
	}
	return nil
}
