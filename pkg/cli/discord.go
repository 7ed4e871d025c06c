package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/FakeErrorX/relnotify/pkg/cli/config"
	"github.com/FakeErrorX/relnotify/pkg/infra/discord"
	"github.com/FakeErrorX/relnotify/pkg/usecase"
)

func cmdDiscord(stdout io.Writer) *cli.Command {
	var (
		releaseCfg config.Release
		projectCfg config.Project
		discordCfg config.Discord
	)

	flags := append(releaseCfg.Flags(), projectCfg.Flags()...)
	flags = append(flags, discordCfg.Flags()...)

	return &cli.Command{
		Name:    "discord",
		Aliases: []string{"d"},
		Usage:   "Post the release announcement to a Discord webhook",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := slog.Default()

			if err := discordCfg.Validate(); err != nil {
				return reportConfigError(stdout, err)
			}
			if err := releaseCfg.Validate(); err != nil {
				return reportConfigError(stdout, err)
			}

			release, project, err := loadRelease(&releaseCfg, &projectCfg)
			if err != nil {
				return err
			}

			logger.Debug("Discord announcement configured",
				slog.Any("discord", discordCfg),
				slog.String("tag", release.Tag),
				slog.Bool("stable", release.Stable),
				slog.Bool("has_changelog", release.HasChangelog),
			)

			uc := usecase.NewDiscord(
				discord.NewClient(discordCfg.WebhookURL),
				project,
				usecase.WithLogger(logger),
			)

			announcement, err := uc.Announce(ctx, release)
			if err != nil {
				return err
			}

			// a rejected webhook is reported but does not fail the run
			reportDiscord(stdout, announcement)
			return nil
		},
	}
}
