package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/FakeErrorX/relnotify/pkg/cli/config"
	"github.com/FakeErrorX/relnotify/pkg/infra/telegram"
	"github.com/FakeErrorX/relnotify/pkg/usecase"
)

func cmdTelegram(stdout io.Writer) *cli.Command {
	var (
		releaseCfg  config.Release
		projectCfg  config.Project
		telegramCfg config.Telegram
	)

	flags := append(releaseCfg.Flags(), projectCfg.Flags()...)
	flags = append(flags, telegramCfg.Flags()...)

	return &cli.Command{
		Name:    "telegram",
		Aliases: []string{"t"},
		Usage:   "Post the release announcement through the Telegram Bot API",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := slog.Default()

			if err := telegramCfg.Validate(); err != nil {
				return reportConfigError(stdout, err)
			}
			if err := releaseCfg.Validate(); err != nil {
				return reportConfigError(stdout, err)
			}

			release, project, err := loadRelease(&releaseCfg, &projectCfg)
			if err != nil {
				return err
			}

			logger.Debug("Telegram announcement configured",
				slog.Any("telegram", telegramCfg),
				slog.String("tag", release.Tag),
				slog.Bool("stable", release.Stable),
				slog.Bool("has_changelog", release.HasChangelog),
			)

			uc := usecase.NewTelegram(
				telegram.NewClient(telegramCfg.BotToken, telegram.WithAPIURL(telegramCfg.APIURL)),
				project,
				telegramCfg.ChatID,
				usecase.WithLogger(logger),
			)

			announcement, err := uc.Announce(ctx, release)
			if err != nil {
				return err
			}

			reportTelegram(stdout, announcement)
			return nil
		},
	}
}
