package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/FakeErrorX/relnotify/pkg/domain/interfaces"
	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// DefaultTelegramChatID is the channel announcements go to
const DefaultTelegramChatID = "@ErrorX_BD"

type telegramUseCase struct {
	client  interfaces.TelegramClient
	project model.Project
	chatID  string
	opts    *options
}

// NewTelegram creates an announce use case posting Markdown messages to chatID
func NewTelegram(client interfaces.TelegramClient, project model.Project, chatID string, opts ...Option) interfaces.AnnounceUseCase {
	return &telegramUseCase{
		client:  client,
		project: project,
		chatID:  chatID,
		opts:    newOptions(opts),
	}
}

// Announce sends the message. The response status is not checked, so a completed request is
// always reported as delivered.
func (uc *telegramUseCase) Announce(ctx context.Context, release model.Release) (*model.Announcement, error) {
	logger := uc.opts.logger

	msg := &model.TelegramMessage{
		ChatID:                uc.chatID,
		Text:                  BuildTelegramText(uc.project, release),
		ParseMode:             model.ParseModeMarkdown,
		DisableWebPagePreview: false,
	}

	logger.Debug("Sending telegram announcement",
		"tag", release.Tag,
		"chat_id", uc.chatID,
		"text_length", len(msg.Text),
	)

	result, err := uc.client.SendMessage(ctx, msg)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send telegram announcement",
			goerr.V("tag", release.Tag),
			goerr.V("chat_id", uc.chatID),
		)
	}

	logger.Info("Telegram announcement sent", "tag", release.Tag, "status", result.StatusCode)

	return &model.Announcement{
		Delivered: true,
		Result:    result,
	}, nil
}

// BuildTelegramText renders the flat Markdown message. The "What's New" block is present whenever
// the changelog file exists, even if it is empty.
func BuildTelegramText(project model.Project, release model.Release) string {
	titleGlyph, statusGlyph, channel, releaseType := "⭐", "🟡", "Preview", "Development Build"
	if release.Stable {
		titleGlyph, statusGlyph, channel, releaseType = "🌟", "🟢", "Stable", "Production Ready"
	}

	parts := []string{
		titleGlyph + " *" + project.Name + " " + release.Tag + "*",
		"_" + project.Tagline + "_\n",
		"*📊 Release Status*",
		statusGlyph + " Channel: " + channel,
		"🎯 Type: " + releaseType + "\n",
		"*🔗 Quick Links*",
		"📥 [Download Release](" + project.ReleaseURL(release.Tag) + ")",
		"📚 [Documentation](" + project.WikiURL() + ")",
		"🐛 [Report Issues](" + project.IssuesURL() + ")\n",
	}

	if release.HasChangelog {
		parts = append(parts, "*🎉 What's New*", release.Changelog)
	}

	parts = append(parts, "\n🔔 _Stay updated with "+project.Name+" releases!_")

	return strings.Join(parts, "\n")
}
