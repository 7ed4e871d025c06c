package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/FakeErrorX/relnotify/pkg/domain/interfaces"
	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// zero width space, Discord rejects empty field names and values
const spacer = "\u200b"

type discordUseCase struct {
	client  interfaces.DiscordClient
	project model.Project
	opts    *options
}

// NewDiscord creates an announce use case delivering embeds to a Discord webhook
func NewDiscord(client interfaces.DiscordClient, project model.Project, opts ...Option) interfaces.AnnounceUseCase {
	return &discordUseCase{
		client:  client,
		project: project,
		opts:    newOptions(opts),
	}
}

// Announce builds the embed and posts it. Only 204 No Content counts as delivered.
func (uc *discordUseCase) Announce(ctx context.Context, release model.Release) (*model.Announcement, error) {
	logger := uc.opts.logger

	payload := BuildDiscordPayload(uc.project, release, uc.opts.now())

	logger.Debug("Sending discord announcement",
		"tag", release.Tag,
		"stable", release.Stable,
		"field_count", len(payload.Embeds[0].Fields),
	)

	result, err := uc.client.PostWebhook(ctx, payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to send discord announcement", goerr.V("tag", release.Tag))
	}

	delivered := result.StatusCode == http.StatusNoContent
	if !delivered {
		logger.Warn("Discord rejected announcement",
			"tag", release.Tag,
			"status", result.StatusCode,
		)
	} else {
		logger.Info("Discord announcement delivered", "tag", release.Tag)
	}

	return &model.Announcement{
		Delivered: delivered,
		Result:    result,
	}, nil
}

// BuildDiscordPayload assembles the webhook body. Fields are always status, links and spacer,
// followed by one field per 1024 character chunk of the changelog.
func BuildDiscordPayload(project model.Project, release model.Release, now time.Time) *model.DiscordPayload {
	titleGlyph, color, channel := "⭐", model.ColorPreRelease, "Development"
	releaseType, channelLabel := "🔧 Development Build", "🟡 Preview Channel"
	if release.Stable {
		titleGlyph, color, channel = "🌟", model.ColorStable, "Stable"
		releaseType, channelLabel = "🎯 Production Ready", "🟢 Stable Channel"
	}

	fields := []model.EmbedField{
		{
			Name:   "📊 Release Status",
			Value:  releaseType + "\n" + channelLabel,
			Inline: true,
		},
		{
			Name: "🔗 Quick Links",
			Value: "[📥 Download Release](" + project.ReleaseURL(release.Tag) + ")\n" +
				"[📚 Documentation](" + project.WikiURL() + ")\n" +
				"[🐛 Report Issues](" + project.IssuesURL() + ")",
			Inline: true,
		},
		{
			Name:   spacer,
			Value:  spacer,
			Inline: true,
		},
	}

	for i, chunk := range ChunkText(release.Changelog, model.EmbedFieldValueLimit) {
		name := "📝 Changelog (continued)"
		if i == 0 {
			name = "🎉 What's New"
		}
		fields = append(fields, model.EmbedField{
			Name:   name,
			Value:  chunk,
			Inline: false,
		})
	}

	return &model.DiscordPayload{
		Content: "📢 **New " + project.Name + " Release Available!**",
		Embeds: []model.Embed{
			{
				Title:       titleGlyph + " " + project.Name + " " + release.Tag,
				Description: project.Tagline,
				URL:         project.ReleaseURL(release.Tag),
				Color:       color,
				Timestamp:   now.UTC().Format(time.RFC3339),
				Fields:      fields,
				Thumbnail:   model.EmbedImage{URL: project.IconURL},
				Footer: model.EmbedFooter{
					Text:    channel + " Release • " + project.Team,
					IconURL: project.IconURL,
				},
			},
		},
	}
}
