package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
	"github.com/FakeErrorX/relnotify/pkg/usecase"
)

var fixedNow = time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("JST", 9*60*60))

func TestBuildDiscordPayload_StableRelease(t *testing.T) {
	release := model.NewRelease("v1.0.0", usecase.FormatChangelog("- Fixed bug\n- Added feature"), true)
	payload := usecase.BuildDiscordPayload(model.DefaultProject(), release, fixedNow)

	gt.Value(t, payload.Content).Equal("📢 **New ErrorX Release Available!**")
	gt.Number(t, len(payload.Embeds)).Equal(1)

	embed := payload.Embeds[0]
	gt.Value(t, embed.Title).Equal("🌟 ErrorX v1.0.0")
	gt.Value(t, embed.Description).Equal("Experience the next level of error handling")
	gt.Value(t, embed.URL).Equal("https://github.com/FakeErrorX/ErrorX/releases/tag/v1.0.0")
	gt.Value(t, embed.Color).Equal(model.ColorStable)
	gt.Value(t, embed.Timestamp).Equal("2024-05-01T03:30:00Z")
	gt.Value(t, embed.Footer.Text).Equal("Stable Release • ErrorX Team")
	gt.Value(t, embed.Thumbnail.URL).Equal(model.DefaultProject().IconURL)

	gt.Number(t, len(embed.Fields)).Equal(4)
	gt.Value(t, embed.Fields[0].Name).Equal("📊 Release Status")
	gt.Value(t, embed.Fields[0].Value).Equal("🎯 Production Ready\n🟢 Stable Channel")
	gt.Value(t, embed.Fields[1].Name).Equal("🔗 Quick Links")
	gt.String(t, embed.Fields[1].Value).Contains("[📥 Download Release](https://github.com/FakeErrorX/ErrorX/releases/tag/v1.0.0)")
	gt.String(t, embed.Fields[1].Value).Contains("[📚 Documentation](https://github.com/FakeErrorX/ErrorX/wiki)")
	gt.String(t, embed.Fields[1].Value).Contains("[🐛 Report Issues](https://github.com/FakeErrorX/ErrorX/issues)")
	gt.Value(t, embed.Fields[2].Name).Equal("\u200b")
	gt.Value(t, embed.Fields[2].Value).Equal("\u200b")
	for _, f := range embed.Fields[:3] {
		gt.True(t, f.Inline)
	}

	gt.Value(t, embed.Fields[3].Name).Equal("🎉 What's New")
	gt.Value(t, embed.Fields[3].Value).Equal("💫 Fixed bug\n💫 Added feature")
	gt.False(t, embed.Fields[3].Inline)
}

func TestBuildDiscordPayload_PreReleaseWithoutChangelog(t *testing.T) {
	release := model.NewRelease("v1.0.0-rc1", "", false)
	embed := usecase.BuildDiscordPayload(model.DefaultProject(), release, fixedNow).Embeds[0]

	gt.Value(t, embed.Title).Equal("⭐ ErrorX v1.0.0-rc1")
	gt.Value(t, embed.Color).Equal(model.ColorPreRelease)
	gt.Value(t, embed.Footer.Text).Equal("Development Release • ErrorX Team")
	gt.Number(t, len(embed.Fields)).Equal(3)
	gt.Value(t, embed.Fields[0].Value).Equal("🔧 Development Build\n🟡 Preview Channel")
}

func TestBuildDiscordPayload_EmptyChangelogFileOmitsSection(t *testing.T) {
	release := model.NewRelease("v1.0.0", "", true)
	embed := usecase.BuildDiscordPayload(model.DefaultProject(), release, fixedNow).Embeds[0]

	gt.Number(t, len(embed.Fields)).Equal(3)
}

func TestBuildDiscordPayload_LongChangelogIsChunked(t *testing.T) {
	changelog := strings.Repeat("x", 2500)
	release := model.NewRelease("v2.0.0", changelog, true)
	embed := usecase.BuildDiscordPayload(model.DefaultProject(), release, fixedNow).Embeds[0]

	gt.Number(t, len(embed.Fields)).Equal(3 + 3)
	gt.Value(t, embed.Fields[3].Name).Equal("🎉 What's New")
	gt.Value(t, embed.Fields[4].Name).Equal("📝 Changelog (continued)")
	gt.Value(t, embed.Fields[5].Name).Equal("📝 Changelog (continued)")

	var joined strings.Builder
	for _, f := range embed.Fields[3:] {
		gt.False(t, f.Inline)
		gt.Number(t, len(f.Value)).LessOrEqual(model.EmbedFieldValueLimit)
		joined.WriteString(f.Value)
	}
	gt.Value(t, joined.String()).Equal(changelog)
}

func TestBuildDiscordPayload_CustomProject(t *testing.T) {
	project := model.DefaultProject().Merge(model.Project{
		Name:       "Acme",
		Repository: "https://github.com/acme/acme",
		Team:       "Acme Devs",
	})
	embed := usecase.BuildDiscordPayload(project, model.NewRelease("v3.1.0", "", false), fixedNow).Embeds[0]

	gt.Value(t, embed.Title).Equal("🌟 Acme v3.1.0")
	gt.Value(t, embed.URL).Equal("https://github.com/acme/acme/releases/tag/v3.1.0")
	gt.Value(t, embed.Footer.Text).Equal("Stable Release • Acme Devs")
}

func TestDiscordUseCase_Announce(t *testing.T) {
	ctx := context.Background()
	release := model.NewRelease("v1.0.0", "💫 Fixed bug", true)

	t.Run("no content is delivered", func(t *testing.T) {
		client := &mockDiscordClient{
			postWebhookFunc: func(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error) {
				return &model.DeliveryResult{StatusCode: http.StatusNoContent}, nil
			},
		}

		uc := usecase.NewDiscord(client, model.DefaultProject(), usecase.WithClock(func() time.Time { return fixedNow }))
		result, err := uc.Announce(ctx, release)

		gt.NoError(t, err)
		gt.True(t, result.Delivered)
		gt.Number(t, len(client.payloads)).Equal(1)
		gt.Value(t, client.payloads[0].Embeds[0].Timestamp).Equal("2024-05-01T03:30:00Z")
	})

	t.Run("other status is not delivered", func(t *testing.T) {
		for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusTooManyRequests} {
			client := &mockDiscordClient{
				postWebhookFunc: func(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error) {
					return &model.DeliveryResult{StatusCode: status, Body: []byte(`{"message":"nope"}`)}, nil
				},
			}

			result, err := usecase.NewDiscord(client, model.DefaultProject()).Announce(ctx, release)
			gt.NoError(t, err)
			gt.False(t, result.Delivered)
			gt.Value(t, result.Result.StatusCode).Equal(status)
		}
	})

	t.Run("transport error is returned", func(t *testing.T) {
		client := &mockDiscordClient{
			postWebhookFunc: func(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error) {
				return nil, errors.New("connection refused")
			},
		}

		result, err := usecase.NewDiscord(client, model.DefaultProject()).Announce(ctx, release)
		gt.Error(t, err)
		gt.Value(t, result).Nil()
		gt.String(t, err.Error()).Contains("failed to send discord announcement")
	})
}
