package interfaces

import (
	"context"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// AnnounceUseCase formats and delivers a release announcement to one destination
type AnnounceUseCase interface {
	// Announce sends the announcement for release. A non-nil error means the request could not be made;
	// a rejected request is reported through Announcement.Delivered instead.
	Announce(ctx context.Context, release model.Release) (*model.Announcement, error)
}
