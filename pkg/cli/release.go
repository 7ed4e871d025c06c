package cli

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/FakeErrorX/relnotify/pkg/cli/config"
	"github.com/FakeErrorX/relnotify/pkg/domain/model"
	"github.com/FakeErrorX/relnotify/pkg/usecase"
)

// loadRelease reads the changelog and builds the release and branding for one run
func loadRelease(releaseCfg *config.Release, projectCfg *config.Project) (model.Release, model.Project, error) {
	project, err := projectCfg.Load()
	if err != nil {
		return model.Release{}, model.Project{}, err
	}

	text, exists, err := usecase.ReadChangelog(releaseCfg.ReleaseNotes)
	if err != nil {
		return model.Release{}, model.Project{}, goerr.Wrap(err, "failed to load release notes")
	}

	return model.NewRelease(releaseCfg.Tag, usecase.FormatChangelog(text), exists), project, nil
}
