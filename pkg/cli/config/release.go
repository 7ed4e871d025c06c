package config

import (
	"github.com/urfave/cli/v3"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// DefaultReleaseNotes is looked up in the working directory
const DefaultReleaseNotes = "release.md"

// Release holds the release being announced
type Release struct {
	Tag          string
	ReleaseNotes string
}

// Flags returns CLI flags for release configuration
func (c *Release) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "Release tag, a hyphen marks a pre-release (e.g. v1.2.0-rc1)",
			Destination: &c.Tag,
			Sources:     cli.EnvVars("TAG"),
		},
		&cli.StringFlag{
			Name:        "release-notes",
			Usage:       "Path to the changelog file",
			Value:       DefaultReleaseNotes,
			Destination: &c.ReleaseNotes,
			Sources:     cli.EnvVars("RELEASE_NOTES"),
		},
	}
}

// Validate checks that a tag is given
func (c *Release) Validate() error {
	if c.Tag == "" {
		return &model.MissingEnvError{Name: "TAG", Kind: model.ErrMissingTag}
	}
	return nil
}
