package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// Project holds the optional branding file location
type Project struct {
	File string
}

// Flags returns CLI flags for branding configuration
func (c *Project) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Branding file (.toml, .yaml or .yml) overriding project name, links and icon",
			Destination: &c.File,
			Sources:     cli.EnvVars("RELNOTIFY_CONFIG"),
		},
	}
}

// Load returns the default branding with the file's values applied on top
func (c *Project) Load() (model.Project, error) {
	project := model.DefaultProject()
	if c.File == "" {
		return project, nil
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return project, goerr.Wrap(err, "failed to read config file", goerr.V("path", c.File))
	}

	var loaded model.Project
	switch ext := strings.ToLower(filepath.Ext(c.File)); ext {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&loaded); err != nil {
			return project, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", c.File))
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&loaded); err != nil {
			return project, goerr.Wrap(err, "failed to parse YAML config", goerr.V("path", c.File))
		}
	default:
		return project, goerr.New("unsupported config file type", goerr.V("path", c.File), goerr.V("ext", ext))
	}

	return project.Merge(loaded), nil
}
