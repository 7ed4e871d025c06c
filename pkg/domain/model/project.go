package model

import "strings"

// Project holds the branding used in announcements
type Project struct {
	Name       string `toml:"name" yaml:"name"`
	Tagline    string `toml:"tagline" yaml:"tagline"`
	Repository string `toml:"repository" yaml:"repository"`
	IconURL    string `toml:"icon_url" yaml:"icon_url"`
	Team       string `toml:"team" yaml:"team"`
}

// DefaultProject returns the built-in ErrorX branding
func DefaultProject() Project {
	return Project{
		Name:       "ErrorX",
		Tagline:    "Experience the next level of error handling",
		Repository: "https://github.com/FakeErrorX/ErrorX",
		IconURL:    "https://raw.githubusercontent.com/FakeErrorX/ErrorX/main/assets/icon/icon.png",
		Team:       "ErrorX Team",
	}
}

// Merge returns p with every non-empty field of other applied on top
func (p Project) Merge(other Project) Project {
	if other.Name != "" {
		p.Name = other.Name
	}
	if other.Tagline != "" {
		p.Tagline = other.Tagline
	}
	if other.Repository != "" {
		p.Repository = other.Repository
	}
	if other.IconURL != "" {
		p.IconURL = other.IconURL
	}
	if other.Team != "" {
		p.Team = other.Team
	}
	return p
}

// ReleaseURL returns the release page for tag
func (p Project) ReleaseURL(tag string) string {
	return p.repoURL() + "/releases/tag/" + tag
}

// WikiURL returns the documentation link
func (p Project) WikiURL() string {
	return p.repoURL() + "/wiki"
}

// IssuesURL returns the issue tracker link
func (p Project) IssuesURL() string {
	return p.repoURL() + "/issues"
}

func (p Project) repoURL() string {
	return strings.TrimSuffix(p.Repository, "/")
}
