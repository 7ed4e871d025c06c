package model

import "strings"

// Release represents the release being announced. It is built once per run and never mutated.
type Release struct {
	Tag          string // Release tag, used verbatim in titles and links
	Stable       bool   // True when Tag has no pre-release suffix
	Changelog    string // Formatted changelog, possibly empty
	HasChangelog bool   // Whether the changelog file existed on disk
}

// NewRelease creates a Release. A tag containing a hyphen (e.g. v1.2.0-rc1) is a pre-release.
func NewRelease(tag, changelog string, hasChangelog bool) Release {
	return Release{
		Tag:          tag,
		Stable:       IsStableTag(tag),
		Changelog:    changelog,
		HasChangelog: hasChangelog,
	}
}

// IsStableTag reports whether tag denotes a production release
func IsStableTag(tag string) bool {
	return !strings.Contains(tag, "-")
}
