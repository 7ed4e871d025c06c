package model

// DiscordPayload is the JSON body of a Discord webhook execution
type DiscordPayload struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds"`
}

// Embed is a Discord rich embed
type Embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	URL         string       `json:"url"`
	Color       int          `json:"color"`
	Timestamp   string       `json:"timestamp"`
	Fields      []EmbedField `json:"fields"`
	Thumbnail   EmbedImage   `json:"thumbnail"`
	Footer      EmbedFooter  `json:"footer"`
}

// EmbedField is a single name/value block inside an embed
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedImage references an image by URL
type EmbedImage struct {
	URL string `json:"url"`
}

// EmbedFooter is the small line at the bottom of an embed
type EmbedFooter struct {
	Text    string `json:"text"`
	IconURL string `json:"icon_url"`
}

// Embed limits and colors
const (
	EmbedFieldValueLimit = 1024

	ColorStable     = 0x58b9ff
	ColorPreRelease = 0xf1c40f
)
