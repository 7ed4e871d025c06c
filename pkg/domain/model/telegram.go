package model

import (
	"net/url"
	"strconv"
)

// ParseModeMarkdown is the legacy Markdown dialect of the Bot API
const ParseModeMarkdown = "Markdown"

// TelegramMessage is a sendMessage request
type TelegramMessage struct {
	ChatID                string
	Text                  string
	ParseMode             string
	DisableWebPagePreview bool
}

// Values encodes the message as form fields
func (m TelegramMessage) Values() url.Values {
	v := url.Values{}
	v.Set("chat_id", m.ChatID)
	v.Set("text", m.Text)
	v.Set("parse_mode", m.ParseMode)
	v.Set("disable_web_page_preview", strconv.FormatBool(m.DisableWebPagePreview))
	return v
}
