package telegram

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/FakeErrorX/relnotify/pkg/domain/interfaces"
	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

// DefaultAPIURL points at a local Bot API server
const DefaultAPIURL = "http://localhost:8081"

type client struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// Option is a functional option for the Telegram client
type Option func(*client)

// WithAPIURL sets the Bot API base URL
func WithAPIURL(apiURL string) Option {
	return func(c *client) {
		c.apiURL = apiURL
	}
}

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Bot API client for token
func NewClient(token string, opts ...Option) interfaces.TelegramClient {
	c := &client{
		token:      token,
		apiURL:     DefaultAPIURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SendMessage posts msg as a form-encoded sendMessage call. The response status is not interpreted.
func (c *client) SendMessage(ctx context.Context, msg *model.TelegramMessage) (*model.DeliveryResult, error) {
	// the endpoint embeds the token, keep it out of error values
	endpoint := strings.TrimSuffix(c.apiURL, "/") + "/bot" + c.token + "/sendMessage"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(msg.Values().Encode()))
	if err != nil {
		return nil, goerr.Wrap(c.redact(err), "failed to create sendMessage request", goerr.V("api_url", c.apiURL))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(c.redact(err), "failed to call sendMessage", goerr.V("api_url", c.apiURL))
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("status", resp.StatusCode))
	}

	return &model.DeliveryResult{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}

// redact hides the bot token embedded in the URL of err
func (c *client) redact(err error) error {
	var urlErr *url.Error
	if c.token != "" && errors.As(err, &urlErr) {
		urlErr.URL = strings.ReplaceAll(urlErr.URL, c.token, "[REDACTED]")
	}
	return err
}
