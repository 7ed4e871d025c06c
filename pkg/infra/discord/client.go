package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/goerr/v2"

	"github.com/FakeErrorX/relnotify/pkg/domain/interfaces"
	"github.com/FakeErrorX/relnotify/pkg/domain/model"
)

type client struct {
	webhookURL string
	httpClient *http.Client
}

// Option is a functional option for the Discord client
type Option func(*client)

// WithHTTPClient replaces http.DefaultClient
func WithHTTPClient(c *http.Client) Option {
	return func(cl *client) {
		cl.httpClient = c
	}
}

// NewClient creates a new Discord webhook client
func NewClient(webhookURL string, opts ...Option) interfaces.DiscordClient {
	c := &client{
		webhookURL: webhookURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostWebhook executes the webhook with a JSON body
func (c *client) PostWebhook(ctx context.Context, payload *model.DiscordPayload) (*model.DeliveryResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal discord payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, goerr.Wrap(c.redact(err), "failed to create webhook request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(c.redact(err), "failed to post discord webhook")
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

// redact hides the webhook id and token carried in the URL of err. Only scheme and host are kept.
func (c *client) redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	urlErr.URL = "[REDACTED]"
	if u, perr := url.Parse(c.webhookURL); perr == nil && u.Scheme != "" && u.Host != "" {
		urlErr.URL = u.Scheme + "://" + u.Host + "/[REDACTED]"
	}
	return err
}
