// Package convlist lists the Slack conversations a token can see and turns
// them into one normalized, sortable shape.
package convlist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/slack-go/slack"
)

// LevelTrace is below slog.LevelDebug and logs every request.
const LevelTrace = slog.LevelDebug - 4

var errMalformedBody = errors.New("response body is not JSON")

// Client calls the read-only Web API methods needed for listing.
type Client struct {
	APIURL string
	Token  string
	HTTP   *http.Client
	Logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// OptionAPIURL overrides the API base URL. It must end with a slash.
func OptionAPIURL(u string) Option {
	return func(c *Client) { c.APIURL = u }
}

// OptionHTTPClient sets the http.Client used for every call.
func OptionHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.HTTP = h }
}

// OptionLogger sets the logger.
func OptionLogger(l *slog.Logger) Option {
	return func(c *Client) { c.Logger = l }
}

// New builds a Client for token, talking to slack.APIURL unless overridden.
func New(token string, opts ...Option) *Client {
	c := &Client{
		APIURL: slack.APIURL,
		Token:  token,
		HTTP:   &http.Client{},
		Logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = discardLogger()
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{}
	}
	if !strings.HasSuffix(c.APIURL, "/") {
		c.APIURL += "/"
	}
	return c
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// envelope is a success shape. matched reports whether a decoded body really
// was a success response and not merely something that decoded without error.
type envelope interface {
	matched() bool
}

func bearer(token string) string {
	if strings.HasPrefix(token, "Bearer ") {
		return token
	}
	return "Bearer " + token
}

// get performs one GET of method and decodes the body into success.
func (c *Client) get(ctx context.Context, method string, values url.Values, success envelope) error {
	endpoint := c.APIURL + method
	if len(values) > 0 {
		endpoint += "?" + values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	req.Header.Set("Authorization", bearer(c.Token))

	c.Logger.Log(ctx, LevelTrace, "request", "method", method, "query", values.Encode())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, Status: resp.StatusCode, Err: err}
	}

	c.Logger.Log(ctx, LevelTrace, "response", "method", method, "status", resp.StatusCode, "bytes", len(body))

	return decodeEnvelope(method, resp.StatusCode, body, success)
}

// decodeEnvelope tries the success shape first, then the error shape.
// A body that is JSON but fits neither is a DecodeError.
func decodeEnvelope(method string, status int, body []byte, success envelope) error {
	if !json.Valid(body) {
		return &TransportError{Method: method, Status: status, Err: errMalformedBody}
	}

	successErr := json.Unmarshal(body, success)
	if successErr == nil && success.matched() {
		return nil
	}

	var failure slack.SlackResponse
	if err := json.Unmarshal(body, &failure); err == nil && !failure.Ok && failure.Error != "" {
		return &APIError{Method: method, Code: failure.Error}
	}

	if status >= http.StatusBadRequest {
		return &TransportError{Method: method, Status: status, Err: errors.New(http.StatusText(status))}
	}
	if successErr != nil {
		return &DecodeError{Method: method, Err: successErr}
	}
	return &DecodeError{Method: method, Err: errors.New("body matches neither the success nor the error shape")}
}
