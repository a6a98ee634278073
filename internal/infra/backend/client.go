package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/config"
	"shuttlesync/internal/pkg/errs"
	"shuttlesync/internal/usecase/shared"
)

const maxErrorBody = 4 << 10

// Client talks to the booking backend REST API with the caller's bearer token.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

func NewClient(cfg config.BackendConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, errs.Wrapf(err, "invalid BACKEND_BASE_URL %q", cfg.BaseURL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errs.Newf("invalid BACKEND_BASE_URL %q: scheme and host required", cfg.BaseURL)
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// envelope matches responses wrapped as {"data": ...}.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) do(ctx context.Context, s shared.Session, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return infra.WrapRepoErr("failed to encode backend request", err, infra.KindInvalid)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return infra.WrapRepoErr("failed to build backend request", err, infra.KindUpstreamFailure)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapRepoErr(fmt.Sprintf("backend %s %s failed", method, path), err, infra.KindUpstreamFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusErr(method, path, resp, time.Since(start))
	}

	if out == nil {
		return nil
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return infra.WrapRepoErr("failed to read backend response", err, infra.KindUpstreamFailure)
	}
	if err := decode(raw, out); err != nil {
		return infra.WrapRepoErr(fmt.Sprintf("failed to decode backend %s %s", method, path), err, infra.KindUpstreamFailure)
	}
	return nil
}

// decode accepts both a bare payload and one wrapped in {"data": ...}.
func decode(raw []byte, out any) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
			return json.Unmarshal(env.Data, out)
		}
	}
	return json.Unmarshal(trimmed, out)
}

func statusErr(method, path string, resp *http.Response, elapsed time.Duration) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := fmt.Sprintf("backend %s %s returned %d after %s", method, path, resp.StatusCode, elapsed.Round(time.Millisecond))

	var eb errorBody
	if json.Unmarshal(raw, &eb) == nil {
		if detail := firstNonEmpty(eb.Message, eb.Error); detail != "" {
			msg += ": " + detail
		}
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return infra.WrapRepoErr(msg, nil, infra.KindUnauthorized)
	case http.StatusNotFound:
		return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
	case http.StatusConflict:
		return infra.WrapRepoErr(msg, nil, infra.KindConflict)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return infra.WrapRepoErr(msg, nil, infra.KindInvalid)
	default:
		return infra.WrapRepoErr(msg, nil, infra.KindUpstreamFailure)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
