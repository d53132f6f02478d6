package xrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/bnema/bsky-accounts-cli/internal/domain"
	"github.com/bnema/bsky-accounts-cli/internal/ports"
)

const acceptLabelersHeader = "atproto-accept-labelers"

// Client issues XRPC calls against one AT Protocol service. The bearer token
// and labeler list are owned by the session gateway bound to this client.
type Client struct {
	service string
	http    *http.Client

	mu        sync.Mutex
	accessJwt string
	labelers  []domain.LabelerService
}

var _ ports.APIClient = (*Client)(nil)

func NewClient(service string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		service: strings.TrimRight(service, "/"),
		http:    httpClient,
	}
}

func (c *Client) Service() string {
	return c.service
}

// Query performs an HTTP GET XRPC call.
func (c *Client) Query(ctx context.Context, nsid string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, nsid, params, nil, "", out)
}

// Procedure performs an HTTP POST XRPC call with a JSON input body.
func (c *Client) Procedure(ctx context.Context, nsid string, input any, out any) error {
	return c.do(ctx, http.MethodPost, nsid, nil, input, "", out)
}

// procedureWithToken overrides the bearer token for a single call. Refreshing
// a session authenticates with the refresh token instead of the access token.
func (c *Client) procedureWithToken(ctx context.Context, nsid string, token string, out any) error {
	return c.do(ctx, http.MethodPost, nsid, nil, nil, token, out)
}

func (c *Client) do(ctx context.Context, method, nsid string, params url.Values, input any, tokenOverride string, out any) error {
	endpoint := c.service + "/xrpc/" + nsid
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var body *bytes.Reader
	if input != nil {
		encoded, err := json.Marshal(input)
		if err != nil {
			return fmt.Errorf("encode %s input: %w", nsid, err)
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", nsid, err)
	}

	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token := tokenOverride
	c.mu.Lock()
	if token == "" {
		token = c.accessJwt
	}
	labelers := labelersHeaderValue(c.labelers)
	c.mu.Unlock()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if labelers != "" {
		req.Header.Set(acceptLabelersHeader, labelers)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", nsid, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var wire struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&wire)

		return &CallError{
			NSID:       nsid,
			StatusCode: resp.StatusCode,
			Code:       wire.Error,
			Message:    wire.Message,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", nsid, err)
	}

	return nil
}

func (c *Client) setAccessJwt(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessJwt = token
}

func (c *Client) setLabelers(labelers []domain.LabelerService) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labelers = labelers
}

func labelersHeaderValue(labelers []domain.LabelerService) string {
	parts := make([]string, 0, len(labelers))
	for _, labeler := range labelers {
		part := string(labeler.DID)
		if labeler.Redact {
			part += ";redact"
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, ", ")
}
