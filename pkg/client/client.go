// Package client talks to the identity and data endpoints.
//
// Login exchanges basic credentials for a bearer token; Execute runs GraphQL
// documents under the current session. Every Execute re-validates the token
// structurally, because a token can be corrupted or externally invalidated
// between calls.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naveenspark/gradia/pkg/domain"
	"github.com/naveenspark/gradia/pkg/logger"
	"github.com/naveenspark/gradia/pkg/session"
	"github.com/naveenspark/gradia/pkg/token"
)

// maxErrBody caps how much of an error response body is read.
const maxErrBody = 1 << 20

// Client is the gradia API client.
type Client struct {
	signinURL  string
	graphqlURL string
	sessions   session.Store
	httpClient *http.Client
	log        logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger attaches a logger; queries log their timings at debug level.
func WithLogger(l logger.Logger) Option {
	return func(c *Client) { c.log = l.Named("client") }
}

// New creates a client against the given endpoints, holding its session in
// store.
func New(signinURL, graphqlURL string, store session.Store, opts ...Option) *Client {
	c := &Client{
		signinURL:  signinURL,
		graphqlURL: graphqlURL,
		sessions:   store,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a session token. The token is structurally
// validated before it is stored; a token that does not decode is discarded.
func (c *Client) Login(ctx context.Context, identifier, secret string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.signinURL, nil)
	if err != nil {
		return "", fmt.Errorf("client.Login: create request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(identifier + ":" + secret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
	if err != nil {
		return "", fmt.Errorf("client.Login: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := "login failed"
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return "", &AuthError{StatusCode: resp.StatusCode, Message: msg}
	}

	tok := extractToken(body)
	if tok == "" {
		return "", fmt.Errorf("client.Login: %w", ErrNoToken)
	}
	if _, err := token.Decode(tok); err != nil {
		return "", fmt.Errorf("client.Login: %w", err)
	}
	if err := c.sessions.SetToken(tok); err != nil {
		return "", fmt.Errorf("client.Login: store token: %w", err)
	}
	c.log.Info(ctx, "logged in", logger.String("identifier", identifier))
	return tok, nil
}

// extractToken accepts the identity endpoint's three response shapes: a JSON
// object with a token field, a JSON-encoded string, or the raw body itself.
func extractToken(body []byte) string {
	var obj struct {
		Token string `json:"token"`
	}
	if json.Unmarshal(body, &obj) == nil && obj.Token != "" {
		return obj.Token
	}
	var s string
	if json.Unmarshal(body, &s) == nil && s != "" {
		return s
	}
	return strings.TrimSpace(string(body))
}

// Logout destroys the current session.
func (c *Client) Logout() error {
	if err := c.sessions.Clear(); err != nil {
		return fmt.Errorf("client.Logout: %w", err)
	}
	return nil
}

// Execute runs one GraphQL document and returns the data field.
// A missing session fails with ErrNotAuthenticated; a token that no longer
// decodes clears the session and fails with ErrSessionExpired. A non-empty
// errors array fails with the first error's message. No retry happens here.
func (c *Client) Execute(ctx context.Context, query string) (json.RawMessage, error) {
	tok, ok := c.sessions.Token()
	if !ok {
		return nil, fmt.Errorf("client.Execute: %w", ErrNotAuthenticated)
	}
	if _, err := token.Decode(tok); err != nil {
		c.sessions.Clear() //nolint:errcheck // session is unusable either way
		return nil, fmt.Errorf("client.Execute: %v: %w", err, ErrSessionExpired)
	}

	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("client.Execute: marshal query: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("client.Execute: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Execute: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	var result struct {
		Data   json.RawMessage `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("client.Execute: decode response: %w", err)
	}
	if len(result.Errors) > 0 {
		return nil, &QueryError{Message: result.Errors[0].Message}
	}
	c.log.Debug(ctx, "query executed", logger.Duration("took", time.Since(start)))
	return result.Data, nil
}

// FetchProfile runs the profile query: the user snapshot plus all
// work-in-progress items, ascending by creation time.
func (c *Client) FetchProfile(ctx context.Context) (domain.User, []domain.Progress, error) {
	data, err := c.Execute(ctx, profileQuery)
	if err != nil {
		return domain.User{}, nil, fmt.Errorf("client.FetchProfile: %w", err)
	}
	var out struct {
		User []domain.User     `json:"user"`
		WIP  []domain.Progress `json:"wip"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return domain.User{}, nil, fmt.Errorf("client.FetchProfile: unmarshal: %w", err)
	}
	if len(out.User) == 0 {
		return domain.User{}, nil, fmt.Errorf("client.FetchProfile: user data not found in response")
	}
	return out.User[0], out.WIP, nil
}

// FetchEventRecords runs the event-scoped query: completed results, XP
// transactions and audit transactions, each descending by creation time.
func (c *Client) FetchEventRecords(ctx context.Context, eventID int) ([]domain.Result, []domain.XPTransaction, []domain.AuditTransaction, error) {
	data, err := c.Execute(ctx, eventQuery(eventID))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("client.FetchEventRecords: %w", err)
	}
	var out struct {
		Completed []domain.Result           `json:"completed"`
		XP        []domain.XPTransaction    `json:"xp_view"`
		Audits    []domain.AuditTransaction `json:"audits"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, nil, nil, fmt.Errorf("client.FetchEventRecords: unmarshal: %w", err)
	}
	return out.Completed, out.XP, out.Audits, nil
}

// FetchSkills runs the skills query: one record per distinct skill type,
// highest amount kept.
func (c *Client) FetchSkills(ctx context.Context) ([]domain.SkillRecord, error) {
	data, err := c.Execute(ctx, skillsQuery)
	if err != nil {
		return nil, fmt.Errorf("client.FetchSkills: %w", err)
	}
	var out struct {
		Skills []domain.SkillRecord `json:"skills"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("client.FetchSkills: unmarshal: %w", err)
	}
	return out.Skills, nil
}

// FetchDashboard runs the full load sequence. The queries run strictly in
// order because the event id comes from the first WIP item of the profile
// query (0 when nothing is in progress). Any failure aborts the whole load —
// partial dashboards are never returned.
func (c *Client) FetchDashboard(ctx context.Context) (*domain.Dashboard, error) {
	loadID := uuid.New().String()
	start := time.Now()

	user, wip, err := c.FetchProfile(ctx)
	if err != nil {
		c.log.Warn(ctx, "dashboard load failed", logger.String("load_id", loadID), logger.Error(err))
		return nil, err
	}

	eventID := 0
	if len(wip) > 0 {
		eventID = wip[0].EventID
	}

	completed, xp, audits, err := c.FetchEventRecords(ctx, eventID)
	if err != nil {
		c.log.Warn(ctx, "dashboard load failed", logger.String("load_id", loadID), logger.Error(err))
		return nil, err
	}

	skills, err := c.FetchSkills(ctx)
	if err != nil {
		c.log.Warn(ctx, "dashboard load failed", logger.String("load_id", loadID), logger.Error(err))
		return nil, err
	}

	c.log.Info(ctx, "dashboard loaded",
		logger.String("load_id", loadID),
		logger.String("login", user.Login),
		logger.Int("event_id", eventID),
		logger.Int("xp_count", len(xp)),
		logger.Duration("took", time.Since(start)))

	return &domain.Dashboard{
		User:      user,
		WIP:       wip,
		Completed: completed,
		XP:        xp,
		Audits:    audits,
		Skills:    skills,
		EventID:   eventID,
	}, nil
}
