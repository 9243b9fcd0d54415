package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/naveenspark/gradia/pkg/session"
	"github.com/naveenspark/gradia/pkg/token"
)

// validToken is a structurally valid three-segment token for tests.
func validToken(t *testing.T) string {
	t.Helper()
	payload := base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"42"}`))
	return "hdr." + payload + ".sig"
}

func TestLoginSendsBasicHeader(t *testing.T) {
	tok := validToken(t)
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"token": tok}) //nolint:errcheck
	}))
	defer srv.Close()

	store := session.NewMemStore()
	c := New(srv.URL, srv.URL, store)
	got, err := c.Login(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if want := "Basic YWxpY2U6cHcxMjM="; gotAuth != want {
		t.Errorf("Authorization = %q, want %q", gotAuth, want)
	}
	if got != tok {
		t.Errorf("Login() = %q, want %q", got, tok)
	}
	if stored, _ := store.Token(); stored != tok {
		t.Errorf("stored token = %q, want %q", stored, tok)
	}
}

func TestLoginAcceptsRawBodyToken(t *testing.T) {
	tok := validToken(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(tok)) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, session.NewMemStore())
	got, err := c.Login(context.Background(), "alice", "pw123")
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	if got != tok {
		t.Errorf("Login() = %q, want raw body token", got)
	}
}

func TestLoginRejectedWithServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "User does not exist"}) //nolint:errcheck
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, session.NewMemStore())
	_, err := c.Login(context.Background(), "alice", "wrong")
	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Login() err = %v, want AuthError", err)
	}
	if authErr.Message != "User does not exist" {
		t.Errorf("Message = %q, want server message", authErr.Message)
	}
	if authErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", authErr.StatusCode)
	}
}

func TestLoginInvalidTokenNotStored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": "notatoken"}) //nolint:errcheck
	}))
	defer srv.Close()

	store := session.NewMemStore()
	c := New(srv.URL, srv.URL, store)
	_, err := c.Login(context.Background(), "alice", "pw123")
	if !errors.Is(err, token.ErrInvalidFormat) {
		t.Fatalf("Login() err = %v, want ErrInvalidFormat", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("invalid token was stored")
	}
}

func TestLoginEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, session.NewMemStore())
	_, err := c.Login(context.Background(), "alice", "pw123")
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("Login() err = %v, want ErrNoToken", err)
	}
}

func TestExecuteWithoutSession(t *testing.T) {
	c := New("http://unused", "http://unused", session.NewMemStore())
	_, err := c.Execute(context.Background(), "{ user { id } }")
	if !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("Execute() err = %v, want ErrNotAuthenticated", err)
	}
}

func TestExecuteExpiredSessionCleared(t *testing.T) {
	store := session.NewMemStore()
	store.SetToken("garbage") //nolint:errcheck

	c := New("http://unused", "http://unused", store)
	_, err := c.Execute(context.Background(), "{ user { id } }")
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("Execute() err = %v, want ErrSessionExpired", err)
	}
	if _, ok := store.Token(); ok {
		t.Error("expired session not cleared")
	}
}

func TestExecuteGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"errors": []map[string]string{{"message": "bad query"}},
		})
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.SetToken(validToken(t)) //nolint:errcheck
	c := New(srv.URL, srv.URL, store)

	_, err := c.Execute(context.Background(), "{ nope }")
	var qErr *QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("Execute() err = %v, want QueryError", err)
	}
	if qErr.Message != "bad query" {
		t.Errorf("Message = %q, want first error message", qErr.Message)
	}
}

func TestExecuteSendsBearerAndQuery(t *testing.T) {
	tok := validToken(t)
	var gotAuth, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var body struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		gotQuery = body.Query
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{}}) //nolint:errcheck
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.SetToken(tok) //nolint:errcheck
	c := New(srv.URL, srv.URL, store)

	if _, err := c.Execute(context.Background(), "{ user { id } }"); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if gotAuth != "Bearer "+tok {
		t.Errorf("Authorization = %q, want bearer token", gotAuth)
	}
	if gotQuery != "{ user { id } }" {
		t.Errorf("query = %q, want the document as sent", gotQuery)
	}
}

// graphqlStub answers the three fixed queries in sequence and records the
// event id the second query was scoped to.
func graphqlStub(t *testing.T, wip []map[string]any) (*httptest.Server, *[]string) {
	t.Helper()
	var queries []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck
		queries = append(queries, body.Query)

		var data map[string]any
		switch {
		case strings.Contains(body.Query, "wip: progress"):
			data = map[string]any{
				"user": []map[string]any{{
					"id": 1, "login": "alice",
					"attrs":     map[string]any{"firstName": "Alice", "lastName": "Ng"},
					"totalUp":   200.0, "totalUpBonus": 10.0, "totalDown": 100.0,
					"createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-02T00:00:00Z",
				}},
				"wip": wip,
			}
		case strings.Contains(body.Query, "xp_view"):
			data = map[string]any{
				"completed": []map[string]any{{"objectId": 9, "path": "/ax/div-01/go-reloaded", "createdAt": "2024-02-01T00:00:00Z"}},
				"xp_view":   []map[string]any{{"objectId": 9, "path": "/ax/div-01/go-reloaded", "amount": 100, "createdAt": "2024-02-01T00:00:00Z"}},
				"audits":    []map[string]any{},
			}
		case strings.Contains(body.Query, "skill_%"):
			data = map[string]any{
				"skills": []map[string]any{{"objectId": 9, "type": "skill_go", "amount": 10, "createdAt": "2024-02-01T00:00:00Z"}},
			}
		default:
			t.Errorf("unexpected query: %s", body.Query)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": data}) //nolint:errcheck
	}))
	return srv, &queries
}

func TestFetchDashboardSequence(t *testing.T) {
	wip := []map[string]any{{"id": 5, "eventId": 7, "path": "/ax/div-01/forum", "createdAt": "2024-03-01T00:00:00Z", "updatedAt": "2024-03-01T00:00:00Z"}}
	srv, queries := graphqlStub(t, wip)
	defer srv.Close()

	store := session.NewMemStore()
	store.SetToken(validToken(t)) //nolint:errcheck
	c := New(srv.URL, srv.URL, store)

	dash, err := c.FetchDashboard(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboard() error: %v", err)
	}
	if len(*queries) != 3 {
		t.Fatalf("got %d queries, want 3", len(*queries))
	}
	if !strings.Contains((*queries)[1], "eventId: {_eq: 7}") {
		t.Errorf("event query not scoped to wip event id:\n%s", (*queries)[1])
	}
	if dash.EventID != 7 {
		t.Errorf("EventID = %d, want 7", dash.EventID)
	}
	if dash.User.Login != "alice" || dash.User.FullName() != "Alice Ng" {
		t.Errorf("user = %+v, want alice / Alice Ng", dash.User)
	}
	if len(dash.XP) != 1 || dash.XP[0].Amount != 100 {
		t.Errorf("xp = %+v, want one 100-amount transaction", dash.XP)
	}
	if len(dash.Skills) != 1 || dash.Skills[0].Type != "skill_go" {
		t.Errorf("skills = %+v, want one skill_go record", dash.Skills)
	}
}

func TestFetchDashboardZeroEventSentinel(t *testing.T) {
	srv, queries := graphqlStub(t, nil)
	defer srv.Close()

	store := session.NewMemStore()
	store.SetToken(validToken(t)) //nolint:errcheck
	c := New(srv.URL, srv.URL, store)

	dash, err := c.FetchDashboard(context.Background())
	if err != nil {
		t.Fatalf("FetchDashboard() error: %v", err)
	}
	if dash.EventID != 0 {
		t.Errorf("EventID = %d, want 0 sentinel", dash.EventID)
	}
	if !strings.Contains((*queries)[1], "eventId: {_eq: 0}") {
		t.Errorf("event query not scoped to sentinel 0:\n%s", (*queries)[1])
	}
}

func TestFetchDashboardAbortsOnFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"errors": []map[string]string{{"message": "boom"}},
		})
	}))
	defer srv.Close()

	store := session.NewMemStore()
	store.SetToken(validToken(t)) //nolint:errcheck
	c := New(srv.URL, srv.URL, store)

	_, err := c.FetchDashboard(context.Background())
	var qErr *QueryError
	if !errors.As(err, &qErr) {
		t.Fatalf("FetchDashboard() err = %v, want QueryError", err)
	}
	if calls != 1 {
		t.Errorf("made %d calls after failure, want 1 (no partial load)", calls)
	}
}
