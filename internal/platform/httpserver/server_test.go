package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	commentservice "inkwell/contexts/engagement/comment-service"
	commentmemory "inkwell/contexts/engagement/comment-service/adapters/memory"
	accountservice "inkwell/contexts/identity/account-service"
	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	accountmemory "inkwell/contexts/identity/account-service/adapters/memory"
	postgresadapter "inkwell/contexts/identity/account-service/adapters/postgres"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	accountentities "inkwell/contexts/identity/account-service/domain/entities"
	categoryservice "inkwell/contexts/publishing/category-service"
	postservice "inkwell/contexts/publishing/post-service"
	postmemory "inkwell/contexts/publishing/post-service/adapters/memory"
	postports "inkwell/contexts/publishing/post-service/ports"
	"inkwell/internal/platform/token"
)

const (
	testCreatorID  = "11111111-1111-4111-8111-111111111111"
	testAdminID    = "22222222-2222-4222-8222-222222222222"
	testReaderID   = "33333333-3333-4333-8333-333333333333"
	testCategoryID = "44444444-4444-4444-8444-444444444444"
	testPostRefID  = "77777777-7777-4777-8777-777777777777"
)

type testEnv struct {
	server     *Server
	codec      token.Codec
	accounts   accountservice.Module
	posts      postservice.Module
	categories categoryservice.Module
	comments   commentservice.Module
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelError}))
	codec := token.Codec{Secret: []byte("test-secret"), TTL: time.Hour}

	posts := postservice.NewInMemoryModule(false, logger)
	categories := categoryservice.NewInMemoryModule(logger)
	comments := commentservice.NewInMemoryModule(logger)

	accountStore := accountmemory.NewStore()
	accounts := accountservice.NewModule(accountservice.Dependencies{
		Repository: cascadingAccountStore{Store: accountStore, posts: posts.Store, comments: comments.Store},
		Hasher:     bcryptadapter.Hasher{},
		Tokens:     tokenadapter.Issuer{Codec: codec},
		Clock:      postgresadapter.SystemClock{},
		IDs:        postgresadapter.UUIDGenerator{},
		DemoEmail:  "demo@inkwell.dev",
		Logger:     logger,
	})
	accounts.Store = accountStore

	posts.Store.SeedAuthor(postports.AccountRecord{ID: testCreatorID, Name: "Creator", Role: "creator", Status: "active"})
	posts.Store.SeedAuthor(postports.AccountRecord{ID: testAdminID, Name: "Admin", Role: "admin", Status: "active"})
	posts.Store.SeedAuthor(postports.AccountRecord{ID: testReaderID, Name: "Reader", Role: "user", Status: "active"})
	posts.Store.SeedCategory(postports.CategorySummary{ID: testCategoryID, Name: "Engineering"})

	server := New(Options{
		Addr:       ":0",
		Codec:      codec,
		Accounts:   accounts,
		Posts:      posts,
		Categories: categories,
		Comments:   comments,
		Logger:     logger,
	})
	return &testEnv{
		server:     server,
		codec:      codec,
		accounts:   accounts,
		posts:      posts,
		categories: categories,
		comments:   comments,
	}
}

// cascadingAccountStore mirrors the schema's ON DELETE CASCADE across
// the in-memory stores: deleting an account also removes its posts, the
// comments under those posts, and the comments it authored elsewhere.
type cascadingAccountStore struct {
	*accountmemory.Store
	posts    *postmemory.Store
	comments *commentmemory.Store
}

func (s cascadingAccountStore) Delete(ctx context.Context, id string) (accountentities.Account, error) {
	account, err := s.Store.Delete(ctx, id)
	if err != nil {
		return account, err
	}
	for _, postID := range s.posts.DeleteByAuthor(ctx, id) {
		s.comments.DeleteByPost(ctx, postID)
	}
	s.comments.DeleteByUser(ctx, id)
	return account, nil
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func (e *testEnv) issueToken(t *testing.T, id string, email string, role string, status string) string {
	t.Helper()
	raw, err := e.codec.Issue(token.Claims{ID: id, Email: email, Role: role, Status: status})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return raw
}

func (e *testEnv) do(t *testing.T, method string, path string, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/health", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
