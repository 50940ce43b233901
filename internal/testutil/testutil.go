package testutil

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mvdberg/huisportaal/internal/config"
	"github.com/mvdberg/huisportaal/internal/repository"
	"github.com/mvdberg/huisportaal/internal/repository/store"
	"github.com/mvdberg/huisportaal/internal/service"
	"github.com/mvdberg/huisportaal/internal/web"
	"github.com/mvdberg/huisportaal/internal/web/render"
)

// TestDB wraps an in-memory sqlite database with the schema migrated.
type TestDB struct {
	DB *gorm.DB
}

// NewTestDB opens a fresh in-memory database. The named shared-cache DSN
// keeps every pooled connection on the same database.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := store.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	return &TestDB{DB: db}
}

// Truncate clears all tables for test isolation.
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	tables := []string{"sessions", "contacts", "film_entries", "accounts"}
	for _, table := range tables {
		if err := tdb.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Logf("warning: failed to clear %s: %v", table, err)
		}
	}
}

// TestConfig returns a configuration suitable for testing.
func TestConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Environment:    "test",
		DatabaseDriver: "sqlite",
		SessionTTL:     time.Hour,
	}
}

// TestServer holds all components for integration testing.
type TestServer struct {
	Server   *httptest.Server
	DB       *TestDB
	Repos    *repository.Repositories
	Services *service.Services
	Config   *config.Config
}

// NewTestServer creates a complete test server with all dependencies.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	testDB := NewTestDB(t)
	cfg := TestConfig()

	repos := store.NewRepositories(testDB.DB)
	services := service.NewServices(repos, cfg)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("failed to load templates: %v", err)
	}

	router := web.NewRouter(services, renderer, zerolog.Nop())
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server:   server,
		DB:       testDB,
		Repos:    repos,
		Services: services,
		Config:   cfg,
	}

	t.Cleanup(func() {
		server.Close()
	})

	return ts
}

// URL returns the full URL for a given path.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}

// Client returns an http client with a cookie jar that follows redirects,
// behaving like a browser against the form endpoints.
func (ts *TestServer) Client(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to create cookie jar: %v", err)
	}
	return &http.Client{Jar: jar}
}

// NoRedirectClient returns a cookie-jar client that stops at the first
// response, for asserting on redirect statuses and Location headers.
func (ts *TestServer) NoRedirectClient(t *testing.T) *http.Client {
	t.Helper()

	client := ts.Client(t)
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return client
}

// PostForm submits a form to the given path with the given client.
func (ts *TestServer) PostForm(t *testing.T, client *http.Client, path string, form url.Values) *http.Response {
	t.Helper()

	resp, err := client.Post(ts.URL(path), "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("failed to POST %s: %v", path, err)
	}
	return resp
}

// Get fetches the given path with the given client.
func (ts *TestServer) Get(t *testing.T, client *http.Client, path string) *http.Response {
	t.Helper()

	resp, err := client.Get(ts.URL(path))
	if err != nil {
		t.Fatalf("failed to GET %s: %v", path, err)
	}
	return resp
}
