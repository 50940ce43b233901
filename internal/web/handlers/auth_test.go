package handlers_test

import (
	"io"
	"net/http"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdberg/huisportaal/internal/domain"
	"github.com/mvdberg/huisportaal/internal/testutil"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func TestRegisterAndLoginFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.NoRedirectClient(t)

	// Register alice.
	resp := ts.PostForm(t, client, "/register", url.Values{
		"username": {"alice"},
		"password": {"pw1"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	// Registering the same username again stays on the form with a notice
	// and adds no account.
	resp = ts.PostForm(t, client, "/register", url.Values{
		"username": {"alice"},
		"password": {"pw2"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Username already exists")

	var count int64
	require.NoError(t, ts.DB.DB.Model(&domain.Account{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// Wrong password stays on the login form with a generic notice.
	resp = ts.PostForm(t, client, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrongpw"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Invalid username or password")

	// The same notice for an unknown username.
	resp = ts.PostForm(t, client, "/login", url.Values{
		"username": {"eve"},
		"password": {"pw1"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Invalid username or password")

	// Correct credentials reach the dashboard.
	resp = ts.PostForm(t, client, "/login", url.Values{
		"username": {"alice"},
		"password": {"pw1"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp = ts.Get(t, client, "/dashboard")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "alice")
}

func TestRegisterMissingFields(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	resp := ts.PostForm(t, client, "/register", url.Values{
		"username": {"bob"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogout(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	testutil.NewAccountBuilder().BuildAndLogin(t, ts, client)

	resp := ts.Get(t, client, "/dashboard")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.Get(t, client, "/logout")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode) // followed the redirect home

	// The old session no longer grants access.
	resp = ts.Get(t, client, "/dashboard")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `<a href="/">`)
}

func TestUnauthorizedPage(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	for _, path := range []string{"/dashboard", "/telefoonboek", "/films"} {
		resp := ts.Get(t, client, path)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)

		body := readBody(t, resp)
		assert.Contains(t, body, "Hij doet het niet", path)
		assert.Contains(t, body, `<a href="/">`, path)
	}
}
