package handlers_test

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvdberg/huisportaal/internal/testutil"
)

func TestFilmsEndToEnd(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)
	ctx := context.Background()

	account := testutil.NewAccountBuilder().BuildAndLogin(t, ts, client)

	resp := ts.PostForm(t, client, "/addfilm", url.Values{
		"film":      {"Heat"},
		"jaar":      {"1995"},
		"bekeken":   {"1"},
		"timestamp": {"2026-03-01 20:00"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Heat")
	assert.Contains(t, body, "1995")
	assert.Contains(t, body, "Film added successfully")

	films, err := ts.Repos.Film.ListByOwner(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, 1, films[0].Watched)
	assert.Equal(t, "2026-03-01 20:00", films[0].Timestamp)

	resp = ts.PostForm(t, client, "/editfilm", url.Values{
		"idfilm":       {itoa(films[0].ID)},
		"nieuwenaam":   {"Heat (Director's Cut)"},
		"nieuwjaar":    {"1995"},
		"edit_bekeken": {"0"},
		"timestamp":    {"2026-03-02 21:00"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Film updated successfully")

	films, err = ts.Repos.Film.ListByOwner(ctx, account.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
	assert.Equal(t, "Heat (Director's Cut)", films[0].Title)
	assert.Equal(t, 0, films[0].Watched)
	assert.Equal(t, "2026-03-02 21:00", films[0].Timestamp)

	resp = ts.PostForm(t, client, "/removefilm", url.Values{
		"idfilm": {itoa(films[0].ID)},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body = readBody(t, resp)
	assert.NotContains(t, body, "Heat")
	assert.Contains(t, body, "Film deleted successfully")
}

func TestFilmsInlineInsert(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	testutil.NewAccountBuilder().BuildAndLogin(t, ts, client)

	resp := ts.PostForm(t, client, "/films", url.Values{
		"film":      {"Ran"},
		"jaar":      {"1985"},
		"bekeken":   {"0"},
		"timestamp": {"2026-04-01 19:30"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Ran")
	assert.Contains(t, body, "1985")
}

func TestFilmCrossAccountIsolation(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	ownerClient := ts.Client(t)
	owner := testutil.NewAccountBuilder().BuildAndLogin(t, ts, ownerClient)
	film := testutil.NewFilmBuilder(owner.ID).WithTitle("Alien").Build(t, ts.DB.DB)

	attackerClient := ts.Client(t)
	testutil.NewAccountBuilder().BuildAndLogin(t, ts, attackerClient)

	resp := ts.PostForm(t, attackerClient, "/removefilm", url.Values{
		"idfilm": {itoa(film.ID)},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Film not found")

	films, err := ts.Repos.Film.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, films, 1)
}

func TestFilmMissingFields(t *testing.T) {
	ts := testutil.NewTestServer(t)
	client := ts.Client(t)

	testutil.NewAccountBuilder().BuildAndLogin(t, ts, client)

	// bekeken and timestamp are required fields, not optional extras.
	resp := ts.PostForm(t, client, "/addfilm", url.Values{
		"film": {"Heat"},
		"jaar": {"1995"},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
