package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGists_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gists", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": "aa5a315d61ae9438b18d", "description": "deploy notes"}]`))
	})

	gists, err := client.Gists().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, gists, 1)
	assert.Equal(t, "aa5a315d61ae9438b18d", gists[0].ID)
}

func TestGists_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/gists/aa5a315d61ae9438b18d", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"id": "aa5a315d61ae9438b18d",
			"public": true,
			"files": {
				"hello.go": {"filename": "hello.go", "language": "Go", "content": "package main"}
			}
		}`))
	})

	gist, err := client.Gists().Get(context.Background(), "aa5a315d61ae9438b18d")
	require.NoError(t, err)
	assert.True(t, gist.Public)
	require.Contains(t, gist.Files, "hello.go")
	assert.Equal(t, "Go", gist.Files["hello.go"].Language)
}

func TestGists_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body GistOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.Public)
		assert.False(t, *body.Public)
		require.Contains(t, body.Files, "notes.md")
		assert.Equal(t, "rollback steps", body.Files["notes.md"].Content)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "new-gist-id", "public": false}`))
	})

	opts := NewGistOptionsBuilder().
		Description("deploy notes").
		Public(false).
		File("notes.md", "rollback steps").
		Build()
	gist, err := client.Gists().Create(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, "new-gist-id", gist.ID)
}

func TestGists_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/gists/aa5a315d61ae9438b18d", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Gists().Delete(context.Background(), "aa5a315d61ae9438b18d"))
}

func TestUserGists_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/gists", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": "g1"}, {"id": "g2"}]`))
	})

	gists, err := client.UserGists("octocat").List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, gists, 2)
}
