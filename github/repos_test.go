package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

func TestRepositories_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/repos" {
			t.Errorf("path = %q, want /user/repos", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty for nil options", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "name": "gohub"}, {"id": 2, "name": "dotfiles"}]`))
	})

	repos, err := client.Repositories().List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(repos) != 2 {
		t.Fatalf("len(repos) = %d, want 2", len(repos))
	}
	if repos[0].Name != "gohub" {
		t.Errorf("repos[0].Name = %q, want gohub", repos[0].Name)
	}
}

func TestRepositories_ListWithOptions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil {
			t.Fatalf("parsing query: %v", err)
		}
		if values.Get("visibility") != "private" {
			t.Errorf("visibility = %q, want private", values.Get("visibility"))
		}
		if values.Get("direction") != "desc" {
			t.Errorf("direction = %q, want desc", values.Get("direction"))
		}
		_, _ = w.Write([]byte(`[]`))
	})

	opts := NewRepoListOptionsBuilder().Visibility(VisibilityPrivate).Desc().Build()
	if _, err := client.Repositories().List(context.Background(), opts); err != nil {
		t.Fatalf("List() error = %v", err)
	}
}

func TestRepositories_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		var body RepoOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Name != "gohub" {
			t.Errorf("body.Name = %q, want gohub", body.Name)
		}
		if body.Private == nil || !*body.Private {
			t.Error("body.Private not sent as true")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "name": "gohub", "private": true}`))
	})

	opts := NewRepoOptionsBuilder("gohub").
		Private(true).
		Description("typed GitHub API client").
		Build()
	repo, err := client.Repositories().Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if repo.ID != 42 || !repo.Private {
		t.Errorf("repo = %+v, want id 42 private", repo)
	}
}

func TestUserRepositories_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/octocat/repos" {
			t.Errorf("path = %q, want /users/octocat/repos", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id": 1}]`))
	})

	repos, err := client.UserRepositories("octocat").List(context.Background(), nil)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(repos) != 1 {
		t.Errorf("len(repos) = %d, want 1", len(repos))
	}
}

func TestOrganizationRepositories_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/orgs/golang/repos" {
			t.Errorf("path = %q, want /orgs/golang/repos", r.URL.Path)
		}
		if got := r.URL.Query().Get("type"); got != "sources" {
			t.Errorf("type = %q, want sources", got)
		}
		_, _ = w.Write([]byte(`[]`))
	})

	opts := NewOrgRepoListOptionsBuilder().Type(OrgRepoTypeSources).Build()
	if _, err := client.OrganizationRepositories("golang").List(context.Background(), opts); err != nil {
		t.Fatalf("List() error = %v", err)
	}
}

func TestRepository_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world" {
			t.Errorf("path = %q, want /repos/octocat/hello-world", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"id": 1296269,
			"name": "hello-world",
			"full_name": "octocat/hello-world",
			"owner": {"login": "octocat", "id": 1},
			"default_branch": "main",
			"pushed_at": "2024-02-01T10:00:00Z"
		}`))
	})

	repo, err := client.Repository("octocat", "hello-world").Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if repo.FullName != "octocat/hello-world" {
		t.Errorf("FullName = %q, want octocat/hello-world", repo.FullName)
	}
	if repo.Owner.Login != "octocat" {
		t.Errorf("Owner.Login = %q, want octocat", repo.Owner.Login)
	}
	if repo.PushedAt.IsZero() {
		t.Error("PushedAt not decoded")
	}
}

func TestRepository_Languages(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/languages" {
			t.Errorf("path = %q, want languages sub-path", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"Go": 123456, "Shell": 789}`))
	})

	languages, err := client.Repository("octocat", "hello-world").Languages(context.Background())
	if err != nil {
		t.Fatalf("Languages() error = %v", err)
	}
	if languages["Go"] != 123456 {
		t.Errorf("languages[Go] = %d, want 123456", languages["Go"])
	}
}
