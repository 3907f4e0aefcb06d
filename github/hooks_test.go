package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestHooks_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/hooks" {
			t.Errorf("path = %q, want hooks path", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "name": "web", "active": true, "events": ["push"]}]`))
	})

	hooks, err := client.Repository("octocat", "hello-world").Hooks().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(hooks) != 1 || hooks[0].Name != "web" {
		t.Fatalf("hooks = %+v, want one hook named web", hooks)
	}
}

func TestHooks_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body HookOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Config["url"] != "https://ci.example.com/hook" {
			t.Errorf("config url = %q", body.Config["url"])
		}
		if body.Active == nil || !*body.Active {
			t.Error("active not sent as true")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 12, "name": "web", "active": true}`))
	})

	opts := NewHookOptionsBuilder("web").
		ConfigEntry("url", "https://ci.example.com/hook").
		ConfigEntry("content_type", "json").
		Events("push", "pull_request").
		Active(true).
		Build()
	hook, err := client.Repository("octocat", "hello-world").Hooks().Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if hook.ID != 12 {
		t.Errorf("hook.ID = %d, want 12", hook.ID)
	}
}

func TestHooks_Edit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		if r.URL.Path != "/repos/octocat/hello-world/hooks/12" {
			t.Errorf("path = %q, want hook 12", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id": 12, "active": false}`))
	})

	opts := NewHookOptionsBuilder("web").Active(false).Build()
	hook, err := client.Repository("octocat", "hello-world").Hooks().Edit(context.Background(), 12, opts)
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if hook.Active {
		t.Error("hook still active after edit")
	}
}

func TestHooks_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		if r.URL.Path != "/repos/octocat/hello-world/hooks/12" {
			t.Errorf("path = %q, want hook 12", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Repository("octocat", "hello-world").Hooks().Delete(context.Background(), 12); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
