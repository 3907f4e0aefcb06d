package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestStatuses_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/statuses/main" {
			t.Errorf("path = %q, want statuses path for main", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[
			{"id": 2, "state": "success", "context": "ci/build"},
			{"id": 1, "state": "pending", "context": "ci/build"}
		]`))
	})

	statuses, err := client.Repository("octocat", "hello-world").Statuses("main").List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(statuses) != 2 || statuses[0].State != "success" {
		t.Fatalf("statuses = %+v, want newest success first", statuses)
	}
}

func TestStatuses_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if r.URL.Path != "/repos/octocat/hello-world/statuses/deadbeef" {
			t.Errorf("path = %q, want statuses path for sha", r.URL.Path)
		}
		var body StatusOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.State != "failure" {
			t.Errorf("body.State = %q, want failure", body.State)
		}
		if body.Context == nil || *body.Context != "ci/build" {
			t.Errorf("body.Context = %v, want ci/build", body.Context)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 3, "state": "failure", "context": "ci/build"}`))
	})

	opts := NewStatusOptionsBuilder(StatusStateFailure).
		TargetURL("https://ci.example.com/builds/99").
		Description("unit tests failed").
		Context("ci/build").
		Build()
	status, err := client.Repository("octocat", "hello-world").Statuses("deadbeef").Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if status.State != "failure" {
		t.Errorf("status.State = %q, want failure", status.State)
	}
}
