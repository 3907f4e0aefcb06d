package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestIssues_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/issues" {
			t.Errorf("path = %q, want issues path", r.URL.Path)
		}
		if got := r.URL.Query().Get("state"); got != "closed" {
			t.Errorf("state = %q, want closed", got)
		}
		_, _ = w.Write([]byte(`[{"id": 1, "number": 7, "title": "panic on empty input", "state": "closed"}]`))
	})

	opts := NewIssueListOptionsBuilder().State(IssueStateClosed).Build()
	issues, err := client.Repository("octocat", "hello-world").Issues().List(context.Background(), opts)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(issues) != 1 || issues[0].Number != 7 {
		t.Fatalf("issues = %+v, want one issue numbered 7", issues)
	}
}

func TestIssues_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		var body IssueOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Title != "panic on empty input" {
			t.Errorf("body.Title = %q", body.Title)
		}
		if len(body.Labels) != 2 {
			t.Errorf("body.Labels = %v, want two labels", body.Labels)
		}
		if body.State != nil {
			t.Error("state sent on create despite not being set")
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 99, "number": 8, "title": "panic on empty input", "state": "open"}`))
	})

	opts := NewIssueOptionsBuilder("panic on empty input").
		Body("reproduced with an empty request body").
		Labels("bug", "p1").
		Build()
	issue, err := client.Repository("octocat", "hello-world").Issues().Create(context.Background(), opts)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if issue.Number != 8 {
		t.Errorf("issue.Number = %d, want 8", issue.Number)
	}
}

func TestIssueRef_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/issues/7" {
			t.Errorf("path = %q, want single-issue path", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{
			"id": 1, "number": 7, "title": "panic on empty input",
			"assignee": {"login": "octocat"},
			"milestone": {"number": 2, "title": "v1.1"}
		}`))
	})

	issue, err := client.Repository("octocat", "hello-world").Issue(7).Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if issue.Assignee == nil || issue.Assignee.Login != "octocat" {
		t.Errorf("Assignee = %+v, want octocat", issue.Assignee)
	}
	if issue.Milestone == nil || issue.Milestone.Number != 2 {
		t.Errorf("Milestone = %+v, want number 2", issue.Milestone)
	}
}

func TestIssueRef_Edit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %q, want PATCH", r.Method)
		}
		var body IssueOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.State == nil || *body.State != "closed" {
			t.Errorf("body.State = %v, want closed", body.State)
		}
		_, _ = w.Write([]byte(`{"id": 1, "number": 7, "state": "closed"}`))
	})

	opts := NewIssueOptionsBuilder("panic on empty input").State(IssueStateClosed).Build()
	issue, err := client.Repository("octocat", "hello-world").Issue(7).Edit(context.Background(), opts)
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if issue.State != "closed" {
		t.Errorf("issue.State = %q, want closed", issue.State)
	}
}

func TestIssueRef_Labels(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/issues/7/labels" {
			t.Errorf("path = %q, want issue labels path", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"name": "bug", "color": "fc2929"}]`))
	})

	labels, err := client.Repository("octocat", "hello-world").Issue(7).Labels(context.Background())
	if err != nil {
		t.Fatalf("Labels() error = %v", err)
	}
	if len(labels) != 1 || labels[0].Name != "bug" {
		t.Errorf("labels = %+v, want one label named bug", labels)
	}
}
