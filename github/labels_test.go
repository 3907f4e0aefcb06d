package github

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestLabels_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/octocat/hello-world/labels" {
			t.Errorf("path = %q, want labels path", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"name": "bug", "color": "fc2929"}, {"name": "docs", "color": "0052cc"}]`))
	})

	labels, err := client.Repository("octocat", "hello-world").Labels().List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(labels) != 2 || labels[0].Color != "fc2929" {
		t.Fatalf("labels = %+v, want two colored labels", labels)
	}
}

func TestLabels_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body LabelOptions
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body.Name != "needs-triage" || body.Color != "ededed" {
			t.Errorf("body = %+v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"name": "needs-triage", "color": "ededed"}`))
	})

	label, err := client.Repository("octocat", "hello-world").Labels().Create(context.Background(), &LabelOptions{
		Name:  "needs-triage",
		Color: "ededed",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if label.Name != "needs-triage" {
		t.Errorf("label.Name = %q", label.Name)
	}
}

func TestLabels_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q, want DELETE", r.Method)
		}
		if r.URL.Path != "/repos/octocat/hello-world/labels/needs-triage" {
			t.Errorf("path = %q, want label by name", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Repository("octocat", "hello-world").Labels().Delete(context.Background(), "needs-triage"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
