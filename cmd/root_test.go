package cmd

import (
	"testing"
)

func TestSplitRepo(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{name: "valid", arg: "octocat/hello-world", wantOwner: "octocat", wantRepo: "hello-world"},
		{name: "missing slash", arg: "octocat", wantErr: true},
		{name: "empty owner", arg: "/hello-world", wantErr: true},
		{name: "empty repo", arg: "octocat/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := splitRepo(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitRepo(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if owner != tt.wantOwner || repo != tt.wantRepo {
				t.Errorf("splitRepo(%q) = %q, %q, want %q, %q", tt.arg, owner, repo, tt.wantOwner, tt.wantRepo)
			}
		})
	}
}

func TestBuildRepoListOptions(t *testing.T) {
	opts, err := buildRepoListOptions("", "", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != nil {
		t.Error("no flags set should yield nil options")
	}

	opts, err = buildRepoListOptions("private", "updated", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	query, ok := opts.Serialize()
	if !ok {
		t.Fatal("options with flags set must serialize")
	}
	if query == "" {
		t.Error("serialized query is empty")
	}

	if _, err := buildRepoListOptions("secret", "", false); err == nil {
		t.Error("unknown visibility accepted")
	}
	if _, err := buildRepoListOptions("", "stars", false); err == nil {
		t.Error("unknown sort field accepted")
	}
}

func TestBuildIssueListOptions(t *testing.T) {
	opts, err := buildIssueListOptions("", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts != nil {
		t.Error("no flags set should yield nil options")
	}

	opts, err = buildIssueListOptions("closed", []string{"bug", "p1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := opts.Serialize(); !ok {
		t.Error("options with flags set must serialize")
	}

	if _, err := buildIssueListOptions("done", nil); err == nil {
		t.Error("unknown state accepted")
	}
}
