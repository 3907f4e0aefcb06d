package github

import (
	"context"
	"fmt"
	"time"
)

// PullSort selects the field pull request listings are ordered by.
type PullSort int

const (
	PullSortCreated PullSort = iota
	PullSortUpdated
	PullSortPopularity
	PullSortLongRunning
)

func (s PullSort) String() string {
	switch s {
	case PullSortUpdated:
		return "updated"
	case PullSortPopularity:
		return "popularity"
	case PullSortLongRunning:
		return "long-running"
	default:
		return "created"
	}
}

// PullRequests provides access to a repository's pull requests.
type PullRequests struct {
	client *Client
	owner  string
	repo   string
}

func (p *PullRequests) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/pulls%s", p.owner, p.repo, more)
}

// List lists the repository's pull requests.
func (p *PullRequests) List(ctx context.Context, opts *PullListOptions) ([]PullRequest, error) {
	path := p.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var pulls []PullRequest
	err := p.client.Get(ctx, path, &pulls)
	return pulls, err
}

// Get fetches a single pull request by number.
func (p *PullRequests) Get(ctx context.Context, number int) (*PullRequest, error) {
	var pull PullRequest
	if err := p.client.Get(ctx, p.path(fmt.Sprintf("/%d", number)), &pull); err != nil {
		return nil, err
	}
	return &pull, nil
}

// Edit updates a pull request by number.
func (p *PullRequests) Edit(ctx context.Context, number int, opts *PullEditOptions) (*PullRequest, error) {
	var pull PullRequest
	if err := p.client.Patch(ctx, p.path(fmt.Sprintf("/%d", number)), opts, &pull); err != nil {
		return nil, err
	}
	return &pull, nil
}

// PullRequest represents a GitHub pull request.
type PullRequest struct {
	ID             int64      `json:"id"`
	Number         int        `json:"number"`
	State          string     `json:"state"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	User           User       `json:"user"`
	URL            string     `json:"url"`
	HTMLURL        string     `json:"html_url"`
	DiffURL        string     `json:"diff_url"`
	PatchURL       string     `json:"patch_url"`
	MergeCommitSHA string     `json:"merge_commit_sha"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	ClosedAt       *time.Time `json:"closed_at"`
	MergedAt       *time.Time `json:"merged_at"`
}

// PullEditOptions is the request body for editing a pull request. Unset
// fields are omitted from the JSON payload.
type PullEditOptions struct {
	Title *string `json:"title,omitempty"`
	Body  *string `json:"body,omitempty"`
	State *string `json:"state,omitempty"`
	Base  *string `json:"base,omitempty"`
}

// PullEditOptionsBuilder assembles a PullEditOptions value.
type PullEditOptionsBuilder struct {
	opts PullEditOptions
}

// NewPullEditOptionsBuilder creates an empty builder.
func NewPullEditOptionsBuilder() *PullEditOptionsBuilder {
	return &PullEditOptionsBuilder{}
}

// Title sets a new pull request title.
func (b *PullEditOptionsBuilder) Title(title string) *PullEditOptionsBuilder {
	b.opts.Title = &title
	return b
}

// Body sets a new pull request body.
func (b *PullEditOptionsBuilder) Body(body string) *PullEditOptionsBuilder {
	b.opts.Body = &body
	return b
}

// State sets the pull request state ("open" or "closed").
func (b *PullEditOptionsBuilder) State(state IssueState) *PullEditOptionsBuilder {
	s := state.String()
	b.opts.State = &s
	return b
}

// Base changes the branch the pull request targets.
func (b *PullEditOptionsBuilder) Base(base string) *PullEditOptionsBuilder {
	b.opts.Base = &base
	return b
}

// Build snapshots the builder into a PullEditOptions value.
func (b *PullEditOptionsBuilder) Build() *PullEditOptions {
	opts := b.opts
	return &opts
}

// PullListOptions holds query parameters for listing pull requests.
type PullListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *PullListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// PullListOptionsBuilder assembles a PullListOptions value.
type PullListOptionsBuilder struct {
	params map[string]string
}

// NewPullListOptionsBuilder creates an empty builder.
func NewPullListOptionsBuilder() *PullListOptionsBuilder {
	return &PullListOptionsBuilder{params: map[string]string{}}
}

// State filters by pull request state.
func (b *PullListOptionsBuilder) State(state IssueState) *PullListOptionsBuilder {
	b.params["state"] = state.String()
	return b
}

// Head filters by head user and branch, e.g. "octocat:new-feature".
func (b *PullListOptionsBuilder) Head(head string) *PullListOptionsBuilder {
	b.params["head"] = head
	return b
}

// Base filters by base branch name.
func (b *PullListOptionsBuilder) Base(base string) *PullListOptionsBuilder {
	b.params["base"] = base
	return b
}

// Sort selects the sort field.
func (b *PullListOptionsBuilder) Sort(sort PullSort) *PullListOptionsBuilder {
	b.params["sort"] = sort.String()
	return b
}

// Asc sorts ascending.
func (b *PullListOptionsBuilder) Asc() *PullListOptionsBuilder {
	return b.Direction(Asc)
}

// Desc sorts descending.
func (b *PullListOptionsBuilder) Desc() *PullListOptionsBuilder {
	return b.Direction(Desc)
}

// Direction sets the sort direction.
func (b *PullListOptionsBuilder) Direction(direction SortDirection) *PullListOptionsBuilder {
	b.params["direction"] = direction.String()
	return b
}

// Build snapshots the builder into an immutable PullListOptions value.
func (b *PullListOptionsBuilder) Build() *PullListOptions {
	return &PullListOptions{params: snapshotParams(b.params)}
}
