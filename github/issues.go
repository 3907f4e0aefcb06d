package github

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// IssueState filters issues by open/closed state.
type IssueState int

const (
	IssueStateOpen IssueState = iota
	IssueStateClosed
	IssueStateAll
)

func (s IssueState) String() string {
	switch s {
	case IssueStateClosed:
		return "closed"
	case IssueStateAll:
		return "all"
	default:
		return "open"
	}
}

// IssueSort selects the field issue listings are ordered by.
type IssueSort int

const (
	IssueSortCreated IssueSort = iota
	IssueSortUpdated
	IssueSortComments
)

func (s IssueSort) String() string {
	switch s {
	case IssueSortUpdated:
		return "updated"
	case IssueSortComments:
		return "comments"
	default:
		return "created"
	}
}

// IssueFilter selects which issues are listed relative to the
// authenticated user.
type IssueFilter int

const (
	IssueFilterAssigned IssueFilter = iota
	IssueFilterCreated
	IssueFilterMentioned
	IssueFilterSubscribed
	IssueFilterAll
)

func (f IssueFilter) String() string {
	switch f {
	case IssueFilterCreated:
		return "created"
	case IssueFilterMentioned:
		return "mentioned"
	case IssueFilterSubscribed:
		return "subscribed"
	case IssueFilterAll:
		return "all"
	default:
		return "assigned"
	}
}

// Issues provides access to a repository's issues.
type Issues struct {
	client *Client
	owner  string
	repo   string
}

func (i *Issues) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/issues%s", i.owner, i.repo, more)
}

// List lists the repository's issues.
func (i *Issues) List(ctx context.Context, opts *IssueListOptions) ([]Issue, error) {
	path := i.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var issues []Issue
	err := i.client.Get(ctx, path, &issues)
	return issues, err
}

// Create opens a new issue.
func (i *Issues) Create(ctx context.Context, opts *IssueOptions) (*Issue, error) {
	var issue Issue
	if err := i.client.Post(ctx, i.path(""), opts, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// IssueRef provides access to a single issue by number.
type IssueRef struct {
	client *Client
	owner  string
	repo   string
	number int
}

func (i *IssueRef) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/issues/%d%s", i.owner, i.repo, i.number, more)
}

// Get fetches the issue.
func (i *IssueRef) Get(ctx context.Context) (*Issue, error) {
	var issue Issue
	if err := i.client.Get(ctx, i.path(""), &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Edit updates the issue.
func (i *IssueRef) Edit(ctx context.Context, opts *IssueOptions) (*Issue, error) {
	var issue Issue
	if err := i.client.Patch(ctx, i.path(""), opts, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Labels lists the labels attached to the issue.
func (i *IssueRef) Labels(ctx context.Context) ([]Label, error) {
	var labels []Label
	err := i.client.Get(ctx, i.path("/labels"), &labels)
	return labels, err
}

// Issue represents a GitHub issue.
type Issue struct {
	ID          int64      `json:"id"`
	Number      int        `json:"number"`
	State       string     `json:"state"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	User        User       `json:"user"`
	Labels      []Label    `json:"labels"`
	Assignee    *User      `json:"assignee"`
	Milestone   *Milestone `json:"milestone"`
	Comments    int        `json:"comments"`
	Locked      bool       `json:"locked"`
	URL         string     `json:"url"`
	HTMLURL     string     `json:"html_url"`
	LabelsURL   string     `json:"labels_url"`
	CommentsURL string     `json:"comments_url"`
	EventsURL   string     `json:"events_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// Milestone represents an issue milestone.
type Milestone struct {
	ID           int64      `json:"id"`
	Number       int        `json:"number"`
	State        string     `json:"state"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Creator      User       `json:"creator"`
	OpenIssues   int        `json:"open_issues"`
	ClosedIssues int        `json:"closed_issues"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DueOn        *time.Time `json:"due_on"`
}

// IssueOptions is the request body for creating or editing an issue.
// Unset optional fields are omitted from the JSON payload.
type IssueOptions struct {
	Title     string   `json:"title"`
	Body      *string  `json:"body,omitempty"`
	Assignee  *string  `json:"assignee,omitempty"`
	Milestone *int     `json:"milestone,omitempty"`
	Labels    []string `json:"labels,omitempty"`
	State     *string  `json:"state,omitempty"`
}

// IssueOptionsBuilder assembles an IssueOptions value. The title is
// required.
type IssueOptionsBuilder struct {
	opts IssueOptions
}

// NewIssueOptionsBuilder creates a builder for an issue titled title.
func NewIssueOptionsBuilder(title string) *IssueOptionsBuilder {
	return &IssueOptionsBuilder{opts: IssueOptions{Title: title}}
}

// Body sets the issue body.
func (b *IssueOptionsBuilder) Body(body string) *IssueOptionsBuilder {
	b.opts.Body = &body
	return b
}

// Assignee assigns the issue to a user.
func (b *IssueOptionsBuilder) Assignee(assignee string) *IssueOptionsBuilder {
	b.opts.Assignee = &assignee
	return b
}

// Milestone associates the issue with a milestone number.
func (b *IssueOptionsBuilder) Milestone(milestone int) *IssueOptionsBuilder {
	b.opts.Milestone = &milestone
	return b
}

// Labels attaches labels to the issue.
func (b *IssueOptionsBuilder) Labels(labels ...string) *IssueOptionsBuilder {
	b.opts.Labels = labels
	return b
}

// State sets the issue state ("open" or "closed"), used on edit.
func (b *IssueOptionsBuilder) State(state IssueState) *IssueOptionsBuilder {
	s := state.String()
	b.opts.State = &s
	return b
}

// Build snapshots the builder into an IssueOptions value.
func (b *IssueOptionsBuilder) Build() *IssueOptions {
	opts := b.opts
	opts.Labels = append([]string(nil), b.opts.Labels...)
	if len(opts.Labels) == 0 {
		opts.Labels = nil
	}
	return &opts
}

// IssueListOptions holds query parameters for listing issues.
type IssueListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *IssueListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// IssueListOptionsBuilder assembles an IssueListOptions value.
type IssueListOptionsBuilder struct {
	params map[string]string
}

// NewIssueListOptionsBuilder creates an empty builder.
func NewIssueListOptionsBuilder() *IssueListOptionsBuilder {
	return &IssueListOptionsBuilder{params: map[string]string{}}
}

// Filter selects issues relative to the authenticated user.
func (b *IssueListOptionsBuilder) Filter(filter IssueFilter) *IssueListOptionsBuilder {
	b.params["filter"] = filter.String()
	return b
}

// State filters by issue state.
func (b *IssueListOptionsBuilder) State(state IssueState) *IssueListOptionsBuilder {
	b.params["state"] = state.String()
	return b
}

// Labels filters to issues carrying all of the given labels, joined with
// commas in the order given.
func (b *IssueListOptionsBuilder) Labels(labels ...string) *IssueListOptionsBuilder {
	b.params["labels"] = strings.Join(labels, ",")
	return b
}

// Sort selects the sort field.
func (b *IssueListOptionsBuilder) Sort(sort IssueSort) *IssueListOptionsBuilder {
	b.params["sort"] = sort.String()
	return b
}

// Asc sorts ascending.
func (b *IssueListOptionsBuilder) Asc() *IssueListOptionsBuilder {
	return b.Direction(Asc)
}

// Desc sorts descending.
func (b *IssueListOptionsBuilder) Desc() *IssueListOptionsBuilder {
	return b.Direction(Desc)
}

// Direction sets the sort direction.
func (b *IssueListOptionsBuilder) Direction(direction SortDirection) *IssueListOptionsBuilder {
	b.params["direction"] = direction.String()
	return b
}

// Since filters to issues updated at or after the given time.
func (b *IssueListOptionsBuilder) Since(since time.Time) *IssueListOptionsBuilder {
	b.params["since"] = since.UTC().Format(time.RFC3339)
	return b
}

// Build snapshots the builder into an immutable IssueListOptions value.
func (b *IssueListOptionsBuilder) Build() *IssueListOptions {
	return &IssueListOptions{params: snapshotParams(b.params)}
}
