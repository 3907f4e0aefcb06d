package github

import (
	"context"
	"fmt"
	"time"
)

// StatusState is the outcome a commit status reports.
type StatusState int

const (
	StatusStatePending StatusState = iota
	StatusStateSuccess
	StatusStateError
	StatusStateFailure
)

func (s StatusState) String() string {
	switch s {
	case StatusStateSuccess:
		return "success"
	case StatusStateError:
		return "error"
	case StatusStateFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Statuses provides access to the commit statuses of a single ref.
type Statuses struct {
	client *Client
	owner  string
	repo   string
	ref    string
}

func (s *Statuses) path() string {
	return fmt.Sprintf("/repos/%s/%s/statuses/%s", s.owner, s.repo, s.ref)
}

// List lists the statuses reported for the ref, most recent first.
func (s *Statuses) List(ctx context.Context) ([]Status, error) {
	var statuses []Status
	err := s.client.Get(ctx, s.path(), &statuses)
	return statuses, err
}

// Create reports a new status for the ref.
func (s *Statuses) Create(ctx context.Context, opts *StatusOptions) (*Status, error) {
	var status Status
	if err := s.client.Post(ctx, s.path(), opts, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// Status represents a commit status.
type Status struct {
	ID          int64     `json:"id"`
	State       string    `json:"state"`
	TargetURL   string    `json:"target_url"`
	Description string    `json:"description"`
	Context     string    `json:"context"`
	URL         string    `json:"url"`
	Creator     User      `json:"creator"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusOptions is the request body for creating a commit status. Unset
// optional fields are omitted from the JSON payload.
type StatusOptions struct {
	State       string  `json:"state"`
	TargetURL   *string `json:"target_url,omitempty"`
	Description *string `json:"description,omitempty"`
	Context     *string `json:"context,omitempty"`
}

// StatusOptionsBuilder assembles a StatusOptions value.
type StatusOptionsBuilder struct {
	opts StatusOptions
}

// NewStatusOptionsBuilder creates a builder for a status in the given
// state.
func NewStatusOptionsBuilder(state StatusState) *StatusOptionsBuilder {
	return &StatusOptionsBuilder{opts: StatusOptions{State: state.String()}}
}

// TargetURL links the status to a build or details page.
func (b *StatusOptionsBuilder) TargetURL(targetURL string) *StatusOptionsBuilder {
	b.opts.TargetURL = &targetURL
	return b
}

// Description sets a short status description.
func (b *StatusOptionsBuilder) Description(description string) *StatusOptionsBuilder {
	b.opts.Description = &description
	return b
}

// Context distinguishes this status from other systems reporting on the
// same ref, e.g. "ci/build".
func (b *StatusOptionsBuilder) Context(context string) *StatusOptionsBuilder {
	b.opts.Context = &context
	return b
}

// Build snapshots the builder into a StatusOptions value.
func (b *StatusOptionsBuilder) Build() *StatusOptions {
	opts := b.opts
	return &opts
}
