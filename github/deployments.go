package github

import (
	"context"
	"fmt"
	"time"
)

// Deployments provides access to a repository's deployments.
type Deployments struct {
	client *Client
	owner  string
	repo   string
}

func (d *Deployments) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/deployments%s", d.owner, d.repo, more)
}

// List lists the repository's deployments.
func (d *Deployments) List(ctx context.Context, opts *DeploymentListOptions) ([]Deployment, error) {
	path := d.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var deployments []Deployment
	err := d.client.Get(ctx, path, &deployments)
	return deployments, err
}

// Create creates a new deployment.
func (d *Deployments) Create(ctx context.Context, opts *DeploymentOptions) (*Deployment, error) {
	var deployment Deployment
	if err := d.client.Post(ctx, d.path(""), opts, &deployment); err != nil {
		return nil, err
	}
	return &deployment, nil
}

// Statuses lists the statuses of a deployment by id.
func (d *Deployments) Statuses(ctx context.Context, id int64) ([]DeploymentStatus, error) {
	var statuses []DeploymentStatus
	err := d.client.Get(ctx, d.path(fmt.Sprintf("/%d/statuses", id)), &statuses)
	return statuses, err
}

// Deployment represents a repository deployment.
type Deployment struct {
	ID            int64     `json:"id"`
	SHA           string    `json:"sha"`
	Ref           string    `json:"ref"`
	Task          string    `json:"task"`
	Environment   string    `json:"environment"`
	Description   string    `json:"description"`
	Creator       User      `json:"creator"`
	URL           string    `json:"url"`
	StatusesURL   string    `json:"statuses_url"`
	RepositoryURL string    `json:"repository_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DeploymentStatus represents the state of a deployment.
type DeploymentStatus struct {
	ID          int64     `json:"id"`
	State       string    `json:"state"`
	Creator     User      `json:"creator"`
	Description string    `json:"description"`
	TargetURL   string    `json:"target_url"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeploymentOptions is the request body for creating a deployment. The ref
// is required; unset optional fields are omitted from the JSON payload.
type DeploymentOptions struct {
	Ref              string   `json:"ref"`
	Task             *string  `json:"task,omitempty"`
	AutoMerge        *bool    `json:"auto_merge,omitempty"`
	RequiredContexts []string `json:"required_contexts,omitempty"`
	Payload          *string  `json:"payload,omitempty"`
	Environment      *string  `json:"environment,omitempty"`
	Description      *string  `json:"description,omitempty"`
}

// DeploymentOptionsBuilder assembles a DeploymentOptions value.
type DeploymentOptionsBuilder struct {
	opts DeploymentOptions
}

// NewDeploymentOptionsBuilder creates a builder for a deployment of ref,
// which may be a branch, tag, or SHA.
func NewDeploymentOptionsBuilder(ref string) *DeploymentOptionsBuilder {
	return &DeploymentOptionsBuilder{opts: DeploymentOptions{Ref: ref}}
}

// Task names the deployment task, e.g. "deploy:migrations".
func (b *DeploymentOptionsBuilder) Task(task string) *DeploymentOptionsBuilder {
	b.opts.Task = &task
	return b
}

// AutoMerge controls merging of the default branch into the ref.
func (b *DeploymentOptionsBuilder) AutoMerge(autoMerge bool) *DeploymentOptionsBuilder {
	b.opts.AutoMerge = &autoMerge
	return b
}

// RequiredContexts limits the status contexts that must pass before
// deploying.
func (b *DeploymentOptionsBuilder) RequiredContexts(contexts ...string) *DeploymentOptionsBuilder {
	b.opts.RequiredContexts = contexts
	return b
}

// Payload attaches extra JSON payload delivered with deployment events.
func (b *DeploymentOptionsBuilder) Payload(payload string) *DeploymentOptionsBuilder {
	b.opts.Payload = &payload
	return b
}

// Environment names the target environment, e.g. "production".
func (b *DeploymentOptionsBuilder) Environment(environment string) *DeploymentOptionsBuilder {
	b.opts.Environment = &environment
	return b
}

// Description sets a short deployment description.
func (b *DeploymentOptionsBuilder) Description(description string) *DeploymentOptionsBuilder {
	b.opts.Description = &description
	return b
}

// Build snapshots the builder into a DeploymentOptions value.
func (b *DeploymentOptionsBuilder) Build() *DeploymentOptions {
	opts := b.opts
	opts.RequiredContexts = append([]string(nil), b.opts.RequiredContexts...)
	if len(opts.RequiredContexts) == 0 {
		opts.RequiredContexts = nil
	}
	return &opts
}

// DeploymentListOptions holds query parameters for listing deployments.
type DeploymentListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *DeploymentListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// DeploymentListOptionsBuilder assembles a DeploymentListOptions value.
type DeploymentListOptionsBuilder struct {
	params map[string]string
}

// NewDeploymentListOptionsBuilder creates an empty builder.
func NewDeploymentListOptionsBuilder() *DeploymentListOptionsBuilder {
	return &DeploymentListOptionsBuilder{params: map[string]string{}}
}

// SHA filters deployments by commit SHA.
func (b *DeploymentListOptionsBuilder) SHA(sha string) *DeploymentListOptionsBuilder {
	b.params["sha"] = sha
	return b
}

// Ref filters deployments by ref.
func (b *DeploymentListOptionsBuilder) Ref(ref string) *DeploymentListOptionsBuilder {
	b.params["ref"] = ref
	return b
}

// Task filters deployments by task name.
func (b *DeploymentListOptionsBuilder) Task(task string) *DeploymentListOptionsBuilder {
	b.params["task"] = task
	return b
}

// Environment filters deployments by environment.
func (b *DeploymentListOptionsBuilder) Environment(environment string) *DeploymentListOptionsBuilder {
	b.params["environment"] = environment
	return b
}

// Build snapshots the builder into an immutable DeploymentListOptions
// value.
func (b *DeploymentListOptionsBuilder) Build() *DeploymentListOptions {
	return &DeploymentListOptions{params: snapshotParams(b.params)}
}
