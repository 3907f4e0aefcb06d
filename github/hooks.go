package github

import (
	"context"
	"fmt"
	"time"
)

// Hooks provides access to a repository's webhooks.
type Hooks struct {
	client *Client
	owner  string
	repo   string
}

func (h *Hooks) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/hooks%s", h.owner, h.repo, more)
}

// List lists the repository's webhooks.
func (h *Hooks) List(ctx context.Context) ([]Hook, error) {
	var hooks []Hook
	err := h.client.Get(ctx, h.path(""), &hooks)
	return hooks, err
}

// Create installs a new webhook.
func (h *Hooks) Create(ctx context.Context, opts *HookOptions) (*Hook, error) {
	var hook Hook
	if err := h.client.Post(ctx, h.path(""), opts, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// Edit updates an existing webhook by id.
func (h *Hooks) Edit(ctx context.Context, id int64, opts *HookOptions) (*Hook, error) {
	var hook Hook
	if err := h.client.Patch(ctx, h.path(fmt.Sprintf("/%d", id)), opts, &hook); err != nil {
		return nil, err
	}
	return &hook, nil
}

// Delete removes a webhook by id.
func (h *Hooks) Delete(ctx context.Context, id int64) error {
	return h.client.Delete(ctx, h.path(fmt.Sprintf("/%d", id)))
}

// Hook represents a repository webhook.
type Hook struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	URL       string            `json:"url"`
	TestURL   string            `json:"test_url"`
	PingURL   string            `json:"ping_url"`
	Events    []string          `json:"events"`
	Active    bool              `json:"active"`
	Config    map[string]string `json:"config"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// HookOptions is the request body for installing or editing a webhook.
// Unset optional fields are omitted from the JSON payload.
type HookOptions struct {
	Name   string            `json:"name"`
	Config map[string]string `json:"config"`
	Events []string          `json:"events,omitempty"`
	Active *bool             `json:"active,omitempty"`
}

// HookOptionsBuilder assembles a HookOptions value. For API-delivered
// webhooks the name is "web"; the config must carry at least a "url" key.
type HookOptionsBuilder struct {
	opts HookOptions
}

// NewHookOptionsBuilder creates a builder for a hook named name.
func NewHookOptionsBuilder(name string) *HookOptionsBuilder {
	return &HookOptionsBuilder{opts: HookOptions{Name: name, Config: map[string]string{}}}
}

// ConfigEntry sets a single config key, e.g. "url" or "content_type".
func (b *HookOptionsBuilder) ConfigEntry(key, value string) *HookOptionsBuilder {
	b.opts.Config[key] = value
	return b
}

// Events sets the events the hook subscribes to.
func (b *HookOptionsBuilder) Events(events ...string) *HookOptionsBuilder {
	b.opts.Events = events
	return b
}

// Active enables or disables deliveries.
func (b *HookOptionsBuilder) Active(active bool) *HookOptionsBuilder {
	b.opts.Active = &active
	return b
}

// Build snapshots the builder into a HookOptions value.
func (b *HookOptionsBuilder) Build() *HookOptions {
	opts := b.opts
	opts.Config = snapshotParams(b.opts.Config)
	opts.Events = append([]string(nil), b.opts.Events...)
	if len(opts.Events) == 0 {
		opts.Events = nil
	}
	return &opts
}
