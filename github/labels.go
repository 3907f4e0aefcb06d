package github

import (
	"context"
	"fmt"
)

// Labels provides access to a repository's labels.
type Labels struct {
	client *Client
	owner  string
	repo   string
}

func (l *Labels) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/labels%s", l.owner, l.repo, more)
}

// List lists the repository's labels.
func (l *Labels) List(ctx context.Context) ([]Label, error) {
	var labels []Label
	err := l.client.Get(ctx, l.path(""), &labels)
	return labels, err
}

// Create creates a new label.
func (l *Labels) Create(ctx context.Context, opts *LabelOptions) (*Label, error) {
	var label Label
	if err := l.client.Post(ctx, l.path(""), opts, &label); err != nil {
		return nil, err
	}
	return &label, nil
}

// Delete removes a label by name.
func (l *Labels) Delete(ctx context.Context, name string) error {
	return l.client.Delete(ctx, l.path("/"+name))
}

// Label represents an issue label.
type Label struct {
	URL   string `json:"url"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// LabelOptions is the request body for creating a label. Color is a
// six-digit hex code without the leading "#".
type LabelOptions struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
