package github

import (
	"context"
	"fmt"
	"time"
)

// Gists provides access to the authenticated user's gists, or to public
// gists when the client is anonymous.
type Gists struct {
	client *Client
}

// Gists returns an accessor for the authenticated user's gists.
func (c *Client) Gists() *Gists {
	return &Gists{client: c}
}

func (g *Gists) path(more string) string {
	return "/gists" + more
}

// List lists the authenticated user's gists.
func (g *Gists) List(ctx context.Context, opts *GistListOptions) ([]Gist, error) {
	path := g.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var gists []Gist
	err := g.client.Get(ctx, path, &gists)
	return gists, err
}

// Get fetches a single gist by id.
func (g *Gists) Get(ctx context.Context, id string) (*Gist, error) {
	var gist Gist
	if err := g.client.Get(ctx, g.path("/"+id), &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Create creates a new gist.
func (g *Gists) Create(ctx context.Context, opts *GistOptions) (*Gist, error) {
	var gist Gist
	if err := g.client.Post(ctx, g.path(""), opts, &gist); err != nil {
		return nil, err
	}
	return &gist, nil
}

// Delete removes a gist by id.
func (g *Gists) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, g.path("/"+id))
}

// UserGists provides access to another user's public gists.
type UserGists struct {
	client *Client
	owner  string
}

// UserGists returns an accessor for the given user's gists.
func (c *Client) UserGists(owner string) *UserGists {
	return &UserGists{client: c, owner: owner}
}

func (g *UserGists) path(more string) string {
	return fmt.Sprintf("/users/%s/gists%s", g.owner, more)
}

// List lists the user's gists.
func (g *UserGists) List(ctx context.Context, opts *GistListOptions) ([]Gist, error) {
	path := g.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var gists []Gist
	err := g.client.Get(ctx, path, &gists)
	return gists, err
}

// Gist represents a GitHub gist.
type Gist struct {
	ID          string              `json:"id"`
	URL         string              `json:"url"`
	HTMLURL     string              `json:"html_url"`
	Description string              `json:"description"`
	Public      bool                `json:"public"`
	Owner       *User               `json:"owner"`
	Files       map[string]GistFile `json:"files"`
	Comments    int                 `json:"comments"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// GistFile represents a single file inside a gist.
type GistFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Language string `json:"language"`
	RawURL   string `json:"raw_url"`
	Size     int64  `json:"size"`
	Content  string `json:"content"`
}

// GistContent carries the content of one file when creating a gist.
type GistContent struct {
	Content string `json:"content"`
}

// GistOptions is the request body for creating a gist. Unset optional
// fields are omitted from the JSON payload.
type GistOptions struct {
	Description *string                `json:"description,omitempty"`
	Public      *bool                  `json:"public,omitempty"`
	Files       map[string]GistContent `json:"files"`
}

// GistOptionsBuilder assembles a GistOptions value. At least one file is
// required by the API.
type GistOptionsBuilder struct {
	opts GistOptions
}

// NewGistOptionsBuilder creates an empty builder.
func NewGistOptionsBuilder() *GistOptionsBuilder {
	return &GistOptionsBuilder{opts: GistOptions{Files: map[string]GistContent{}}}
}

// Description sets the gist description.
func (b *GistOptionsBuilder) Description(description string) *GistOptionsBuilder {
	b.opts.Description = &description
	return b
}

// Public controls whether the gist is publicly listed.
func (b *GistOptionsBuilder) Public(public bool) *GistOptionsBuilder {
	b.opts.Public = &public
	return b
}

// File adds a file with the given name and content, overwriting any file
// previously added under the same name.
func (b *GistOptionsBuilder) File(name, content string) *GistOptionsBuilder {
	b.opts.Files[name] = GistContent{Content: content}
	return b
}

// Build snapshots the builder into a GistOptions value.
func (b *GistOptionsBuilder) Build() *GistOptions {
	opts := b.opts
	files := make(map[string]GistContent, len(b.opts.Files))
	for name, content := range b.opts.Files {
		files[name] = content
	}
	opts.Files = files
	return &opts
}

// GistListOptions holds query parameters for listing gists.
type GistListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *GistListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// GistListOptionsBuilder assembles a GistListOptions value.
type GistListOptionsBuilder struct {
	params map[string]string
}

// NewGistListOptionsBuilder creates an empty builder.
func NewGistListOptionsBuilder() *GistListOptionsBuilder {
	return &GistListOptionsBuilder{params: map[string]string{}}
}

// Since filters to gists updated at or after the given time.
func (b *GistListOptionsBuilder) Since(since time.Time) *GistListOptionsBuilder {
	b.params["since"] = since.UTC().Format(time.RFC3339)
	return b
}

// Build snapshots the builder into an immutable GistListOptions value.
func (b *GistListOptionsBuilder) Build() *GistListOptions {
	return &GistListOptions{params: snapshotParams(b.params)}
}
