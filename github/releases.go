package github

import (
	"context"
	"fmt"
	"time"
)

// Releases provides access to a repository's releases.
type Releases struct {
	client *Client
	owner  string
	repo   string
}

func (r *Releases) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s/releases%s", r.owner, r.repo, more)
}

// List lists the repository's releases.
func (r *Releases) List(ctx context.Context) ([]Release, error) {
	var releases []Release
	err := r.client.Get(ctx, r.path(""), &releases)
	return releases, err
}

// Get fetches a single release by id.
func (r *Releases) Get(ctx context.Context, id int64) (*Release, error) {
	var release Release
	if err := r.client.Get(ctx, r.path(fmt.Sprintf("/%d", id)), &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// Create creates a new release.
func (r *Releases) Create(ctx context.Context, opts *ReleaseOptions) (*Release, error) {
	var release Release
	if err := r.client.Post(ctx, r.path(""), opts, &release); err != nil {
		return nil, err
	}
	return &release, nil
}

// Delete removes a release by id. The underlying tag is not deleted.
func (r *Releases) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, r.path(fmt.Sprintf("/%d", id)))
}

// Assets lists the assets attached to a release.
func (r *Releases) Assets(ctx context.Context, id int64) ([]Asset, error) {
	var assets []Asset
	err := r.client.Get(ctx, r.path(fmt.Sprintf("/%d/assets", id)), &assets)
	return assets, err
}

// Release represents a repository release.
type Release struct {
	ID              int64      `json:"id"`
	URL             string     `json:"url"`
	HTMLURL         string     `json:"html_url"`
	UploadURL       string     `json:"upload_url"`
	TagName         string     `json:"tag_name"`
	TargetCommitish string     `json:"target_commitish"`
	Name            string     `json:"name"`
	Body            string     `json:"body"`
	Draft           bool       `json:"draft"`
	Prerelease      bool       `json:"prerelease"`
	Author          User       `json:"author"`
	Assets          []Asset    `json:"assets"`
	CreatedAt       time.Time  `json:"created_at"`
	PublishedAt     *time.Time `json:"published_at"`
}

// Asset represents a file attached to a release.
type Asset struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Label              string    `json:"label"`
	State              string    `json:"state"`
	ContentType        string    `json:"content_type"`
	Size               int64     `json:"size"`
	DownloadCount      int64     `json:"download_count"`
	BrowserDownloadURL string    `json:"browser_download_url"`
	Uploader           User      `json:"uploader"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ReleaseOptions is the request body for creating a release. The tag name
// is required; unset optional fields are omitted from the JSON payload.
type ReleaseOptions struct {
	TagName         string  `json:"tag_name"`
	TargetCommitish *string `json:"target_commitish,omitempty"`
	Name            *string `json:"name,omitempty"`
	Body            *string `json:"body,omitempty"`
	Draft           *bool   `json:"draft,omitempty"`
	Prerelease      *bool   `json:"prerelease,omitempty"`
}

// ReleaseOptionsBuilder assembles a ReleaseOptions value.
type ReleaseOptionsBuilder struct {
	opts ReleaseOptions
}

// NewReleaseOptionsBuilder creates a builder for a release tagged tagName.
func NewReleaseOptionsBuilder(tagName string) *ReleaseOptionsBuilder {
	return &ReleaseOptionsBuilder{opts: ReleaseOptions{TagName: tagName}}
}

// TargetCommitish sets the commitish the tag is created from when the tag
// does not yet exist.
func (b *ReleaseOptionsBuilder) TargetCommitish(commitish string) *ReleaseOptionsBuilder {
	b.opts.TargetCommitish = &commitish
	return b
}

// Name sets the release title.
func (b *ReleaseOptionsBuilder) Name(name string) *ReleaseOptionsBuilder {
	b.opts.Name = &name
	return b
}

// Body sets the release notes.
func (b *ReleaseOptionsBuilder) Body(body string) *ReleaseOptionsBuilder {
	b.opts.Body = &body
	return b
}

// Draft marks the release as an unpublished draft.
func (b *ReleaseOptionsBuilder) Draft(draft bool) *ReleaseOptionsBuilder {
	b.opts.Draft = &draft
	return b
}

// Prerelease marks the release as a prerelease.
func (b *ReleaseOptionsBuilder) Prerelease(prerelease bool) *ReleaseOptionsBuilder {
	b.opts.Prerelease = &prerelease
	return b
}

// Build snapshots the builder into a ReleaseOptions value.
func (b *ReleaseOptionsBuilder) Build() *ReleaseOptions {
	opts := b.opts
	return &opts
}
