package github

import (
	"context"
	"fmt"
	"time"
)

// Visibility filters repository listings by who can see the repository.
type Visibility int

const (
	VisibilityAll Visibility = iota
	VisibilityPublic
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityPrivate:
		return "private"
	default:
		return "all"
	}
}

// RepoSort selects the field repository listings are ordered by.
type RepoSort int

const (
	RepoSortCreated RepoSort = iota
	RepoSortUpdated
	RepoSortPushed
	RepoSortFullName
)

func (s RepoSort) String() string {
	switch s {
	case RepoSortUpdated:
		return "updated"
	case RepoSortPushed:
		return "pushed"
	case RepoSortFullName:
		return "full_name"
	default:
		return "created"
	}
}

// Affiliation describes the authenticated user's relationship to a
// repository.
type Affiliation int

const (
	AffiliationOwner Affiliation = iota
	AffiliationCollaborator
	AffiliationOrganizationMember
)

func (a Affiliation) String() string {
	switch a {
	case AffiliationCollaborator:
		return "collaborator"
	case AffiliationOrganizationMember:
		return "organization_member"
	default:
		return "owner"
	}
}

// RepoType filters user repository listings.
type RepoType int

const (
	RepoTypeAll RepoType = iota
	RepoTypeOwner
	RepoTypePublic
	RepoTypePrivate
	RepoTypeMember
)

func (t RepoType) String() string {
	switch t {
	case RepoTypeOwner:
		return "owner"
	case RepoTypePublic:
		return "public"
	case RepoTypePrivate:
		return "private"
	case RepoTypeMember:
		return "member"
	default:
		return "all"
	}
}

// OrgRepoType filters organization repository listings.
type OrgRepoType int

const (
	OrgRepoTypeAll OrgRepoType = iota
	OrgRepoTypePublic
	OrgRepoTypePrivate
	OrgRepoTypeForks
	OrgRepoTypeSources
	OrgRepoTypeMember
)

func (t OrgRepoType) String() string {
	switch t {
	case OrgRepoTypePublic:
		return "public"
	case OrgRepoTypePrivate:
		return "private"
	case OrgRepoTypeForks:
		return "forks"
	case OrgRepoTypeSources:
		return "sources"
	case OrgRepoTypeMember:
		return "member"
	default:
		return "all"
	}
}

// Repositories provides access to the authenticated user's repositories.
type Repositories struct {
	client *Client
}

// Repositories returns an accessor for the authenticated user's
// repositories.
func (c *Client) Repositories() *Repositories {
	return &Repositories{client: c}
}

func (r *Repositories) path(more string) string {
	return "/user/repos" + more
}

// List lists the authenticated user's repositories.
func (r *Repositories) List(ctx context.Context, opts *RepoListOptions) ([]Repo, error) {
	path := r.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var repos []Repo
	err := r.client.Get(ctx, path, &repos)
	return repos, err
}

// Create creates a new repository for the authenticated user.
func (r *Repositories) Create(ctx context.Context, opts *RepoOptions) (*Repo, error) {
	var repo Repo
	if err := r.client.Post(ctx, r.path(""), opts, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// UserRepositories provides access to another user's repositories.
type UserRepositories struct {
	client *Client
	owner  string
}

// UserRepositories returns an accessor for the given user's repositories.
func (c *Client) UserRepositories(owner string) *UserRepositories {
	return &UserRepositories{client: c, owner: owner}
}

func (r *UserRepositories) path(more string) string {
	return fmt.Sprintf("/users/%s/repos%s", r.owner, more)
}

// List lists the user's repositories.
func (r *UserRepositories) List(ctx context.Context, opts *UserRepoListOptions) ([]Repo, error) {
	path := r.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var repos []Repo
	err := r.client.Get(ctx, path, &repos)
	return repos, err
}

// OrganizationRepositories provides access to an organization's
// repositories.
type OrganizationRepositories struct {
	client *Client
	org    string
}

// OrganizationRepositories returns an accessor for the organization's
// repositories.
func (c *Client) OrganizationRepositories(org string) *OrganizationRepositories {
	return &OrganizationRepositories{client: c, org: org}
}

func (r *OrganizationRepositories) path(more string) string {
	return fmt.Sprintf("/orgs/%s/repos%s", r.org, more)
}

// List lists the organization's repositories.
func (r *OrganizationRepositories) List(ctx context.Context, opts *OrgRepoListOptions) ([]Repo, error) {
	path := r.path("")
	if query, ok := opts.Serialize(); ok {
		path += "?" + query
	}
	var repos []Repo
	err := r.client.Get(ctx, path, &repos)
	return repos, err
}

// Repository provides access to a single repository and its sub-resources.
type Repository struct {
	client *Client
	owner  string
	repo   string
}

// Repository returns an accessor for a single repository.
func (c *Client) Repository(owner, repo string) *Repository {
	return &Repository{client: c, owner: owner, repo: repo}
}

func (r *Repository) path(more string) string {
	return fmt.Sprintf("/repos/%s/%s%s", r.owner, r.repo, more)
}

// Get fetches the repository.
func (r *Repository) Get(ctx context.Context) (*Repo, error) {
	var repo Repo
	if err := r.client.Get(ctx, r.path(""), &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// Languages returns the languages the repository is implemented in. Keys
// are language names, values the number of bytes of code in that language.
func (r *Repository) Languages(ctx context.Context) (map[string]int64, error) {
	var languages map[string]int64
	err := r.client.Get(ctx, r.path("/languages"), &languages)
	return languages, err
}

// Hooks returns an accessor for the repository's webhooks.
func (r *Repository) Hooks() *Hooks {
	return &Hooks{client: r.client, owner: r.owner, repo: r.repo}
}

// Deployments returns an accessor for the repository's deployments.
func (r *Repository) Deployments() *Deployments {
	return &Deployments{client: r.client, owner: r.owner, repo: r.repo}
}

// Issues returns an accessor for the repository's issues.
func (r *Repository) Issues() *Issues {
	return &Issues{client: r.client, owner: r.owner, repo: r.repo}
}

// Issue returns an accessor for a single issue by number.
func (r *Repository) Issue(number int) *IssueRef {
	return &IssueRef{client: r.client, owner: r.owner, repo: r.repo, number: number}
}

// Keys returns an accessor for the repository's deploy keys.
func (r *Repository) Keys() *Keys {
	return &Keys{client: r.client, owner: r.owner, repo: r.repo}
}

// Labels returns an accessor for the repository's labels.
func (r *Repository) Labels() *Labels {
	return &Labels{client: r.client, owner: r.owner, repo: r.repo}
}

// Pulls returns an accessor for the repository's pull requests.
func (r *Repository) Pulls() *PullRequests {
	return &PullRequests{client: r.client, owner: r.owner, repo: r.repo}
}

// Releases returns an accessor for the repository's releases.
func (r *Repository) Releases() *Releases {
	return &Releases{client: r.client, owner: r.owner, repo: r.repo}
}

// Statuses returns an accessor for commit statuses on the given ref, which
// may be a SHA, branch name, or tag name.
func (r *Repository) Statuses(ref string) *Statuses {
	return &Statuses{client: r.client, owner: r.owner, repo: r.repo, ref: ref}
}

// Repo represents a GitHub repository.
type Repo struct {
	ID              int64     `json:"id"`
	Owner           User      `json:"owner"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     string    `json:"description"`
	Private         bool      `json:"private"`
	Fork            bool      `json:"fork"`
	URL             string    `json:"url"`
	HTMLURL         string    `json:"html_url"`
	CloneURL        string    `json:"clone_url"`
	GitURL          string    `json:"git_url"`
	SSHURL          string    `json:"ssh_url"`
	SVNURL          string    `json:"svn_url"`
	MirrorURL       string    `json:"mirror_url"`
	Homepage        string    `json:"homepage"`
	Language        string    `json:"language"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	Size            int       `json:"size"`
	DefaultBranch   string    `json:"default_branch"`
	OpenIssuesCount int       `json:"open_issues_count"`
	HasIssues       bool      `json:"has_issues"`
	HasWiki         bool      `json:"has_wiki"`
	HasPages        bool      `json:"has_pages"`
	HasDownloads    bool      `json:"has_downloads"`
	PushedAt        time.Time `json:"pushed_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RepoOptions is the request body for creating a repository. Unset
// optional fields are omitted from the JSON payload rather than sent as
// null.
type RepoOptions struct {
	Name              string  `json:"name"`
	Description       *string `json:"description,omitempty"`
	Homepage          *string `json:"homepage,omitempty"`
	Private           *bool   `json:"private,omitempty"`
	HasIssues         *bool   `json:"has_issues,omitempty"`
	HasWiki           *bool   `json:"has_wiki,omitempty"`
	HasDownloads      *bool   `json:"has_downloads,omitempty"`
	TeamID            *int    `json:"team_id,omitempty"`
	AutoInit          *bool   `json:"auto_init,omitempty"`
	GitignoreTemplate *string `json:"gitignore_template,omitempty"`
	LicenseTemplate   *string `json:"license_template,omitempty"`
}

// RepoOptionsBuilder assembles a RepoOptions value. The repository name is
// required; everything else is optional.
type RepoOptionsBuilder struct {
	opts RepoOptions
}

// NewRepoOptionsBuilder creates a builder for a repository named name.
func NewRepoOptionsBuilder(name string) *RepoOptionsBuilder {
	return &RepoOptionsBuilder{opts: RepoOptions{Name: name}}
}

// Description sets the repository description.
func (b *RepoOptionsBuilder) Description(description string) *RepoOptionsBuilder {
	b.opts.Description = &description
	return b
}

// Homepage sets the repository homepage URL.
func (b *RepoOptionsBuilder) Homepage(homepage string) *RepoOptionsBuilder {
	b.opts.Homepage = &homepage
	return b
}

// Private marks the repository private or public.
func (b *RepoOptionsBuilder) Private(private bool) *RepoOptionsBuilder {
	b.opts.Private = &private
	return b
}

// HasIssues enables or disables the issue tracker.
func (b *RepoOptionsBuilder) HasIssues(hasIssues bool) *RepoOptionsBuilder {
	b.opts.HasIssues = &hasIssues
	return b
}

// HasWiki enables or disables the wiki.
func (b *RepoOptionsBuilder) HasWiki(hasWiki bool) *RepoOptionsBuilder {
	b.opts.HasWiki = &hasWiki
	return b
}

// HasDownloads enables or disables downloads.
func (b *RepoOptionsBuilder) HasDownloads(hasDownloads bool) *RepoOptionsBuilder {
	b.opts.HasDownloads = &hasDownloads
	return b
}

// TeamID grants a team access to the repository (organizations only).
func (b *RepoOptionsBuilder) TeamID(teamID int) *RepoOptionsBuilder {
	b.opts.TeamID = &teamID
	return b
}

// AutoInit creates an initial commit with an empty README.
func (b *RepoOptionsBuilder) AutoInit(autoInit bool) *RepoOptionsBuilder {
	b.opts.AutoInit = &autoInit
	return b
}

// GitignoreTemplate applies a .gitignore template, e.g. "Go".
func (b *RepoOptionsBuilder) GitignoreTemplate(template string) *RepoOptionsBuilder {
	b.opts.GitignoreTemplate = &template
	return b
}

// LicenseTemplate applies a license template, e.g. "mit".
func (b *RepoOptionsBuilder) LicenseTemplate(template string) *RepoOptionsBuilder {
	b.opts.LicenseTemplate = &template
	return b
}

// Build snapshots the builder into a RepoOptions value.
func (b *RepoOptionsBuilder) Build() *RepoOptions {
	opts := b.opts
	return &opts
}

// RepoListOptions holds query parameters for listing the authenticated
// user's repositories.
type RepoListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *RepoListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// RepoListOptionsBuilder assembles a RepoListOptions value.
type RepoListOptionsBuilder struct {
	params map[string]string
}

// NewRepoListOptionsBuilder creates an empty builder.
func NewRepoListOptionsBuilder() *RepoListOptionsBuilder {
	return &RepoListOptionsBuilder{params: map[string]string{}}
}

// Visibility filters by repository visibility.
func (b *RepoListOptionsBuilder) Visibility(visibility Visibility) *RepoListOptionsBuilder {
	b.params["visibility"] = visibility.String()
	return b
}

// Affiliation filters by the caller's affiliations, joined with commas in
// the order given.
func (b *RepoListOptionsBuilder) Affiliation(affiliations ...Affiliation) *RepoListOptionsBuilder {
	b.params["affiliation"] = joinValues(affiliations)
	return b
}

// Type filters by repository type.
func (b *RepoListOptionsBuilder) Type(repoType RepoType) *RepoListOptionsBuilder {
	b.params["type"] = repoType.String()
	return b
}

// Sort selects the sort field.
func (b *RepoListOptionsBuilder) Sort(sort RepoSort) *RepoListOptionsBuilder {
	b.params["sort"] = sort.String()
	return b
}

// Asc sorts ascending.
func (b *RepoListOptionsBuilder) Asc() *RepoListOptionsBuilder {
	return b.Direction(Asc)
}

// Desc sorts descending.
func (b *RepoListOptionsBuilder) Desc() *RepoListOptionsBuilder {
	return b.Direction(Desc)
}

// Direction sets the sort direction.
func (b *RepoListOptionsBuilder) Direction(direction SortDirection) *RepoListOptionsBuilder {
	b.params["direction"] = direction.String()
	return b
}

// Build snapshots the builder into an immutable RepoListOptions value.
func (b *RepoListOptionsBuilder) Build() *RepoListOptions {
	return &RepoListOptions{params: snapshotParams(b.params)}
}

// UserRepoListOptions holds query parameters for listing a user's
// repositories.
type UserRepoListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *UserRepoListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// UserRepoListOptionsBuilder assembles a UserRepoListOptions value.
type UserRepoListOptionsBuilder struct {
	params map[string]string
}

// NewUserRepoListOptionsBuilder creates an empty builder.
func NewUserRepoListOptionsBuilder() *UserRepoListOptionsBuilder {
	return &UserRepoListOptionsBuilder{params: map[string]string{}}
}

// Type filters by repository type.
func (b *UserRepoListOptionsBuilder) Type(repoType RepoType) *UserRepoListOptionsBuilder {
	b.params["type"] = repoType.String()
	return b
}

// Sort selects the sort field.
func (b *UserRepoListOptionsBuilder) Sort(sort RepoSort) *UserRepoListOptionsBuilder {
	b.params["sort"] = sort.String()
	return b
}

// Asc sorts ascending.
func (b *UserRepoListOptionsBuilder) Asc() *UserRepoListOptionsBuilder {
	return b.Direction(Asc)
}

// Desc sorts descending.
func (b *UserRepoListOptionsBuilder) Desc() *UserRepoListOptionsBuilder {
	return b.Direction(Desc)
}

// Direction sets the sort direction.
func (b *UserRepoListOptionsBuilder) Direction(direction SortDirection) *UserRepoListOptionsBuilder {
	b.params["direction"] = direction.String()
	return b
}

// Build snapshots the builder into an immutable UserRepoListOptions value.
func (b *UserRepoListOptionsBuilder) Build() *UserRepoListOptions {
	return &UserRepoListOptions{params: snapshotParams(b.params)}
}

// OrgRepoListOptions holds query parameters for listing an organization's
// repositories.
type OrgRepoListOptions struct {
	params map[string]string
}

// Serialize returns the options as a form-urlencoded query string. The
// second return value is false when no parameters are set.
func (o *OrgRepoListOptions) Serialize() (string, bool) {
	if o == nil {
		return "", false
	}
	return encodeParams(o.params)
}

// OrgRepoListOptionsBuilder assembles an OrgRepoListOptions value.
type OrgRepoListOptionsBuilder struct {
	params map[string]string
}

// NewOrgRepoListOptionsBuilder creates an empty builder.
func NewOrgRepoListOptionsBuilder() *OrgRepoListOptionsBuilder {
	return &OrgRepoListOptionsBuilder{params: map[string]string{}}
}

// Type filters by organization repository type.
func (b *OrgRepoListOptionsBuilder) Type(repoType OrgRepoType) *OrgRepoListOptionsBuilder {
	b.params["type"] = repoType.String()
	return b
}

// Build snapshots the builder into an immutable OrgRepoListOptions value.
func (b *OrgRepoListOptionsBuilder) Build() *OrgRepoListOptions {
	return &OrgRepoListOptions{params: snapshotParams(b.params)}
}
