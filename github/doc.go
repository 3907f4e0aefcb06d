// Package github provides a typed client for the GitHub v3 REST API.
//
// The package is built around three pieces:
//   - Client, the shared HTTP transport that issues requests against
//     api.github.com and decodes JSON responses into typed records
//   - per-resource accessors (Repositories, Issues, Gists, Releases, ...)
//     that know how to build resource paths and delegate to the Client
//   - options builders that accumulate optional query parameters and
//     snapshot them into immutable options values
//
// Every operation is a single request/response round trip. The client adds
// no retries, caching, or pagination on top of what the API returns.
//
// # Example Usage
//
//	client := github.NewClient("my-app/1.0", os.Getenv("GITHUB_TOKEN"))
//
//	opts := github.NewRepoListOptionsBuilder().
//	    Visibility(github.VisibilityPrivate).
//	    Sort(github.RepoSortUpdated).
//	    Desc().
//	    Build()
//
//	repos, err := client.Repositories().List(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Authentication
//
// NewClient wraps the underlying HTTP transport with an oauth2 static
// token source when a token is supplied. An empty token yields an
// unauthenticated client, subject to the API's anonymous rate limits.
package github
