// Package cmd implements the command-line interface for gohub.
//
// This package provides the following commands:
//   - repos: list and create repositories
//   - issues: list, create, and close issues
//   - gists: list, create, and delete gists
//   - releases: list a repository's releases
//   - metrics: serve Prometheus metrics for scraping
package cmd
