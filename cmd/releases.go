package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReleasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "releases <owner/repo>",
		Short: "List a repository's releases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}

			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			releases, err := client.Repository(owner, repo).Releases().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list releases: %w", err)
			}

			for _, release := range releases {
				kind := "release"
				switch {
				case release.Draft:
					kind = "draft"
				case release.Prerelease:
					kind = "prerelease"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-10s %s\n", release.TagName, kind, release.Name)
			}
			return nil
		},
	}
}
