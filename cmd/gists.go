package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teemow/gohub/github"
)

func newGistsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gists",
		Short: "List, create, and delete gists",
	}

	cmd.AddCommand(newGistsListCmd())
	cmd.AddCommand(newGistsCreateCmd())
	cmd.AddCommand(newGistsDeleteCmd())
	return cmd
}

func newGistsListCmd() *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the authenticated user's gists",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			var gists []github.Gist
			if user != "" {
				gists, err = client.UserGists(user).List(cmd.Context(), nil)
			} else {
				gists, err = client.Gists().List(cmd.Context(), nil)
			}
			if err != nil {
				return fmt.Errorf("failed to list gists: %w", err)
			}

			for _, gist := range gists {
				visibility := "secret"
				if gist.Public {
					visibility = "public"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-6s %d files  %s\n",
					gist.ID, visibility, len(gist.Files), gist.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "list another user's public gists")
	return cmd
}

func newGistsCreateCmd() *cobra.Command {
	var (
		description string
		public      bool
	)

	cmd := &cobra.Command{
		Use:   "create <file>...",
		Short: "Create a gist from local files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := github.NewGistOptionsBuilder().Public(public)
			if description != "" {
				builder.Description(description)
			}
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", path, err)
				}
				builder.File(filepath.Base(path), string(content))
			}

			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			gist, err := client.Gists().Create(cmd.Context(), builder.Build())
			if err != nil {
				return fmt.Errorf("failed to create gist: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", gist.HTMLURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "gist description")
	cmd.Flags().BoolVar(&public, "public", false, "make the gist publicly listed")
	return cmd
}

func newGistsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a gist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			if err := client.Gists().Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete gist %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}
