package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/gohub/github"
)

func newReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List and create repositories",
	}

	cmd.AddCommand(newReposListCmd())
	cmd.AddCommand(newReposCreateCmd())
	return cmd
}

func newReposListCmd() *cobra.Command {
	var (
		org        string
		user       string
		visibility string
		sort       string
		desc       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List repositories",
		Long: `List the authenticated user's repositories. With --user or --org the
listing switches to that user's or organization's repositories instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			var repos []github.Repo
			switch {
			case org != "":
				repos, err = client.OrganizationRepositories(org).List(cmd.Context(), nil)
			case user != "":
				repos, err = client.UserRepositories(user).List(cmd.Context(), nil)
			default:
				opts, buildErr := buildRepoListOptions(visibility, sort, desc)
				if buildErr != nil {
					return buildErr
				}
				repos, err = client.Repositories().List(cmd.Context(), opts)
			}
			if err != nil {
				return fmt.Errorf("failed to list repositories: %w", err)
			}

			for _, repo := range repos {
				marker := " "
				if repo.Private {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-40s %s\n", marker, repo.FullName, repo.Description)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&org, "org", "", "list an organization's repositories")
	cmd.Flags().StringVar(&user, "user", "", "list another user's repositories")
	cmd.Flags().StringVar(&visibility, "visibility", "", "filter by visibility (all, public, private)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort field (created, updated, pushed, full_name)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func newReposCreateCmd() *cobra.Command {
	var (
		description string
		private     bool
		autoInit    bool
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a repository for the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			builder := github.NewRepoOptionsBuilder(args[0]).
				Private(private).
				AutoInit(autoInit)
			if description != "" {
				builder.Description(description)
			}

			repo, err := client.Repositories().Create(cmd.Context(), builder.Build())
			if err != nil {
				return fmt.Errorf("failed to create repository: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", repo.HTMLURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "repository description")
	cmd.Flags().BoolVar(&private, "private", false, "create a private repository")
	cmd.Flags().BoolVar(&autoInit, "auto-init", false, "create an initial commit with an empty README")
	return cmd
}

func buildRepoListOptions(visibility, sort string, desc bool) (*github.RepoListOptions, error) {
	builder := github.NewRepoListOptionsBuilder()
	set := false

	switch visibility {
	case "":
	case "all":
		builder.Visibility(github.VisibilityAll)
		set = true
	case "public":
		builder.Visibility(github.VisibilityPublic)
		set = true
	case "private":
		builder.Visibility(github.VisibilityPrivate)
		set = true
	default:
		return nil, fmt.Errorf("unknown visibility %q", visibility)
	}

	switch sort {
	case "":
	case "created":
		builder.Sort(github.RepoSortCreated)
		set = true
	case "updated":
		builder.Sort(github.RepoSortUpdated)
		set = true
	case "pushed":
		builder.Sort(github.RepoSortPushed)
		set = true
	case "full_name":
		builder.Sort(github.RepoSortFullName)
		set = true
	default:
		return nil, fmt.Errorf("unknown sort field %q", sort)
	}

	if desc {
		builder.Desc()
		set = true
	}

	if !set {
		return nil, nil
	}
	return builder.Build(), nil
}
