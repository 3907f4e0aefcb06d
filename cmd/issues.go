package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/gohub/github"
)

func newIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List and create issues",
	}

	cmd.AddCommand(newIssuesListCmd())
	cmd.AddCommand(newIssuesCreateCmd())
	cmd.AddCommand(newIssuesCloseCmd())
	return cmd
}

func newIssuesListCmd() *cobra.Command {
	var (
		state  string
		labels []string
	)

	cmd := &cobra.Command{
		Use:   "list <owner/repo>",
		Short: "List a repository's issues",
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

			opts, err := buildIssueListOptions(state, labels)
			if err != nil {
				return err
			}

			issues, err := client.Repository(owner, repo).Issues().List(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to list issues: %w", err)
			}

			for _, issue := range issues {
				names := make([]string, 0, len(issue.Labels))
				for _, label := range issue.Labels {
					names = append(names, label.Name)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "#%-5d %-8s %s %s\n",
					issue.Number, issue.State, issue.Title, strings.Join(names, ","))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&state, "state", "", "filter by state (open, closed, all)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "filter by label, repeatable")
	return cmd
}

func newIssuesCreateCmd() *cobra.Command {
	var (
		body     string
		assignee string
		labels   []string
	)

	cmd := &cobra.Command{
		Use:   "create <owner/repo> <title>",
		Short: "Open a new issue",
		Args:  cobra.ExactArgs(2),
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

			builder := github.NewIssueOptionsBuilder(args[1])
			if body != "" {
				builder.Body(body)
			}
			if assignee != "" {
				builder.Assignee(assignee)
			}
			if len(labels) > 0 {
				builder.Labels(labels...)
			}

			issue, err := client.Repository(owner, repo).Issues().Create(cmd.Context(), builder.Build())
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "opened #%d %s\n", issue.Number, issue.HTMLURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "issue body")
	cmd.Flags().StringVar(&assignee, "assignee", "", "user to assign")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "label to attach, repeatable")
	return cmd
}

func newIssuesCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close <owner/repo> <number>",
		Short: "Close an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, repo, err := splitRepo(args[0])
			if err != nil {
				return err
			}
			var number int
			if _, err := fmt.Sscanf(args[1], "%d", &number); err != nil {
				return fmt.Errorf("invalid issue number %q", args[1])
			}

			client, shutdown, err := newGitHubClient(cmd.Context())
			if err != nil {
				return err
			}
			defer shutdown()

			issue, err := client.Repository(owner, repo).Issue(number).Get(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to fetch issue #%d: %w", number, err)
			}

			opts := github.NewIssueOptionsBuilder(issue.Title).State(github.IssueStateClosed).Build()
			if _, err := client.Repository(owner, repo).Issue(number).Edit(cmd.Context(), opts); err != nil {
				return fmt.Errorf("failed to close issue #%d: %w", number, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "closed #%d\n", number)
			return nil
		},
	}
}

func buildIssueListOptions(state string, labels []string) (*github.IssueListOptions, error) {
	builder := github.NewIssueListOptionsBuilder()
	set := false

	switch state {
	case "":
	case "open":
		builder.State(github.IssueStateOpen)
		set = true
	case "closed":
		builder.State(github.IssueStateClosed)
		set = true
	case "all":
		builder.State(github.IssueStateAll)
		set = true
	default:
		return nil, fmt.Errorf("unknown issue state %q", state)
	}

	if len(labels) > 0 {
		builder.Labels(labels...)
		set = true
	}

	if !set {
		return nil, nil
	}
	return builder.Build(), nil
}
