package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xray4scm/xray/domain/scm"
)

func reposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Manage registered repositories",
	}
	cmd.AddCommand(reposAddCmd())
	cmd.AddCommand(reposListCmd())
	cmd.AddCommand(reposRemoveCmd())
	return cmd
}

func reposAddCmd() *cobra.Command {
	var (
		kind     string
		branches []string
	)

	cmd := &cobra.Command{
		Use:   "add URL",
		Short: "Register a repository for synchronization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			repo, err := client.Repositories.Add(cmd.Context(), scm.Kind(kind), args[0], branches)
			if err != nil {
				return err
			}
			fmt.Printf("registered %s (%s)\n", repo.URL(), repo.Kind())
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(scm.KindGit), "scm kind (git)")
	cmd.Flags().StringSliceVar(&branches, "branch", nil, "branch to synchronize (repeatable)")
	return cmd
}

func reposListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			repos, err := client.Repositories.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, repo := range repos {
				updated := "never"
				if !repo.LastUpdatedAt().IsZero() {
					updated = repo.LastUpdatedAt().Format("2006-01-02 15:04:05")
				}
				fmt.Printf("%s\t%s\tbranches=%v\tupdated=%s\n",
					repo.Kind(), repo.URL(), repo.Branches(), updated)
			}
			return nil
		},
	}
}

func reposRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm URL",
		Short: "Unregister a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			if err := client.Repositories.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", args[0])
			return nil
		},
	}
}

func branchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch",
		Short: "Manage the branches synchronized per repository",
	}
	cmd.AddCommand(branchAddCmd())
	cmd.AddCommand(branchRemoveCmd())
	return cmd
}

func branchAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add URL BRANCH",
		Short: "Add a branch to a repository's sync set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			repo, err := client.Repositories.AddBranch(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s branches=%v\n", repo.URL(), repo.Branches())
			return nil
		},
	}
}

func branchRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm URL BRANCH",
		Short: "Remove a branch from a repository's sync set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			repo, err := client.Repositories.RemoveBranch(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s branches=%v\n", repo.URL(), repo.Branches())
			return nil
		},
	}
}
