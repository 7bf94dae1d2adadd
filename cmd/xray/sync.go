package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync [URL]",
		Short: "Synchronize repositories",
		Long: `Synchronize the named repository, or every registered repository when
no URL is given. Interrupting a sync is safe: each revision commits
atomically and the next run resumes after the last imported revision.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if len(args) == 0 {
				return client.Sync.SyncAll(ctx)
			}

			repo, err := client.Repositories.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return client.Sync.Sync(ctx, repo)
		},
	}
	return cmd
}
