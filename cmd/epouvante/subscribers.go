package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/petitemaison/epouvante/internal/newsletter"
)

func subscribersCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "subscribers",
		Short: "List newsletter subscribers",
		Long: `List the subscribers recorded in the configured store, one per line.
Only useful with newsletter.store set to bolt; the memory store is empty
outside a running server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			store, err := newsletter.OpenStore(cfg.Newsletter.Store, cfg.Newsletter.BoltPath)
			if err != nil {
				return err
			}
			defer store.Close()

			subs, err := newsletter.NewService(store, cfg.NewLogger(cmd.ErrOrStderr())).Subscribers(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range subs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.Email, s.SubscribedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
}
