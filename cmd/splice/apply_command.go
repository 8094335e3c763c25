package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"splice/internal/editscript"
	"splice/internal/logging"
	"splice/internal/session"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "apply <script.yaml> <dataset>",
		Short: "Apply a batch edit script across episodes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := editscript.Load(args[0])
			if err != nil {
				return err
			}
			datasetID := args[1]

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			// Sessions are independent per episode, so scripted episodes
			// can run concurrently. Each one takes its own session lock.
			group, groupCtx := errgroup.WithContext(cmd.Context())
			if workersFlag > 0 {
				group.SetLimit(workersFlag)
			}

			for _, ep := range script.Episodes {
				ep := ep
				group.Go(func() error {
					err := ctx.withSession(groupCtx, datasetID, ep.Episode, ep.OriginalLength, true, func(sess *session.Session) error {
						if err := editscript.Apply(sess, ep); err != nil {
							return err
						}
						for _, warning := range sess.Warnings() {
							logger.Warn("segment validation",
								"dataset", datasetID,
								"episode", ep.Episode,
								"violation", warning)
						}
						logger.Info("applied edit script",
							"dataset", datasetID,
							"episode", ep.Episode,
							"effective_length", sess.EffectiveLength())
						return nil
					})
					if err != nil {
						return fmt.Errorf("episode %d: %w", ep.Episode, err)
					}
					return nil
				})
			}

			if err := group.Wait(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied script to %d episode(s)\n", len(script.Episodes))
			return nil
		},
	}

	cmd.Flags().IntVar(&workersFlag, "workers", 4, "Maximum episodes edited concurrently (0 = unlimited)")
	return cmd
}
