package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"splice/internal/segments"
	"splice/internal/session"
)

func newSegmentsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Manage labeled segments of the effective timeline",
	}
	cmd.AddCommand(newSegmentsListCommand(ctx))
	cmd.AddCommand(newSegmentsAddCommand(ctx))
	cmd.AddCommand(newSegmentsRemoveCommand(ctx))
	return cmd
}

func newSegmentsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <dataset> <episode>",
		Short: "List segments and their validation state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}
			return ctx.withSession(cmd.Context(), datasetID, episode, 0, false, func(sess *session.Session) error {
				segs := sess.Segments()
				if len(segs) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no segments")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderSegmentTable(segs))
				printWarnings(cmd, sess.Warnings())
				return nil
			})
		},
	}
}

func newSegmentsAddCommand(ctx *commandContext) *cobra.Command {
	var lengthFlag int
	var labelFlag string
	var rangeFlag string
	var colorFlag string

	cmd := &cobra.Command{
		Use:   "add <dataset> <episode>",
		Short: "Add a labeled segment in effective-index space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}
			if rangeFlag == "" {
				return errors.New("pass --range to place the segment")
			}
			start, end, err := parseRange(rangeFlag)
			if err != nil {
				return err
			}

			return ctx.withSession(cmd.Context(), datasetID, episode, lengthFlag, true, func(sess *session.Session) error {
				seg := sess.AddSegment(labelFlag, start, end, colorFlag, segments.SourceManual)
				fmt.Fprintf(cmd.OutOrStdout(), "added segment %s [%d, %d]\n", seg.ID, seg.Start, seg.End)
				printWarnings(cmd, sess.Warnings())
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&lengthFlag, "length", 0, "Original episode length, required for a fresh session")
	cmd.Flags().StringVar(&labelFlag, "label", "", "Segment label")
	cmd.Flags().StringVar(&rangeFlag, "range", "", "Inclusive effective-index range, start-end")
	cmd.Flags().StringVar(&colorFlag, "color", "", "Display color hint")
	return cmd
}

func newSegmentsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <dataset> <episode> <segment-id>",
		Short: "Remove a segment by ID",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args[:2])
			if err != nil {
				return err
			}
			segmentID := args[2]

			return ctx.withSession(cmd.Context(), datasetID, episode, 0, true, func(sess *session.Session) error {
				if !sess.RemoveSegment(segmentID) {
					return fmt.Errorf("no segment with id %s", segmentID)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed segment %s\n", segmentID)
				printWarnings(cmd, sess.Warnings())
				return nil
			})
		},
	}
}
