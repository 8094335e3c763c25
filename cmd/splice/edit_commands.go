package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"splice/internal/session"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	var lengthFlag int
	var framesFlag string
	var rangeFlag string
	var everyFlag int

	cmd := &cobra.Command{
		Use:   "remove <dataset> <episode>",
		Short: "Mark frames as removed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}
			if framesFlag == "" && rangeFlag == "" {
				return errors.New("pass --frames or --range to select frames")
			}
			if everyFlag != 0 && rangeFlag == "" {
				return errors.New("--every requires --range")
			}

			return ctx.withSession(cmd.Context(), datasetID, episode, lengthFlag, true, func(sess *session.Session) error {
				if framesFlag != "" {
					frames, err := parseFrameList(framesFlag)
					if err != nil {
						return err
					}
					for _, frame := range frames {
						if !sess.Edits().IsRemoved(frame) {
							sess.ToggleRemoval(frame)
						}
					}
				}
				if rangeFlag != "" {
					start, end, err := parseRange(rangeFlag)
					if err != nil {
						return err
					}
					if everyFlag > 0 {
						sess.AddRemovalEveryNth(start, end, everyFlag)
					} else {
						sess.AddRemovalRange(start, end)
					}
				}
				reportEdit(cmd, sess)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&lengthFlag, "length", 0, "Original episode length, required for a fresh session")
	cmd.Flags().StringVar(&framesFlag, "frames", "", "Comma-separated original frame indices")
	cmd.Flags().StringVar(&rangeFlag, "range", "", "Inclusive original-index range, start-end")
	cmd.Flags().IntVar(&everyFlag, "every", 0, "Remove every Nth frame within --range")
	return cmd
}

func newRestoreCommand(ctx *commandContext) *cobra.Command {
	var lengthFlag int
	var rangeFlag string
	var allFlag bool

	cmd := &cobra.Command{
		Use:   "restore <dataset> <episode>",
		Short: "Clear removal marks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}
			if rangeFlag == "" && !allFlag {
				return errors.New("pass --range or --all to select frames")
			}

			return ctx.withSession(cmd.Context(), datasetID, episode, lengthFlag, true, func(sess *session.Session) error {
				if allFlag {
					sess.ClearRemovals()
				} else {
					start, end, err := parseRange(rangeFlag)
					if err != nil {
						return err
					}
					sess.RestoreRange(start, end)
				}
				reportEdit(cmd, sess)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&lengthFlag, "length", 0, "Original episode length, required for a fresh session")
	cmd.Flags().StringVar(&rangeFlag, "range", "", "Inclusive original-index range, start-end")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Clear every removal mark")
	return cmd
}

func newInsertCommand(ctx *commandContext) *cobra.Command {
	var lengthFlag int
	var afterFlag int
	var blendFlag float64
	var dropFlag bool

	cmd := &cobra.Command{
		Use:   "insert <dataset> <episode>",
		Short: "Insert or drop a synthetic frame after an anchor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}
			if afterFlag < 0 {
				return errors.New("--after must name a non-negative original index")
			}
			if blendFlag < 0 || blendFlag > 1 {
				return fmt.Errorf("--blend %v outside [0, 1]", blendFlag)
			}

			return ctx.withSession(cmd.Context(), datasetID, episode, lengthFlag, true, func(sess *session.Session) error {
				if dropFlag {
					sess.RemoveInsertion(afterFlag)
				} else {
					if afterFlag >= sess.OriginalLength()-1 {
						fmt.Fprintf(cmd.ErrOrStderr(),
							"warning: anchor %d has no following original frame; the insertion is recorded but will not appear in the effective timeline\n",
							afterFlag)
					}
					sess.Insert(afterFlag, blendFlag)
				}
				reportEdit(cmd, sess)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&lengthFlag, "length", 0, "Original episode length, required for a fresh session")
	cmd.Flags().IntVar(&afterFlag, "after", -1, "Anchor original index the synthetic frame follows")
	cmd.Flags().Float64Var(&blendFlag, "blend", 0.5, "Interpolation weight in [0, 1]")
	cmd.Flags().BoolVar(&dropFlag, "drop", false, "Drop the insertion at --after instead of adding one")
	_ = cmd.MarkFlagRequired("after")
	return cmd
}

func reportEdit(cmd *cobra.Command, sess *session.Session) {
	fmt.Fprintf(cmd.OutOrStdout(), "episode %d: %d effective frames (%d original)\n",
		sess.EpisodeIndex(), sess.EffectiveLength(), sess.OriginalLength())
	printWarnings(cmd, sess.Warnings())
}
