package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splice/internal/editlist"
	"splice/internal/segments"
	"splice/internal/store"
	"splice/internal/timeline"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <dataset> [episode]",
		Short: "Display stored edits for a dataset or one episode",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return showDataset(cmd, ctx, args[0])
			}
			episode, err := strconv.Atoi(args[1])
			if err != nil || episode < 0 {
				return fmt.Errorf("episode index %q must be a non-negative integer", args[1])
			}
			return showEpisode(cmd, ctx, args[0], episode)
		},
	}
	return cmd
}

func showDataset(cmd *cobra.Command, ctx *commandContext, datasetID string) error {
	return ctx.withStore(func(st *store.Store) error {
		summaries, err := st.ListDocuments(cmd.Context(), datasetID)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "no stored edits for dataset %s\n", datasetID)
			return nil
		}

		rows := make([][]string, 0, len(summaries))
		for _, summary := range summaries {
			rows = append(rows, []string{
				strconv.Itoa(summary.EpisodeIndex),
				strconv.Itoa(summary.OriginalLength),
				strconv.Itoa(summary.RemovedCount),
				strconv.Itoa(summary.InsertedCount),
				strconv.Itoa(summary.SegmentCount),
				summary.UpdatedAt.Local().Format("2006-01-02 15:04"),
			})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable(
			[]string{"Episode", "Frames", "Removed", "Inserted", "Segments", "Updated"},
			rows,
			[]columnAlignment{alignRight, alignRight, alignRight, alignRight, alignRight, alignLeft},
		))
		return nil
	})
}

func showEpisode(cmd *cobra.Command, ctx *commandContext, datasetID string, episode int) error {
	doc, err := ctx.loadDocument(cmd.Context(), datasetID, episode)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			fmt.Fprintf(cmd.OutOrStdout(), "no stored edits for episode %d of %s\n", episode, datasetID)
			return nil
		}
		return err
	}

	set := editlist.NewSet()
	set.Replace(doc.RemovedFrames, doc.InsertedFrames)
	effective := timeline.EffectiveLength(doc.OriginalLength, set)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dataset:          %s\n", doc.DatasetID)
	fmt.Fprintf(out, "episode:          %d\n", doc.EpisodeIndex)
	fmt.Fprintf(out, "original frames:  %d\n", doc.OriginalLength)
	fmt.Fprintf(out, "effective frames: %d\n", effective)
	fmt.Fprintf(out, "removed:          %d\n", len(doc.RemovedFrames))
	fmt.Fprintf(out, "inserted:         %d\n", len(doc.InsertedFrames))
	fmt.Fprintf(out, "trajectory fixes: %d\n", len(doc.TrajectoryAdjustments))

	if len(doc.Subtasks) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, renderSegmentTable(doc.Subtasks))
	}
	if violations := segments.Validate(doc.Subtasks, effective); len(violations) > 0 {
		printWarnings(cmd, violations)
	}
	return nil
}

func renderSegmentTable(segs []segments.Segment) string {
	rows := make([][]string, 0, len(segs))
	for _, seg := range segs {
		rows = append(rows, []string{
			seg.ID,
			displayLabel(seg.Label),
			strconv.Itoa(seg.Start),
			strconv.Itoa(seg.End),
			string(seg.Source),
		})
	}
	return renderTable(
		[]string{"ID", "Label", "Start", "End", "Source"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	)
}
