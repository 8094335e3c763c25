package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"splice/internal/editlist"
	"splice/internal/timeline"
)

func newMapCommand(ctx *commandContext) *cobra.Command {
	var fromFlag, toFlag int

	cmd := &cobra.Command{
		Use:   "map <dataset> <episode>",
		Short: "Display the effective-to-original frame mapping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			datasetID, episode, err := parseEpisodeArgs(args)
			if err != nil {
				return err
			}

			doc, err := ctx.loadDocument(cmd.Context(), datasetID, episode)
			if err != nil {
				return err
			}

			set := editlist.NewSet()
			set.Replace(doc.RemovedFrames, doc.InsertedFrames)
			effective := timeline.EffectiveLength(doc.OriginalLength, set)

			// Bound the window by the effective length; the translator
			// itself does not validate indices.
			from := fromFlag
			if from < 0 {
				from = 0
			}
			to := toFlag
			if to < 0 || to >= effective {
				to = effective - 1
			}
			if from > to {
				return fmt.Errorf("window %d..%d is empty (effective length %d)", fromFlag, toFlag, effective)
			}

			rows := make([][]string, 0, to-from+1)
			for eff := from; eff <= to; eff++ {
				orig, ok := timeline.ToOriginal(eff, doc.OriginalLength, set)
				if !ok {
					ins, _ := timeline.SyntheticAt(eff, doc.OriginalLength, set)
					rows = append(rows, []string{
						strconv.Itoa(eff),
						"synthetic",
						fmt.Sprintf("blend %.2f between %d and %d", ins.Blend, ins.Anchor, ins.Anchor+1),
					})
					continue
				}
				rows = append(rows, []string{strconv.Itoa(eff), strconv.Itoa(orig), ""})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "effective length %d (original %d)\n", effective, doc.OriginalLength)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Effective", "Original", "Notes"},
				rows,
				[]columnAlignment{alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&fromFlag, "from", 0, "First effective index to display")
	cmd.Flags().IntVar(&toFlag, "to", -1, "Last effective index to display (default: end)")
	return cmd
}
