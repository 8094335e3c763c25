package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var labelCaser = cases.Title(language.English)

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// displayLabel renders a segment label for table output; raw labels are
// often snake_case machine tags from the detection pipeline.
func displayLabel(label string) string {
	if label == "" {
		return "(unlabeled)"
	}
	return labelCaser.String(strings.ReplaceAll(label, "_", " "))
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
	}
}

// parseEpisodeArgs extracts the "<dataset> <episode>" positional pair shared
// by most commands.
func parseEpisodeArgs(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, fmt.Errorf("expected <dataset> <episode>, got %d arguments", len(args))
	}
	episode, err := strconv.Atoi(args[1])
	if err != nil || episode < 0 {
		return "", 0, fmt.Errorf("episode index %q must be a non-negative integer", args[1])
	}
	return args[0], episode, nil
}

// parseFrameList parses a comma-separated list of frame indices.
func parseFrameList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	frames := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		frame, err := strconv.Atoi(trimmed)
		if err != nil || frame < 0 {
			return nil, fmt.Errorf("frame index %q must be a non-negative integer", trimmed)
		}
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("frame list %q is empty", raw)
	}
	return frames, nil
}

// parseRange parses "start-end" or "start:end" into an inclusive range.
func parseRange(raw string) (int, int, error) {
	sep := "-"
	if strings.Contains(raw, ":") {
		sep = ":"
	}
	parts := strings.SplitN(raw, sep, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("range %q must look like start%send", raw, sep)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("range start %q must be an integer", parts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("range end %q must be an integer", parts[1])
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("range %q must satisfy 0 <= start <= end", raw)
	}
	return start, end, nil
}
