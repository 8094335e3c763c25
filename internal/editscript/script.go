package editscript

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"splice/internal/editlist"
	"splice/internal/segments"
	"splice/internal/session"
)

// Script is one parsed batch edit document.
type Script struct {
	Episodes []Episode `yaml:"episodes"`
}

// Episode lists the operations to replay onto one episode's session, in
// order: clear, removals, restores, insertions, segments.
type Episode struct {
	Episode        int  `yaml:"episode"`
	OriginalLength int  `yaml:"original_length,omitempty"`
	Clear          bool `yaml:"clear,omitempty"`

	Remove   []RemoveOp  `yaml:"remove,omitempty"`
	Restore  []RangeOp   `yaml:"restore,omitempty"`
	Insert   []InsertOp  `yaml:"insert,omitempty"`
	Segments []SegmentOp `yaml:"segments,omitempty"`
}

// RemoveOp marks frames removed. Exactly one of Frame, Range, or Every must
// be set.
type RemoveOp struct {
	Frame *int     `yaml:"frame,omitempty"`
	Range *RangeOp `yaml:"range,omitempty"`
	Every *EveryOp `yaml:"every,omitempty"`
}

// RangeOp is an inclusive original-index range.
type RangeOp struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// EveryOp marks every step-th frame in an inclusive range.
type EveryOp struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
	Step  int `yaml:"step"`
}

// InsertOp inserts a synthetic frame after an anchor.
type InsertOp struct {
	After int      `yaml:"after"`
	Blend *float64 `yaml:"blend,omitempty"`
}

// SegmentOp adds one labeled segment in effective-index space.
type SegmentOp struct {
	Label string `yaml:"label"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Color string `yaml:"color,omitempty"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read edit script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a script, rejecting unknown fields.
func Parse(data []byte) (*Script, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var script Script
	if err := decoder.Decode(&script); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("edit script is empty")
		}
		return nil, fmt.Errorf("parse edit script: %w", err)
	}
	if err := script.validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

func (s *Script) validate() error {
	if len(s.Episodes) == 0 {
		return errors.New("edit script lists no episodes")
	}
	seen := make(map[int]struct{}, len(s.Episodes))
	for _, ep := range s.Episodes {
		if ep.Episode < 0 {
			return fmt.Errorf("episode %d: index must not be negative", ep.Episode)
		}
		if _, dup := seen[ep.Episode]; dup {
			return fmt.Errorf("episode %d listed twice", ep.Episode)
		}
		seen[ep.Episode] = struct{}{}
		for i, op := range ep.Remove {
			if err := op.validate(); err != nil {
				return fmt.Errorf("episode %d remove[%d]: %w", ep.Episode, i, err)
			}
		}
		for i, op := range ep.Insert {
			if op.Blend != nil && (*op.Blend < 0 || *op.Blend > 1) {
				return fmt.Errorf("episode %d insert[%d]: blend %v outside [0, 1]", ep.Episode, i, *op.Blend)
			}
		}
	}
	return nil
}

func (op RemoveOp) validate() error {
	count := 0
	if op.Frame != nil {
		count++
	}
	if op.Range != nil {
		count++
	}
	if op.Every != nil {
		count++
	}
	if count != 1 {
		return errors.New("exactly one of frame, range, or every must be set")
	}
	if op.Every != nil && op.Every.Step < 1 {
		return fmt.Errorf("step %d must be at least 1", op.Every.Step)
	}
	return nil
}

// Apply replays one episode's operations onto its session. The session must
// already be initialized or loaded; Apply never saves.
func Apply(sess *session.Session, ep Episode) error {
	if sess == nil || !sess.Initialized() {
		return errors.New("apply requires an initialized session")
	}

	if ep.Clear {
		sess.ClearRemovals()
		sess.ClearInsertions()
	}
	for _, op := range ep.Remove {
		switch {
		case op.Frame != nil:
			if !sessionHasRemoval(sess, *op.Frame) {
				sess.ToggleRemoval(*op.Frame)
			}
		case op.Range != nil:
			sess.AddRemovalRange(op.Range.Start, op.Range.End)
		case op.Every != nil:
			sess.AddRemovalEveryNth(op.Every.Start, op.Every.End, op.Every.Step)
		}
	}
	for _, op := range ep.Restore {
		sess.RestoreRange(op.Start, op.End)
	}
	for _, op := range ep.Insert {
		blend := editlist.DefaultBlend
		if op.Blend != nil {
			blend = *op.Blend
		}
		sess.Insert(op.After, blend)
	}
	for _, op := range ep.Segments {
		sess.AddSegment(op.Label, op.Start, op.End, op.Color, segments.SourceManual)
	}
	return nil
}

// sessionHasRemoval checks the session's edit snapshot so scripted single
// frame removals are idempotent instead of toggling.
func sessionHasRemoval(sess *session.Session, index int) bool {
	return sess.Edits().IsRemoved(index)
}
