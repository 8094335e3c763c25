package editscript_test

import (
	"reflect"
	"strings"
	"testing"

	"splice/internal/editscript"
	"splice/internal/session"
)

const sampleScript = `
episodes:
  - episode: 3
    original_length: 100
    remove:
      - range: {start: 10, end: 14}
      - every: {start: 0, end: 9, step: 3}
      - frame: 50
    restore:
      - {start: 12, end: 13}
    insert:
      - after: 30
        blend: 0.25
      - after: 60
    segments:
      - label: approach
        start: 0
        end: 20
`

func TestParseSampleScript(t *testing.T) {
	script, err := editscript.Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(script.Episodes) != 1 {
		t.Fatalf("expected one episode, got %d", len(script.Episodes))
	}
	ep := script.Episodes[0]
	if ep.Episode != 3 || ep.OriginalLength != 100 {
		t.Fatalf("unexpected episode header: %+v", ep)
	}
	if len(ep.Remove) != 3 || len(ep.Restore) != 1 || len(ep.Insert) != 2 || len(ep.Segments) != 1 {
		t.Fatalf("unexpected operation counts: %+v", ep)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := editscript.Parse([]byte(`
episodes:
  - episode: 1
    removee:
      - frame: 5
`))
	if err == nil {
		t.Fatal("expected unknown field to fail the parse")
	}
}

func TestParseRejectsEmptyScript(t *testing.T) {
	if _, err := editscript.Parse([]byte("")); err == nil {
		t.Fatal("expected empty script to fail")
	}
	if _, err := editscript.Parse([]byte("episodes: []")); err == nil {
		t.Fatal("expected script with no episodes to fail")
	}
}

func TestParseRejectsAmbiguousRemoveOp(t *testing.T) {
	_, err := editscript.Parse([]byte(`
episodes:
  - episode: 1
    remove:
      - frame: 5
        range: {start: 1, end: 2}
`))
	if err == nil || !strings.Contains(err.Error(), "exactly one") {
		t.Fatalf("expected ambiguous remove op to fail, got %v", err)
	}
}

func TestParseRejectsBadStep(t *testing.T) {
	_, err := editscript.Parse([]byte(`
episodes:
  - episode: 1
    remove:
      - every: {start: 0, end: 10, step: 0}
`))
	if err == nil || !strings.Contains(err.Error(), "step") {
		t.Fatalf("expected step validation error, got %v", err)
	}
}

func TestParseRejectsDuplicateEpisodes(t *testing.T) {
	_, err := editscript.Parse([]byte(`
episodes:
  - episode: 1
  - episode: 1
`))
	if err == nil || !strings.Contains(err.Error(), "twice") {
		t.Fatalf("expected duplicate episode error, got %v", err)
	}
}

func TestParseRejectsBlendOutOfRange(t *testing.T) {
	_, err := editscript.Parse([]byte(`
episodes:
  - episode: 1
    insert:
      - after: 5
        blend: 1.5
`))
	if err == nil || !strings.Contains(err.Error(), "blend") {
		t.Fatalf("expected blend validation error, got %v", err)
	}
}

func TestApplyReplaysOperations(t *testing.T) {
	script, err := editscript.Parse([]byte(sampleScript))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	sess := session.New()
	sess.Initialize("pick-place-v2", 3, 100)
	if err := editscript.Apply(sess, script.Episodes[0]); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	// range 10-14 minus restored 12-13, every 3rd of 0-9, plus frame 50.
	want := []int{0, 3, 6, 9, 10, 11, 14, 50}
	if got := sess.Edits().RemovedIndices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("removed = %v, want %v", got, want)
	}

	edits := sess.Edits()
	ins, ok := edits.InsertionAt(30)
	if !ok || ins.Blend != 0.25 {
		t.Fatalf("insertion at 30 = %+v (ok=%v), want blend 0.25", ins, ok)
	}
	if ins, ok := edits.InsertionAt(60); !ok || ins.Blend != 0.5 {
		t.Fatalf("insertion at 60 = %+v (ok=%v), want default blend", ins, ok)
	}

	segs := sess.Segments()
	if len(segs) != 1 || segs[0].Label != "approach" {
		t.Fatalf("unexpected segments: %+v", segs)
	}
	if !sess.Dirty() {
		t.Fatal("expected session to be dirty after apply")
	}
}

func TestApplySingleFrameRemovalIsIdempotent(t *testing.T) {
	sess := session.New()
	sess.Initialize("d", 0, 20)

	frame := 5
	ep := editscript.Episode{Episode: 0, Remove: []editscript.RemoveOp{{Frame: &frame}}}
	if err := editscript.Apply(sess, ep); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if err := editscript.Apply(sess, ep); err != nil {
		t.Fatalf("second apply failed: %v", err)
	}
	if !sess.Edits().IsRemoved(5) {
		t.Fatal("frame 5 must stay removed after replaying the script")
	}
}

func TestApplyClearResetsEdits(t *testing.T) {
	sess := session.New()
	sess.Initialize("d", 0, 20)
	sess.AddRemovalRange(0, 5)
	sess.Insert(8, 0.5)

	if err := editscript.Apply(sess, editscript.Episode{Episode: 0, Clear: true}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !sess.Edits().Empty() {
		t.Fatal("expected clear to drop all edits")
	}
}

func TestApplyRequiresInitializedSession(t *testing.T) {
	if err := editscript.Apply(session.New(), editscript.Episode{}); err == nil {
		t.Fatal("expected error for uninitialized session")
	}
}
