package store_test

import (
	"context"
	"errors"
	"testing"

	"splice/internal/editlist"
	"splice/internal/editops"
	"splice/internal/segments"
	"splice/internal/store"
	"splice/internal/testsupport"
)

func sampleDocument(episode int) editops.Document {
	return editops.Document{
		DatasetID:      "pick-place-v2",
		EpisodeIndex:   episode,
		OriginalLength: 480,
		RemovedFrames:  []int{2, 4, 9},
		InsertedFrames: []editlist.Insertion{{Anchor: 6, Blend: 0.5}},
		Subtasks: []segments.Segment{
			{ID: "s1", Label: "approach", Start: 0, End: 40, Source: segments.SourceManual},
		},
	}
}

func TestSaveAndGetDocument(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	doc := sampleDocument(7)
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	loaded, err := st.GetDocument(ctx, doc.DatasetID, doc.EpisodeIndex)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if loaded.OriginalLength != doc.OriginalLength || len(loaded.RemovedFrames) != 3 {
		t.Fatalf("unexpected loaded document: %+v", loaded)
	}
	if len(loaded.Subtasks) != 1 || loaded.Subtasks[0].Label != "approach" {
		t.Fatalf("unexpected subtasks: %+v", loaded.Subtasks)
	}
}

func TestSaveDocumentUpserts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	doc := sampleDocument(7)
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	doc.RemovedFrames = []int{1}
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	loaded, err := st.GetDocument(ctx, doc.DatasetID, doc.EpisodeIndex)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if len(loaded.RemovedFrames) != 1 || loaded.RemovedFrames[0] != 1 {
		t.Fatalf("expected upserted removed frames, got %v", loaded.RemovedFrames)
	}
}

func TestSaveDocumentRequiresDatasetID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if err := st.SaveDocument(context.Background(), editops.Document{EpisodeIndex: 1}); err == nil {
		t.Fatal("expected error for missing dataset id")
	}
}

func TestGetDocumentNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	_, err := st.GetDocument(context.Background(), "nope", 0)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListDocumentsOrdersByEpisode(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	for _, episode := range []int{5, 1, 3} {
		if err := st.SaveDocument(ctx, sampleDocument(episode)); err != nil {
			t.Fatalf("SaveDocument(%d) failed: %v", episode, err)
		}
	}

	summaries, err := st.ListDocuments(ctx, "pick-place-v2")
	if err != nil {
		t.Fatalf("ListDocuments failed: %v", err)
	}
	if len(summaries) != 3 {
		t.Fatalf("expected 3 summaries, got %d", len(summaries))
	}
	for i, want := range []int{1, 3, 5} {
		if summaries[i].EpisodeIndex != want {
			t.Fatalf("summary[%d].EpisodeIndex = %d, want %d", i, summaries[i].EpisodeIndex, want)
		}
	}
	if summaries[0].RemovedCount != 3 || summaries[0].InsertedCount != 1 || summaries[0].SegmentCount != 1 {
		t.Fatalf("unexpected denormalized counts: %+v", summaries[0])
	}
}

func TestDeleteDocument(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	doc := sampleDocument(2)
	if err := st.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}
	if err := st.DeleteDocument(ctx, doc.DatasetID, doc.EpisodeIndex); err != nil {
		t.Fatalf("DeleteDocument failed: %v", err)
	}
	if _, err := st.GetDocument(ctx, doc.DatasetID, doc.EpisodeIndex); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting again is not an error.
	if err := st.DeleteDocument(ctx, doc.DatasetID, doc.EpisodeIndex); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestSessionLockExcludesSecondHolder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	lock, err := st.AcquireSession("pick-place-v2", 4)
	if err != nil {
		t.Fatalf("AcquireSession failed: %v", err)
	}

	if _, err := st.AcquireSession("pick-place-v2", 4); !errors.Is(err, store.ErrSessionLocked) {
		t.Fatalf("expected ErrSessionLocked, got %v", err)
	}

	// A different episode locks independently.
	other, err := st.AcquireSession("pick-place-v2", 5)
	if err != nil {
		t.Fatalf("AcquireSession for other episode failed: %v", err)
	}
	if err := other.Release(); err != nil {
		t.Fatalf("release other: %v", err)
	}

	if err := lock.Release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	relocked, err := st.AcquireSession("pick-place-v2", 4)
	if err != nil {
		t.Fatalf("re-acquire after release failed: %v", err)
	}
	if err := relocked.Release(); err != nil {
		t.Fatalf("release relocked: %v", err)
	}
}
