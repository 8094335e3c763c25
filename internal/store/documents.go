package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"splice/internal/editops"
)

// DocumentSummary describes one stored document without its payload.
type DocumentSummary struct {
	DatasetID      string
	EpisodeIndex   int
	OriginalLength int
	RemovedCount   int
	InsertedCount  int
	SegmentCount   int
	UpdatedAt      time.Time
}

// SaveDocument upserts the document keyed by its dataset and episode
// identity.
func (s *Store) SaveDocument(ctx context.Context, doc editops.Document) error {
	if strings.TrimSpace(doc.DatasetID) == "" {
		return errors.New("document requires a dataset id")
	}

	payload, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO edit_documents (
            dataset_id, episode_index, original_length,
            removed_count, inserted_count, segment_count,
            payload, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT (dataset_id, episode_index) DO UPDATE SET
            original_length = excluded.original_length,
            removed_count = excluded.removed_count,
            inserted_count = excluded.inserted_count,
            segment_count = excluded.segment_count,
            payload = excluded.payload,
            updated_at = excluded.updated_at`,
		doc.DatasetID,
		doc.EpisodeIndex,
		doc.OriginalLength,
		len(doc.RemovedFrames),
		len(doc.InsertedFrames),
		len(doc.Subtasks),
		payload,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// GetDocument loads the document for one episode, or ErrNotFound.
func (s *Store) GetDocument(ctx context.Context, datasetID string, episodeIndex int) (editops.Document, error) {
	var payload string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT payload FROM edit_documents WHERE dataset_id = ? AND episode_index = ?`,
		datasetID,
		episodeIndex,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return editops.Document{}, ErrNotFound
	}
	if err != nil {
		return editops.Document{}, fmt.Errorf("load document: %w", err)
	}

	doc, err := editops.Parse(payload)
	if err != nil {
		return editops.Document{}, fmt.Errorf("parse stored document: %w", err)
	}
	return doc, nil
}

// ListDocuments returns summaries for every stored episode of a dataset,
// ascending by episode index.
func (s *Store) ListDocuments(ctx context.Context, datasetID string) ([]DocumentSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT dataset_id, episode_index, original_length,
                removed_count, inserted_count, segment_count, updated_at
         FROM edit_documents
         WHERE dataset_id = ?
         ORDER BY episode_index ASC`,
		datasetID,
	)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var summaries []DocumentSummary
	for rows.Next() {
		var summary DocumentSummary
		var updatedAt string
		if err := rows.Scan(
			&summary.DatasetID,
			&summary.EpisodeIndex,
			&summary.OriginalLength,
			&summary.RemovedCount,
			&summary.InsertedCount,
			&summary.SegmentCount,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan document summary: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, updatedAt); parseErr == nil {
			summary.UpdatedAt = ts
		}
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return summaries, nil
}

// DeleteDocument removes one episode's document. Deleting an absent document
// is not an error.
func (s *Store) DeleteDocument(ctx context.Context, datasetID string, episodeIndex int) error {
	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM edit_documents WHERE dataset_id = ? AND episode_index = ?`,
		datasetID,
		episodeIndex,
	)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
