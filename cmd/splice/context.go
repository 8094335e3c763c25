package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"splice/internal/config"
	"splice/internal/editops"
	"splice/internal/session"
	"splice/internal/store"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) withStore(fn func(*store.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	st, err := store.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}

// withSession runs fn against one episode's session under the store's
// session lock. A stored document is loaded when present; otherwise the
// session is initialized fresh, which requires originalLength > 0. When save
// is set and fn leaves the session dirty, the session is marked saved and
// its document written back.
func (c *commandContext) withSession(ctx context.Context, datasetID string, episodeIndex, originalLength int, save bool, fn func(*session.Session) error) error {
	if strings.TrimSpace(datasetID) == "" {
		return errors.New("dataset id must not be empty")
	}

	return c.withStore(func(st *store.Store) error {
		lock, err := st.AcquireSession(datasetID, episodeIndex)
		if err != nil {
			if errors.Is(err, store.ErrSessionLocked) {
				return fmt.Errorf("episode %d of %s: %w", episodeIndex, datasetID, err)
			}
			return err
		}
		defer func() { _ = lock.Release() }()

		sess := session.New()
		doc, err := st.GetDocument(ctx, datasetID, episodeIndex)
		switch {
		case err == nil:
			sess.LoadOperations(doc)
			if originalLength > 0 && originalLength != doc.OriginalLength {
				return fmt.Errorf("episode length %d conflicts with stored length %d", originalLength, doc.OriginalLength)
			}
		case errors.Is(err, store.ErrNotFound):
			if originalLength <= 0 {
				return fmt.Errorf("no stored edits for episode %d of %s; pass --length to start a session", episodeIndex, datasetID)
			}
			sess.Initialize(datasetID, episodeIndex, originalLength)
		default:
			return err
		}

		if err := fn(sess); err != nil {
			return err
		}

		if save && sess.Dirty() {
			ops := sess.Operations()
			if ops == nil {
				return errors.New("session produced no operations document")
			}
			sess.MarkSaved()
			if err := st.SaveDocument(ctx, *ops); err != nil {
				return err
			}
		}
		return nil
	})
}

// loadDocument fetches a stored document without opening a session.
func (c *commandContext) loadDocument(ctx context.Context, datasetID string, episodeIndex int) (editops.Document, error) {
	var doc editops.Document
	err := c.withStore(func(st *store.Store) error {
		loaded, err := st.GetDocument(ctx, datasetID, episodeIndex)
		if err != nil {
			return err
		}
		doc = loaded
		return nil
	})
	return doc, err
}
