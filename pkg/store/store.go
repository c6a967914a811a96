package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/macropower/sdkconf/pkg/collection"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
	"github.com/macropower/sdkconf/pkg/settings"
)

// Store reads and writes collection files below Dir.
type Store struct {
	Dir    string
	Format Format
}

// New returns a [Store] for the SDK directory dir.
func New(dir string, format Format) *Store {
	return &Store{Dir: dir, Format: format}
}

// Path returns the file holding the collection of kind k.
func (s *Store) Path(k collection.Kind) string {
	return filepath.Join(s.Dir, k.Name+"."+s.Format.Ext())
}

// Load returns the stored collection of kind k. If no file exists yet, or
// the file holds no keys, an empty collection is returned.
func (s *Store) Load(k collection.Kind) (settings.Tree, error) {
	path := s.Path(k)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("collection file not found, initializing",
			slog.String("collection", k.Name),
			slog.String("path", path),
		)

		return collection.Initialize(k), nil
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", sdkerrors.ErrLoad, k.Name, err)
	}

	t, err := Decode(data, s.Format)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", sdkerrors.ErrLoad, path, err)
	}

	if len(t) == 0 {
		slog.Debug("collection file is empty, initializing",
			slog.String("collection", k.Name),
			slog.String("path", path),
		)

		return collection.Initialize(k), nil
	}

	return t, nil
}

// Save replaces the stored collection of kind k with t.
func (s *Store) Save(t settings.Tree, k collection.Kind) error {
	path := s.Path(k)

	data, err := Encode(t, s.Format)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", sdkerrors.ErrPersist, k.Name, err)
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", sdkerrors.ErrPersist, path, err)
	}

	slog.Debug("saved collection",
		slog.String("collection", k.Name),
		slog.String("path", path),
	)

	return nil
}

// Update loads the collection of kind k, applies fn and saves the result.
// Concurrent updates of the same file within the process are serialized.
// Nothing is saved when fn fails or leaves the collection unchanged, in which
// case [sdkerrors.ErrNoChange] is returned.
func (s *Store) Update(k collection.Kind, fn func(settings.Tree) (settings.Tree, error)) error {
	path := s.Path(k)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	unlock := updateLocks.lock(path)
	defer unlock()

	t, err := s.Load(k)
	if err != nil {
		return err
	}

	out, err := fn(t)
	if err != nil {
		return err
	}

	if out.Equal(t) {
		return fmt.Errorf("%w: %s", sdkerrors.ErrNoChange, k.Name)
	}

	if err := s.Save(out, k); err != nil {
		return err
	}

	slog.Info("updated collection",
		slog.String("collection", k.Name),
		slog.String("path", path),
	)

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)

		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
