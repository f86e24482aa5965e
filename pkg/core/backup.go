package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// BackupFilename is the suggested name for export artifacts.
const BackupFilename = "quick-notes-backup.json"

// ExportJSON serializes the full collection as a pretty-printed JSON array.
// Read-only: the collection and persisted state are untouched.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	notes := snapshot(s.notes)
	s.mu.Unlock()
	return EncodeNotes(notes)
}

// WriteBackup writes the export artifact to the given path.
// An empty path defaults to BackupFilename in the working directory.
func (s *Store) WriteBackup(path string) error {
	if path == "" {
		path = BackupFilename
	}
	data, err := s.ExportJSON()
	if err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create backup directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// ImportJSON reconciles an externally supplied JSON note array with the
// current collection using last-writer-wins per id (see Merge). On parse or
// shape failure the import aborts with ErrInvalidImport and the collection is
// left completely unchanged; no partial merge occurs.
//
// The merged set becomes the authoritative collection, subject to the normal
// debounced flush. If the store was closed while the payload was being read,
// the result is discarded.
func (s *Store) ImportJSON(data []byte) error {
	// Parse before taking the lock; a malformed payload must not disturb
	// anything, including the pending flush timer.
	imported, err := DecodeNotes(data, s.now())
	if err != nil {
		return errors.Join(ErrInvalidImport, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}

	s.notes = Merge(s.notes, imported)
	if s.indexLocked(s.selected) < 0 {
		s.selected = ""
	}
	s.markDirtyLocked()
	notify := s.notifierLocked(Event{Type: EventImport, Timestamp: s.now().Unix()})
	s.mu.Unlock()

	notify()
	s.logger.Info("imported notes", "imported", len(imported))
	return nil
}
