package prompt

import (
	"errors"
	"io/fs"
	"log/slog"
)

// TemplateStore reads optional prompt fragments named "<task>.txt".
type TemplateStore struct {
	fsys fs.FS
}

// NewTemplateStore returns a store backed by fsys. A nil fsys yields a store
// where every lookup is empty.
func NewTemplateStore(fsys fs.FS) *TemplateStore {
	return &TemplateStore{fsys: fsys}
}

// Load returns the fragment for task. TaskGeneral and missing files resolve to
// an empty fragment; other read errors are logged and also resolve to empty.
func (s *TemplateStore) Load(task TaskType) string {
	if s == nil || s.fsys == nil || task == TaskGeneral {
		return ""
	}

	name := string(task) + ".txt"
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Failed to read prompt template", "template", name, "error", err)
		}
		return ""
	}
	return string(data)
}
