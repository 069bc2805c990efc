package docfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File is a single JSON document made of named top-level sections. Each
// store owns one section; reading or writing a section leaves every other
// section untouched, so the document survives sections it has never heard
// of. Writes replace the whole file via temp-file rename.
type File struct {
	path string
}

func New(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string { return f.path }

// ReadSection decodes one section into v. A missing file or missing section
// leaves v untouched and reports found=false without an error.
func (f *File) ReadSection(name string, v any) (bool, error) {
	sections, err := f.readAll()
	if err != nil {
		return false, err
	}
	raw, ok := sections[name]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode section %q: %w", name, err)
	}
	return true, nil
}

// WriteSection replaces one section and rewrites the document.
func (f *File) WriteSection(name string, v any) error {
	sections, err := f.readAll()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode section %q: %w", name, err)
	}
	sections[name] = raw

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create document dir: %w", err)
	}
	payload, err := json.MarshalIndent(sections, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

func (f *File) readAll() (map[string]json.RawMessage, error) {
	payload, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	sections := map[string]json.RawMessage{}
	if len(payload) == 0 {
		return sections, nil
	}
	if err := json.Unmarshal(payload, &sections); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return sections, nil
}
