package docfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"daytrack/internal/platform/docfile"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMissingFileAndMissingSectionAreNotErrors(t *testing.T) {
	t.Parallel()
	f := docfile.New(filepath.Join(t.TempDir(), "doc.json"))

	var got []payload
	found, err := f.ReadSection("tasks", &got)
	if err != nil {
		t.Fatalf("read from missing file: %v", err)
	}
	if found {
		t.Fatalf("missing file must report not found")
	}

	if err := f.WriteSection("tasks", []payload{{Name: "a", Count: 1}}); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	found, err = f.ReadSection("goals", &got)
	if err != nil || found {
		t.Fatalf("missing section: found=%t err=%v", found, err)
	}
}

func TestWriteSectionPreservesOtherSections(t *testing.T) {
	t.Parallel()
	f := docfile.New(filepath.Join(t.TempDir(), "doc.json"))

	if err := f.WriteSection("tasks", []payload{{Name: "task", Count: 2}}); err != nil {
		t.Fatalf("write tasks: %v", err)
	}
	if err := f.WriteSection("notes", []payload{{Name: "note"}}); err != nil {
		t.Fatalf("write notes: %v", err)
	}

	var tasks []payload
	found, err := f.ReadSection("tasks", &tasks)
	if err != nil || !found {
		t.Fatalf("read tasks back: found=%t err=%v", found, err)
	}
	if len(tasks) != 1 || tasks[0].Name != "task" || tasks[0].Count != 2 {
		t.Fatalf("tasks section lost data: %+v", tasks)
	}
}

func TestWriteSectionToleratesUnknownSections(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "doc.json")
	seed := `{"legacy": {"kept": true}, "tasks": []}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed document: %v", err)
	}

	f := docfile.New(path)
	if err := f.WriteSection("tasks", []payload{{Name: "x"}}); err != nil {
		t.Fatalf("write tasks: %v", err)
	}

	var legacy map[string]bool
	found, err := f.ReadSection("legacy", &legacy)
	if err != nil || !found {
		t.Fatalf("legacy section: found=%t err=%v", found, err)
	}
	if !legacy["kept"] {
		t.Fatalf("legacy section content lost: %+v", legacy)
	}
}
