package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeTempCatalog(t *testing.T, contents string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "locations.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	return path
}

const sampleCatalog = `
- { name: Paris, longitude: 2.2945, latitude: 48.8584, height: 35.0 }
- { name: Toulouse, longitude: 1.4808, latitude: 43.5606, height: 146.0 }
- { name: StMichel, longitude: -1.5115, latitude: 48.6360, height: 52.0 }
`

func TestLoadCatalog_NamesInFileOrder(t *testing.T) {
	cat, err := LoadCatalog(writeTempCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	want := []string{"Paris", "Toulouse", "StMichel"}
	if got := cat.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names()=%v want %v", got, want)
	}
}

func TestCatalog_LookupIsCaseInsensitive(t *testing.T) {
	cat, err := LoadCatalog(writeTempCatalog(t, sampleCatalog))
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}

	for _, name := range []string{"Paris", "paris", "PARIS", "pArIs"} {
		loc, ok := cat.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if loc.Longitude != 2.2945 || loc.Latitude != 48.8584 || loc.Height != 35.0 {
			t.Fatalf("Lookup(%q)=%+v", name, loc)
		}
	}

	if _, ok := cat.Lookup("Atlantis"); ok {
		t.Fatalf("Lookup(Atlantis) should not be found")
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadCatalog_MalformedYAML(t *testing.T) {
	_, err := LoadCatalog(writeTempCatalog(t, "locations: {not: [a, sequence"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadCatalog_EntryWithoutName(t *testing.T) {
	_, err := LoadCatalog(writeTempCatalog(t, "- { longitude: 1.0, latitude: 2.0, height: 3.0 }\n"))
	if err == nil {
		t.Fatalf("expected error for unnamed entry")
	}
}

func TestLoadCatalog_EmptyCatalog(t *testing.T) {
	cat, err := LoadCatalog(writeTempCatalog(t, ""))
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if n := len(cat.Names()); n != 0 {
		t.Fatalf("Names() len=%d want 0", n)
	}
}
