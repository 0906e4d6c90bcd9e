package pathcomplete

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func TestSuggestions_PrefixMatchesOnly(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "main.go", "main_test.go", "readme.md")

	fp := FilePath{}
	got, err := fp.Suggestions(filepath.Join(dir, "ma"))
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "main.go"),
		filepath.Join(dir, "main_test.go"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d suggestions %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSuggestions_DirectoriesCarryTrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, dir, "srv.go")

	fp := FilePath{}
	got, err := fp.Suggestions(filepath.Join(dir, "sr"))
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}

	var foundDir bool
	for _, s := range got {
		if s == filepath.Join(dir, "src")+string(os.PathSeparator) {
			foundDir = true
		}
	}
	if !foundDir {
		t.Errorf("directory suggestion missing separator suffix: %v", got)
	}
}

func TestSuggestions_TrailingSeparatorScansThatDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt")

	fp := FilePath{}
	got, err := fp.Suggestions(dir + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d suggestions %v, want 2", len(got), got)
	}
}

func TestSuggestions_CappedAtMax(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < MaxSuggestions+10; i++ {
		writeFiles(t, dir, fmt.Sprintf("file%02d.txt", i))
	}

	fp := FilePath{}
	got, err := fp.Suggestions(filepath.Join(dir, "file"))
	if err != nil {
		t.Fatalf("Suggestions failed: %v", err)
	}
	if len(got) != MaxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), MaxSuggestions)
	}
}

func TestComplete_LongestCommonPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "main.go", "main_test.go")

	fp := FilePath{}
	got, ok := fp.Complete(filepath.Join(dir, "ma"))
	if !ok {
		t.Fatal("expected a completion")
	}
	if want := filepath.Join(dir, "main"); got != want {
		t.Errorf("Complete = %q, want %q", got, want)
	}
}

func TestComplete_SingleMatchCompletesFully(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "readme.md")

	fp := FilePath{}
	got, ok := fp.Complete(filepath.Join(dir, "re"))
	if !ok {
		t.Fatal("expected a completion")
	}
	if want := filepath.Join(dir, "readme.md"); got != want {
		t.Errorf("Complete = %q, want %q", got, want)
	}
}

func TestComplete_NoMatch(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "readme.md")

	fp := FilePath{}
	if got, ok := fp.Complete(filepath.Join(dir, "zz")); ok {
		t.Errorf("expected no completion, got %q", got)
	}
}

func TestComplete_NoExtension(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a1.txt", "a2.txt")

	// The common prefix equals the input; nothing to extend.
	fp := FilePath{}
	input := filepath.Join(dir, "a")
	if got, ok := fp.Complete(input); ok {
		t.Errorf("expected no completion for %q, got %q", input, got)
	}
}

func TestSplitInput(t *testing.T) {
	sep := string(os.PathSeparator)
	tests := []struct {
		in, dir, prefix string
	}{
		{"", ".", ""},
		{"ma", ".", "ma"},
		{"src" + sep, "src" + sep, ""},
		{"src" + sep + "ma", "src", "ma"},
	}

	for _, tt := range tests {
		dir, prefix := splitInput(tt.in)
		if dir != tt.dir || prefix != tt.prefix {
			t.Errorf("splitInput(%q) = (%q, %q), want (%q, %q)",
				tt.in, dir, prefix, tt.dir, tt.prefix)
		}
	}
}

func TestSuggestions_MissingDirectory(t *testing.T) {
	fp := FilePath{}
	_, err := fp.Suggestions(filepath.Join(t.TempDir(), "nope", "x"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
