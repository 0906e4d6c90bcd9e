// Package pathcomplete supplies filesystem path suggestions for the
// send-file prompt.
package pathcomplete

import (
	"os"
	"path/filepath"
	"strings"
)

// MaxSuggestions caps the list shown under the prompt.
const MaxSuggestions = 15

// Completer supplies prompt suggestions and inline completion.
type Completer interface {
	// Suggestions lists candidate paths for the typed input.
	Suggestions(input string) ([]string, error)
	// Complete returns a completed path and whether it extends input.
	Complete(input string) (string, bool)
}

// FilePath completes paths against the filesystem. Suggestions are the
// entries of the input's directory whose names start with the typed
// prefix; directories carry a trailing separator.
type FilePath struct{}

func (FilePath) Suggestions(input string) ([]string, error) {
	dir, prefix := splitInput(input)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, MaxSuggestions)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		path := filepath.Join(dir, name)
		if entry.IsDir() {
			path += string(os.PathSeparator)
		}
		suggestions = append(suggestions, path)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}
	return suggestions, nil
}

// Complete returns the longest common prefix of the current
// suggestions when it extends the typed input.
func (fp FilePath) Complete(input string) (string, bool) {
	suggestions, err := fp.Suggestions(input)
	if err != nil || len(suggestions) == 0 {
		return "", false
	}

	lcp := suggestions[0]
	for _, s := range suggestions[1:] {
		lcp = commonPrefix(lcp, s)
		if lcp == "" {
			return "", false
		}
	}
	if lcp == input {
		return "", false
	}
	return lcp, true
}

// splitInput separates the directory to scan from the name prefix to
// match. An empty input scans the working directory; an input ending
// in a separator scans that directory with no prefix.
func splitInput(input string) (dir, prefix string) {
	if input == "" {
		return ".", ""
	}
	if strings.HasSuffix(input, string(os.PathSeparator)) {
		return input, ""
	}
	return filepath.Dir(input), filepath.Base(input)
}

func commonPrefix(a, b string) string {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
