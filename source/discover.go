// Package source locates and watches stylesheet files on disk. It never
// parses CSS itself - callers hand the file contents to an
// *style.Engine's AddStyleSheet (or their own loader) once a path has
// been discovered or a change has been observed.
package source

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverSheets returns every file under root matching pattern (a
// doublestar glob, e.g. "**/*.css"), sorted, ready to be read and fed to
// an engine's stylesheet loader. Grounded on the teacher toolkit's own
// flf/figlet font-directory scanning convention of walking a root with a
// glob rather than a manual filepath.Walk.
func DiscoverSheets(root, pattern string) ([]string, error) {
	fsys := os.DirFS(root)
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("discovering stylesheets under %q: %w", root, err)
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = root + "/" + m
	}
	sort.Strings(out)
	return out, nil
}

// ReadAll reads and concatenates every discovered file's contents, in
// discovery order, separated by a newline - the simplest possible
// "load a directory of stylesheets as one blob" helper for a host that
// doesn't need per-file provenance.
func ReadAll(paths []string) (string, error) {
	var out []byte
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return "", fmt.Errorf("reading stylesheet %q: %w", p, err)
		}
		out = append(out, data...)
		out = append(out, '\n')
	}
	return string(out), nil
}
