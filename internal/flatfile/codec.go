// Line-file read/write helpers with atomic persistence, plus the field
// codec shared by the table accessors.
package flatfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// fieldSep separates fields within a line.
const fieldSep = ", "

// readLines reads a table file and returns each non-blank line.
// Lines too short to parse are the caller's problem; blank lines are
// dropped here so they never consume an ID.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return lines, nil
}

// writeLines atomically writes lines to a table file using the temp-file,
// fsync, rename pattern. The temp file lives next to the target so the
// rename never crosses filesystems.
func writeLines(path string, lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".txt-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing line: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// sanitizeField makes a value safe for the line format. Commas would be
// read back as field separators, so they become spaces.
func sanitizeField(v string) string {
	v = strings.ReplaceAll(v, ",", " ")
	return strings.TrimSpace(v)
}

// splitFields splits a line into its fields. The line itself is not
// trimmed first so that a trailing empty field survives the split.
func splitFields(line string) []string {
	parts := strings.Split(line, fieldSep)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// joinFields assembles sanitized fields into a line.
func joinFields(fields ...string) string {
	sanitized := make([]string, len(fields))
	for i, f := range fields {
		sanitized[i] = sanitizeField(f)
	}
	return strings.Join(sanitized, fieldSep)
}
