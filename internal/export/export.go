// Package export writes store contents to JSON files: one envelope file per
// table, plus a catalog conversion of the flat-file store into the wide
// record format used by downstream reporting.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sweta-r4/library-api/pkg/types"
)

// Metadata describes one exported table.
type Metadata struct {
	TableName       string `json:"table_name"`
	RecordCount     int    `json:"record_count"`
	ExportTimestamp string `json:"export_timestamp"`
	Source          string `json:"database_source"`
}

// Envelope is the on-disk shape of an exported table.
type Envelope struct {
	Metadata Metadata `json:"metadata"`
	Data     []any    `json:"data"`
}

// Result reports one written file.
type Result struct {
	Table string
	Count int
	Path  string
}

// Tables exports every standard table of an attached store to
// <outDir>/<table>.json, each wrapped in a metadata envelope.
func Tables(store types.Store, source, outDir string) ([]Result, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export dir: %w", err)
	}

	now := time.Now().Format(time.RFC3339)
	var results []Result
	for _, name := range types.StandardTableNames {
		table, err := store.GetTable(name)
		if err != nil {
			return nil, fmt.Errorf("getting table %s: %w", name, err)
		}
		records, err := table.List()
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", name, err)
		}
		if records == nil {
			records = []any{}
		}

		env := Envelope{
			Metadata: Metadata{
				TableName:       name,
				RecordCount:     len(records),
				ExportTimestamp: now,
				Source:          source,
			},
			Data: records,
		}
		path := filepath.Join(outDir, name+".json")
		if err := writeJSON(path, env); err != nil {
			return nil, err
		}
		results = append(results, Result{Table: name, Count: len(records), Path: path})
	}
	return results, nil
}

// writeJSON marshals v with two-space indentation and writes it to path.
func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
