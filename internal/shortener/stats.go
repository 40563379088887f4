// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package shortener

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var _ StatsFetcher = &FileStats{}

// FileStats reads statistics from a YAML file with a top level "stats" list.
// An empty path means no statistics.
type FileStats struct {
	path string
}

type statsFile struct {
	Stats []Stat `yaml:"stats"`
}

func NewFileStats(path string) *FileStats {
	return &FileStats{path: path}
}

// FetchStats implements StatsFetcher. The file is read on every call.
func (f *FileStats) FetchStats(ctx context.Context) ([]Stat, error) {
	if f.path == "" {
		return []Stat{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading stats file: %w", err)
	}

	var parsed statsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing stats file %q: %w", f.path, err)
	}

	if parsed.Stats == nil {
		return []Stat{}, nil
	}
	return parsed.Stats, nil
}
