package ingestion

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sadumina/CarbonXinsight/internal/logger"
)

// ProcessDirectory ingests every PDF in dir as one batch, in filename
// order. Documents are processed sequentially; a single unreadable or
// unparseable file shows up in the report instead of aborting the run.
func ProcessDirectory(ctx context.Context, dir string, orch *Orchestrator) (*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		docs = append(docs, Document{Filename: entry.Name(), Data: data})
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("no pdf files in %s", dir)
	}

	logger.L().Info().Int("files", len(docs)).Str("dir", dir).Msg("ingestion start")
	return orch.IngestDocuments(ctx, docs)
}
