// Package ingestion contains the PDF/table extraction and normalization
// pipeline: locating the date header inside irregular extracted tables,
// classifying data rows, cleaning price cells, and grouping the result
// into one time-series record per (product, country, market, document).
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sadumina/CarbonXinsight/internal/domain/dto"
	"github.com/sadumina/CarbonXinsight/internal/domain/models"
	"github.com/sadumina/CarbonXinsight/internal/extract"
	"github.com/sadumina/CarbonXinsight/internal/logger"
	"github.com/sadumina/CarbonXinsight/internal/storage"
)

// ErrEmptyBatch is returned when an ingestion call carries no documents at
// all; this is a request-level failure, nothing is persisted.
var ErrEmptyBatch = errors.New("no documents in batch")

// ErrInvalidWorkbook tags spreadsheet uploads that fail structural
// validation (missing Data sheet, wrong header, bad cell), so the HTTP
// layer can answer 400 instead of 500.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Document is one uploaded file: raw bytes plus the client filename.
type Document struct {
	Filename string
	Data     []byte
}

// Report is the manifest of one ingestion call.
type Report struct {
	BatchID            string
	DocumentsProcessed int
	RecordsInserted    int
	Errors             []dto.DocumentError
}

// Orchestrator drives batch ingestion: extraction per document, record
// grouping, and a single bulk write of the collected batch.
//
// The target product is configuration, not a compile-time constant, so the
// same pipeline can serve multiple product lines.
type Orchestrator struct {
	product   string
	extractor extract.TableExtractor
	repo      storage.PriceRepository
	now       func() time.Time
}

// NewOrchestrator wires the pipeline for one product line.
func NewOrchestrator(product string, extractor extract.TableExtractor, repo storage.PriceRepository) *Orchestrator {
	return &Orchestrator{
		product:   product,
		extractor: extractor,
		repo:      repo,
		now:       time.Now,
	}
}

// Product returns the configured target product.
func (o *Orchestrator) Product() string { return o.product }

// IngestDocuments processes the batch strictly in upload order, one
// document at a time. Partial success is the explicit policy: a corrupt
// document is recorded in the report and does not abort its siblings.
// After all documents are processed the collected records are persisted
// as one bulk write; a sink failure is a request-level error and nothing
// is persisted.
func (o *Orchestrator) IngestDocuments(ctx context.Context, docs []Document) (*Report, error) {
	if len(docs) == 0 {
		return nil, ErrEmptyBatch
	}

	report := &Report{BatchID: uuid.NewString()}
	uploadedAt := o.now().UTC()

	var batch []models.PriceRecord
	for _, doc := range docs {
		records, docErr := o.extractDocument(ctx, doc, report.BatchID, uploadedAt)
		if docErr != nil {
			logger.L().Warn().
				Str("batch_id", report.BatchID).
				Str("file", docErr.Filename).
				Str("reason", docErr.Reason).
				Msg("document failed")
			report.Errors = append(report.Errors, *docErr)
			continue
		}
		report.DocumentsProcessed++
		batch = append(batch, records...)
	}

	inserted, err := o.repo.InsertRecords(ctx, batch)
	if err != nil {
		return nil, err
	}
	report.RecordsInserted = inserted

	logger.L().Info().
		Str("batch_id", report.BatchID).
		Int("documents", report.DocumentsProcessed).
		Int("failed", len(report.Errors)).
		Int("records", inserted).
		Msg("batch ingested")
	return report, nil
}

// extractDocument runs table extraction and grouping for one document and
// reports its outcome as a typed result: records on success, a tagged
// failure otherwise.
func (o *Orchestrator) extractDocument(ctx context.Context, doc Document, batchID string, uploadedAt time.Time) ([]models.PriceRecord, *dto.DocumentError) {
	tables, err := o.extractor.Tables(ctx, doc.Data)
	if err != nil {
		return nil, &dto.DocumentError{Filename: doc.Filename, Reason: err.Error()}
	}

	records := recordsFromTables(tables, documentMeta{
		Product:    o.product,
		Filename:   doc.Filename,
		SourceKind: models.SourcePDF,
		BatchID:    batchID,
		UploadedAt: uploadedAt,
	})
	return records, nil
}

// IngestWorkbook handles the spreadsheet path: structurally simpler, one
// row = one country/date/price triple, no header location step. Records
// share the orchestrator's bulk-write and metadata policy with the PDF
// path.
func (o *Orchestrator) IngestWorkbook(ctx context.Context, doc Document) (*Report, error) {
	report := &Report{BatchID: uuid.NewString()}

	records, err := parseWorkbook(doc, o.product, report.BatchID, o.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	report.DocumentsProcessed = 1

	inserted, err := o.repo.InsertRecords(ctx, records)
	if err != nil {
		return nil, err
	}
	report.RecordsInserted = inserted

	logger.L().Info().
		Str("batch_id", report.BatchID).
		Str("file", doc.Filename).
		Int("records", inserted).
		Msg("workbook ingested")
	return report, nil
}
