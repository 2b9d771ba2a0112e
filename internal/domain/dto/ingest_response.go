package dto

// DocumentError reports one document that failed during a batch ingestion.
// A failed document never aborts its siblings.
type DocumentError struct {
	Filename string `json:"filename" example:"prices-feb-2024.pdf"`
	Reason   string `json:"reason" example:"no tables found in document"`
}

// IngestResponse is the manifest returned by the upload endpoints.
// A partially successful batch still returns 200 with the failures listed.
type IngestResponse struct {
	BatchID            string          `json:"batch_id"`
	DocumentsProcessed int             `json:"documents_processed" example:"2"`
	RecordsInserted    int             `json:"records_inserted" example:"14"`
	Errors             []DocumentError `json:"errors,omitempty"`
}

// DeleteResponse reports the outcome of a bulk clear.
type DeleteResponse struct {
	Deleted int64 `json:"deleted" example:"42"`
}

// CountResponse reports the stored record count for the configured product.
type CountResponse struct {
	Count int64 `json:"count" example:"42"`
}
