package api

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sadumina/CarbonXinsight/internal/domain/dto"
	"github.com/sadumina/CarbonXinsight/internal/domain/models"
	"github.com/sadumina/CarbonXinsight/internal/ingestion"
	"github.com/sadumina/CarbonXinsight/internal/service"
)

// Ingestor is the slice of the ingestion orchestrator the HTTP layer
// needs; tests substitute a fake.
type Ingestor interface {
	IngestDocuments(ctx context.Context, docs []ingestion.Document) (*ingestion.Report, error)
	IngestWorkbook(ctx context.Context, doc ingestion.Document) (*ingestion.Report, error)
}

// Handler provides the HTTP handlers for ingestion and analytics.
//
// Responsibilities:
//   - Validate incoming multipart bodies and query parameters
//   - Delegate to the ingestion orchestrator / analytics service
//   - Translate results into response DTOs with appropriate status codes
type Handler struct {
	ingestor Ingestor
	svc      service.AnalyticsService
}

// NewHandler constructs a Handler with its two collaborators injected.
func NewHandler(ingestor Ingestor, svc service.AnalyticsService) *Handler {
	return &Handler{ingestor: ingestor, svc: svc}
}

// Upload handles POST /api/v1/upload.
//
// Upload godoc
// @Summary      Ingest price bulletins (PDF)
// @Description  Accepts one or more PDF files and ingests every extracted price series. Partial success returns 200 with per-document errors.
// @Tags         ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "PDF documents (repeatable)"
// @Success      200  {object}  dto.IngestResponse     "Manifest"
// @Failure      400  {object}  dto.ErrorResponse      "No files in request"
// @Failure      500  {object}  dto.ErrorResponse      "Persistence failure"
// @Router       /api/v1/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid multipart form", err))
		return
	}

	files := form.File["files"]
	docs := make([]ingestion.Document, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to read upload", err))
			return
		}
		docs = append(docs, ingestion.Document{Filename: filepath.Base(fh.Filename), Data: data})
	}

	report, err := h.ingestor.IngestDocuments(c.Request.Context(), docs)
	if err != nil {
		if errors.Is(err, ingestion.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("no documents in request", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to persist batch", err))
		return
	}

	c.JSON(http.StatusOK, toIngestResponse(report))
}

// UploadExcel handles POST /api/v1/upload-excel.
//
// UploadExcel godoc
// @Summary      Ingest a price spreadsheet
// @Description  Accepts a single .xlsx/.xls workbook with a Data sheet holding Country|Product|Date|Price rows.
// @Tags         ingest
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Workbook"
// @Success      200  {object}  dto.IngestResponse  "Manifest"
// @Failure      400  {object}  dto.ErrorResponse   "Wrong extension or malformed sheet"
// @Failure      500  {object}  dto.ErrorResponse   "Persistence failure"
// @Router       /api/v1/upload-excel [post]
func (h *Handler) UploadExcel(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("file is required", err))
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("upload a .xlsx or .xls file", nil))
		return
	}

	data, err := readUpload(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("failed to read upload", err))
		return
	}

	report, err := h.ingestor.IngestWorkbook(c.Request.Context(), ingestion.Document{
		Filename: filepath.Base(fh.Filename),
		Data:     data,
	})
	if err != nil {
		if errors.Is(err, ingestion.ErrInvalidWorkbook) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("workbook format incorrect", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to persist batch", err))
		return
	}

	c.JSON(http.StatusOK, toIngestResponse(report))
}

// Countries handles GET /api/v1/countries.
//
// Countries godoc
// @Summary      List countries
// @Description  Sorted distinct countries stored for the configured product.
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/countries [get]
func (h *Handler) Countries(c *gin.Context) {
	countries, err := h.svc.Countries(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list countries", err))
		return
	}
	c.JSON(http.StatusOK, countries)
}

// Sources handles GET /api/v1/sources.
//
// Sources godoc
// @Summary      List ingested source documents
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/sources [get]
func (h *Handler) Sources(c *gin.Context) {
	sources, err := h.svc.Sources(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list sources", err))
		return
	}
	c.JSON(http.StatusOK, sources)
}

// Series handles GET /api/v1/series.
//
// Series godoc
// @Summary      Price time series
// @Description  Flattened (country, date, price) points, date-sorted.
// @Tags         analytics
// @Produce      json
// @Param        countries  query  string  false  "Comma-separated country filter"  example(India,Indonesia)
// @Param        from       query  string  false  "Start date YYYY-MM-DD"
// @Param        to         query  string  false  "End date YYYY-MM-DD"
// @Success      200  {array}   models.SeriesPoint
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/series [get]
func (h *Handler) Series(c *gin.Context) {
	var countries []string
	if raw := strings.TrimSpace(c.Query("countries")); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				countries = append(countries, name)
			}
		}
	}

	from, err := optionalDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid from date, expected YYYY-MM-DD", err))
		return
	}
	to, err := optionalDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid to date, expected YYYY-MM-DD", err))
		return
	}

	points, err := h.svc.Series(c.Request.Context(), countries, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch series", err))
		return
	}
	c.JSON(http.StatusOK, points)
}

// MarketKPIs handles GET /api/v1/analytics/market-kpis.
//
// MarketKPIs godoc
// @Summary      Per-country market KPIs
// @Description  Min/max/avg price and first-to-last percentage change per country.
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   models.CountryKPI
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/analytics/market-kpis [get]
func (h *Handler) MarketKPIs(c *gin.Context) {
	kpis, err := h.svc.MarketKPIs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute KPIs", err))
		return
	}
	c.JSON(http.StatusOK, kpis)
}

// MonthStats handles GET /api/v1/analytics/month.
//
// MonthStats godoc
// @Summary      Per-country stats for one scope
// @Description  Stats for a month+year window, or for a single source document when only source is given.
// @Tags         analytics
// @Produce      json
// @Param        month   query  int     false  "Month 1-12"
// @Param        year    query  int     false  "Year"
// @Param        source  query  string  false  "Source document filter"
// @Success      200  {array}   models.CountryStats
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/analytics/month [get]
func (h *Handler) MonthStats(c *gin.Context) {
	scope, err := scopeFromParams(c.Query("source"), c.Query("month"), c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid scope", err))
		return
	}

	stats, err := h.svc.ScopeStats(c.Request.Context(), scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compute stats", err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Compare handles GET /api/v1/analytics/compare.
//
// Compare godoc
// @Summary      Compare two scopes
// @Description  Per-country min/avg/max for two scopes (source vs source, or month vs month) with absolute and percent deltas.
// @Tags         analytics
// @Produce      json
// @Param        source1  query  string  false  "Scope A source document"
// @Param        source2  query  string  false  "Scope B source document"
// @Param        month1   query  int     false  "Scope A month"
// @Param        year1    query  int     false  "Scope A year"
// @Param        month2   query  int     false  "Scope B month"
// @Param        year2    query  int     false  "Scope B year"
// @Success      200  {object}  dto.CompareResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/analytics/compare [get]
func (h *Handler) Compare(c *gin.Context) {
	scopeA, err := scopeFromParams(c.Query("source1"), c.Query("month1"), c.Query("year1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid scope A", err))
		return
	}
	scopeB, err := scopeFromParams(c.Query("source2"), c.Query("month2"), c.Query("year2"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid scope B", err))
		return
	}
	if scopeA.BySource() != scopeB.BySource() {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("scopes must both be sources or both be months", nil))
		return
	}

	result, err := h.svc.Compare(c.Request.Context(), scopeA, scopeB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to compare scopes", err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Count handles GET /api/v1/data/count.
//
// Count godoc
// @Summary      Stored record count
// @Tags         data
// @Produce      json
// @Success      200  {object}  dto.CountResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/data/count [get]
func (h *Handler) Count(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to count records", err))
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: n})
}

// Clear handles DELETE /api/v1/data.
//
// Clear godoc
// @Summary      Bulk clear
// @Description  Deletes every stored record of the configured product.
// @Tags         data
// @Produce      json
// @Success      200  {object}  dto.DeleteResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/data [delete]
func (h *Handler) Clear(c *gin.Context) {
	deleted, err := h.svc.Clear(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to clear data", err))
		return
	}
	c.JSON(http.StatusOK, dto.DeleteResponse{Deleted: deleted})
}

// scopeFromParams builds a Scope from query parameters: a non-empty
// source wins, otherwise month+year are both required.
func scopeFromParams(source, monthRaw, yearRaw string) (models.Scope, error) {
	if source = strings.TrimSpace(source); source != "" {
		return models.Scope{Source: source}, nil
	}

	month, err := strconv.Atoi(monthRaw)
	if err != nil || month < 1 || month > 12 {
		return models.Scope{}, errors.New("month must be 1-12")
	}
	year, err := strconv.Atoi(yearRaw)
	if err != nil || year < 1970 {
		return models.Scope{}, errors.New("year is required")
	}
	return models.Scope{Month: month, Year: year}, nil
}

func optionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	d = d.UTC()
	return &d, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

func toIngestResponse(report *ingestion.Report) dto.IngestResponse {
	return dto.IngestResponse{
		BatchID:            report.BatchID,
		DocumentsProcessed: report.DocumentsProcessed,
		RecordsInserted:    report.RecordsInserted,
		Errors:             report.Errors,
	}
}
