package storage

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sadumina/CarbonXinsight/internal/domain/models"
)

// SeriesFilter narrows the flattened series query.
type SeriesFilter struct {
	Countries []string
	From      *time.Time
	To        *time.Time
}

// PriceRepository defines the contract against the document store.
type PriceRepository interface {
	InsertRecords(ctx context.Context, records []models.PriceRecord) (int, error)
	DeleteByProduct(ctx context.Context, product string) (int64, error)
	Count(ctx context.Context, product string) (int64, error)
	Countries(ctx context.Context, product string) ([]string, error)
	Sources(ctx context.Context, product string) ([]string, error)
	Series(ctx context.Context, product string, filter SeriesFilter) ([]models.SeriesPoint, error)
	MarketKPIs(ctx context.Context, product string) ([]models.CountryKPI, error)
	ScopeStats(ctx context.Context, product string, scope models.Scope) ([]models.CountryStats, error)
}

type priceRepository struct {
	coll *mongo.Collection
}

// NewPriceRepository builds the Mongo-backed repository over the given
// collection.
func NewPriceRepository(coll *mongo.Collection) PriceRepository {
	return &priceRepository{coll: coll}
}

// InsertRecords performs a single ordered bulk insert of the batch.
func (r *priceRepository) InsertRecords(ctx context.Context, records []models.PriceRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert records: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// DeleteByProduct removes every record of the product. This is the only
// delete path; there is no per-record update.
func (r *priceRepository) DeleteByProduct(ctx context.Context, product string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"product": product})
	if err != nil {
		return 0, fmt.Errorf("delete by product: %w", err)
	}
	return res.DeletedCount, nil
}

func (r *priceRepository) Count(ctx context.Context, product string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"product": product})
}

// Countries returns the sorted distinct country labels for the product.
func (r *priceRepository) Countries(ctx context.Context, product string) ([]string, error) {
	return r.distinctStrings(ctx, "country", product)
}

// Sources returns the distinct source documents ingested for the product.
func (r *priceRepository) Sources(ctx context.Context, product string) ([]string, error) {
	return r.distinctStrings(ctx, "source_document", product)
}

func (r *priceRepository) distinctStrings(ctx context.Context, field, product string) ([]string, error) {
	values, err := r.coll.Distinct(ctx, field, bson.M{"product": product})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Series unwinds the stored price arrays into flat (country, date, price)
// points, date-sorted, optionally narrowed by country and date range.
func (r *priceRepository) Series(ctx context.Context, product string, filter SeriesFilter) ([]models.SeriesPoint, error) {
	var points []models.SeriesPoint
	if err := r.aggregate(ctx, seriesPipeline(product, filter), &points); err != nil {
		return nil, fmt.Errorf("series: %w", err)
	}
	return points, nil
}

// MarketKPIs groups the full series per country and computes min/max/avg
// plus the first-to-last percentage change.
func (r *priceRepository) MarketKPIs(ctx context.Context, product string) ([]models.CountryKPI, error) {
	var kpis []models.CountryKPI
	if err := r.aggregate(ctx, marketKPIPipeline(product), &kpis); err != nil {
		return nil, fmt.Errorf("market kpis: %w", err)
	}
	return kpis, nil
}

// ScopeStats computes per-country min/max/avg inside one scope: a single
// source document, or a month+year window.
func (r *priceRepository) ScopeStats(ctx context.Context, product string, scope models.Scope) ([]models.CountryStats, error) {
	var stats []models.CountryStats
	if err := r.aggregate(ctx, scopeStatsPipeline(product, scope), &stats); err != nil {
		return nil, fmt.Errorf("scope stats: %w", err)
	}
	return stats, nil
}

func (r *priceRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer func() { _ = cursor.Close(ctx) }()
	return cursor.All(ctx, out)
}
