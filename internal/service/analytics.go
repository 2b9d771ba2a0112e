package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sadumina/CarbonXinsight/internal/domain/dto"
	"github.com/sadumina/CarbonXinsight/internal/domain/models"
	"github.com/sadumina/CarbonXinsight/internal/storage"
)

// AnalyticsService exposes the read side: series, KPIs, scope stats, and
// two-scope comparisons. The product dimension is fixed at construction.
type AnalyticsService interface {
	Countries(ctx context.Context) ([]string, error)
	Sources(ctx context.Context) ([]string, error)
	Series(ctx context.Context, countries []string, from, to *time.Time) ([]models.SeriesPoint, error)
	MarketKPIs(ctx context.Context) ([]models.CountryKPI, error)
	ScopeStats(ctx context.Context, scope models.Scope) ([]models.CountryStats, error)
	Compare(ctx context.Context, a, b models.Scope) (*dto.CompareResponse, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) (int64, error)
}

type analyticsService struct {
	product string
	repo    storage.PriceRepository
}

// NewAnalyticsService builds the service for one product line.
func NewAnalyticsService(product string, repo storage.PriceRepository) AnalyticsService {
	return &analyticsService{product: product, repo: repo}
}

func (s *analyticsService) Countries(ctx context.Context) ([]string, error) {
	return s.repo.Countries(ctx, s.product)
}

func (s *analyticsService) Sources(ctx context.Context) ([]string, error) {
	return s.repo.Sources(ctx, s.product)
}

func (s *analyticsService) Series(ctx context.Context, countries []string, from, to *time.Time) ([]models.SeriesPoint, error) {
	return s.repo.Series(ctx, s.product, storage.SeriesFilter{Countries: countries, From: from, To: to})
}

func (s *analyticsService) MarketKPIs(ctx context.Context) ([]models.CountryKPI, error) {
	return s.repo.MarketKPIs(ctx, s.product)
}

func (s *analyticsService) ScopeStats(ctx context.Context, scope models.Scope) ([]models.CountryStats, error) {
	return s.repo.ScopeStats(ctx, s.product, scope)
}

func (s *analyticsService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, s.product)
}

func (s *analyticsService) Clear(ctx context.Context) (int64, error) {
	return s.repo.DeleteByProduct(ctx, s.product)
}

// Compare runs both scope queries concurrently and joins the per-country
// stats into comparison rows with absolute and percentage deltas.
func (s *analyticsService) Compare(ctx context.Context, a, b models.Scope) (*dto.CompareResponse, error) {
	var statsA, statsB []models.CountryStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		statsA, err = s.repo.ScopeStats(gctx, s.product, a)
		return err
	})
	g.Go(func() error {
		var err error
		statsB, err = s.repo.ScopeStats(gctx, s.product, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.CompareResponse{
		ScopeA: a.Label(),
		ScopeB: b.Label(),
		Rows:   joinComparison(statsA, statsB),
	}, nil
}

// joinComparison outer-joins the two stat sets on country. Countries
// present in only one scope keep a nil side and no delta.
func joinComparison(a, b []models.CountryStats) []dto.ComparisonRow {
	byCountry := make(map[string]*dto.ComparisonRow)

	for _, st := range a {
		byCountry[st.Country] = &dto.ComparisonRow{Country: st.Country, A: toScopeStats(st)}
	}
	for _, st := range b {
		row, ok := byCountry[st.Country]
		if !ok {
			row = &dto.ComparisonRow{Country: st.Country}
			byCountry[st.Country] = row
		}
		row.B = toScopeStats(st)
	}

	rows := make([]dto.ComparisonRow, 0, len(byCountry))
	for _, row := range byCountry {
		if row.A != nil && row.B != nil {
			row.Delta = computeDelta(row.A, row.B)
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Country < rows[j].Country })
	return rows
}

func toScopeStats(st models.CountryStats) *dto.ScopeStats {
	return &dto.ScopeStats{MinPrice: st.MinPrice, MaxPrice: st.MaxPrice, AvgPrice: st.AvgPrice}
}

// computeDelta reports b-a differences. Percentages are omitted when the
// baseline is zero.
func computeDelta(a, b *dto.ScopeStats) *dto.Delta {
	d := &dto.Delta{
		Min: round2(b.MinPrice - a.MinPrice),
		Avg: round2(b.AvgPrice - a.AvgPrice),
		Max: round2(b.MaxPrice - a.MaxPrice),
	}
	d.MinPct = pctChange(a.MinPrice, b.MinPrice)
	d.AvgPct = pctChange(a.AvgPrice, b.AvgPrice)
	d.MaxPct = pctChange(a.MaxPrice, b.MaxPrice)
	return d
}

func pctChange(from, to float64) *float64 {
	if from == 0 {
		return nil
	}
	v := round2((to - from) / from * 100)
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
