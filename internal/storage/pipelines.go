package storage

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sadumina/CarbonXinsight/internal/domain/models"
)

// Pipeline builders are kept as pure functions so their shape is unit
// testable without a running mongod.

func seriesPipeline(product string, filter SeriesFilter) mongo.Pipeline {
	match := bson.M{"product": product}
	if len(filter.Countries) > 0 {
		match["country"] = bson.M{"$in": filter.Countries}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: "$prices"}},
	}

	if filter.From != nil || filter.To != nil {
		dateRange := bson.M{}
		if filter.From != nil {
			dateRange["$gte"] = *filter.From
		}
		if filter.To != nil {
			dateRange["$lte"] = *filter.To
		}
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"prices.date": dateRange}}})
	}

	return append(pipeline,
		bson.D{{Key: "$sort", Value: bson.M{"prices.date": 1}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":     0,
			"country": "$country",
			"date":    "$prices.date",
			"price":   "$prices.price",
		}}},
	)
}

func marketKPIPipeline(product string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"product": product}}},
		bson.D{{Key: "$unwind", Value: "$prices"}},
		bson.D{{Key: "$sort", Value: bson.M{"prices.date": 1}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":         "$country",
			"min_price":   bson.M{"$min": "$prices.price"},
			"max_price":   bson.M{"$max": "$prices.price"},
			"avg_price":   bson.M{"$avg": "$prices.price"},
			"first_price": bson.M{"$first": "$prices.price"},
			"last_price":  bson.M{"$last": "$prices.price"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       0,
			"country":   "$_id",
			"min_price": 1,
			"max_price": 1,
			"avg_price": bson.M{"$round": bson.A{"$avg_price", 2}},
			"change_pct": bson.M{"$round": bson.A{
				bson.M{"$cond": bson.A{
					bson.M{"$eq": bson.A{"$first_price", 0}},
					0,
					bson.M{"$multiply": bson.A{
						bson.M{"$divide": bson.A{
							bson.M{"$subtract": bson.A{"$last_price", "$first_price"}},
							"$first_price",
						}},
						100,
					}},
				}},
				2,
			}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"country": 1}}},
	}
}

func scopeStatsPipeline(product string, scope models.Scope) mongo.Pipeline {
	match := bson.M{"product": product}
	if scope.BySource() {
		match["source_document"] = scope.Source
	} else {
		match["month"] = scope.Month
		match["year"] = scope.Year
	}

	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$unwind", Value: "$prices"}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":       "$country",
			"min_price": bson.M{"$min": "$prices.price"},
			"max_price": bson.M{"$max": "$prices.price"},
			"avg_price": bson.M{"$avg": "$prices.price"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":       0,
			"country":   "$_id",
			"min_price": 1,
			"max_price": 1,
			"avg_price": bson.M{"$round": bson.A{"$avg_price", 2}},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"country": 1}}},
	}
}
