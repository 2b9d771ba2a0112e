package app

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sadumina/CarbonXinsight/config"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Mongo: config.MongoConfig{
			URL:        "mongodb://localhost:27017",
			Database:   "coconut_analytics_test",
			Collection: "charcoal_prices",
		},
		Ingest: config.IngestConfig{Product: "Coconut Shell Charcoal"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

// lazyClient builds a driver client without dialing; the v1 driver only
// connects on first operation.
func lazyClient(t *testing.T) *mongo.Client {
	t.Helper()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client
}

func TestInitializeApp_WiresRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = testConfig()

	orig := mongoOpener
	mongoOpener = func(context.Context, config.Config) (*mongo.Client, error) {
		return lazyClient(t), nil
	}
	t.Cleanup(func() { mongoOpener = orig })

	router, cleanup, err := InitializeApp(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	defer cleanup()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz: %d", rec.Code)
	}

	// an unregistered path stays 404, a registered one does not
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: %d", rec.Code)
	}
}

func TestInitializeApp_MongoFailure(t *testing.T) {
	config.AppConfig = testConfig()

	orig := mongoOpener
	mongoOpener = func(context.Context, config.Config) (*mongo.Client, error) {
		return nil, errors.New("no reachable servers")
	}
	t.Cleanup(func() { mongoOpener = orig })

	_, _, err := InitializeApp(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to initialize mongo") {
		t.Fatalf("err: %v", err)
	}
}

func TestInitializeIngestion_MongoFailure(t *testing.T) {
	config.AppConfig = testConfig()

	orig := mongoOpener
	mongoOpener = func(context.Context, config.Config) (*mongo.Client, error) {
		return nil, errors.New("no reachable servers")
	}
	t.Cleanup(func() { mongoOpener = orig })

	if _, _, err := InitializeIngestion(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInitMongo_ConnectorFailure(t *testing.T) {
	orig := mongoConnector
	mongoConnector = func(context.Context, string) (*mongo.Client, error) {
		return nil, errors.New("dial tcp: refused")
	}
	t.Cleanup(func() { mongoConnector = orig })

	if _, err := InitMongo(context.Background(), testConfig()); err == nil {
		t.Fatalf("expected connect error")
	}
}
