// Package testutil provides shared helpers for tests that need a real
// MongoDB instance. Tests using SetupTestDB are skipped when no test
// database is reachable, so the pure-logic suites still run everywhere.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestContext returns a context suitable for one test's DB operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the test MongoDB (ALUMNIVOICE_TEST_MONGO_URI,
// falling back to localhost) and returns a database unique to the test.
// The database is dropped and the client disconnected in cleanup. The test
// is skipped when no server is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("ALUMNIVOICE_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("test mongo not available at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("test mongo not reachable at %s: %v", uri, err)
	}

	name := fmt.Sprintf("alumnivoice_test_%d", time.Now().UnixNano())
	db := client.Database(name)

	t.Cleanup(func() {
		cleanCtx, cleanCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanCancel()
		_ = db.Drop(cleanCtx)
		_ = client.Disconnect(cleanCtx)
	})

	return db
}
