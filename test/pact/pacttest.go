//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "storefront-api"
	ConsumerName = "storefront-web"

	StateCustomersBaseline = "customers baseline"
	StateArticleExists     = "article with known id exists"
	StateOrderExists       = "order with known id exists in created status"
	StateOrderMissing      = "no order with the missing id"
)

const (
	ExistingArticleID = "1c8f1cc4-8d5c-4f4b-9d2f-0e2a4c9a1a01"
	ExistingOrderID   = "7be9a0f3-21d4-4a5e-8f1b-4a6f3c2d1e10"
	MissingOrderID    = "00000000-0000-0000-0000-000000000404"
	ExistingCustomer  = "9f3a1b2c-4d5e-6f70-8192-a3b4c5d6e7f8"

	CustomerEmail    = "pact.customer@example.com"
	CustomerPassword = "pact-pass"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the web consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleSubmissionPayload provides stable test data for order interactions.
func ExampleSubmissionPayload() map[string]any {
	return map[string]any{
		"customerId": ExistingCustomer,
		"lines": []map[string]any{
			{"articleId": ExistingArticleID, "quantity": 2},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
