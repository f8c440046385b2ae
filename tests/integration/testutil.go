// Package integration exercises the casetrack stores end to end: fixture
// loading from disk, the registry lifecycle, and multi-store flows.
package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/casetrack/internal/memstore"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// TestEnv provides an isolated environment with its own fixtures directory
// and an open registry seeded from it.
type TestEnv struct {
	t           *testing.T
	FixturesDir string
	Registry    *memstore.Registry
	User        types.User
}

// NewTestEnv writes the given seed as fixture files into a temp directory
// and opens a registry against it, proving the on-disk seeding path. The
// registry is closed automatically at test cleanup.
func NewTestEnv(t *testing.T, seed types.Seed) *TestEnv {
	t.Helper()

	dir := t.TempDir()
	writeFixture(t, dir, "casereports.json", seed.CaseReports)
	writeFixture(t, dir, "documents.json", seed.Documents)
	writeFixture(t, dir, "feedbacks.json", seed.Feedbacks)
	writeFixture(t, dir, "meetings.json", seed.Meetings)

	user := types.User{ID: 1, Name: "Dr. Sarah Johnson", Role: types.RoleSupervisor, Avatar: "SJ"}
	registry := memstore.NewRegistry()
	if err := registry.Open(types.Config{FixturesDir: dir, User: user}); err != nil {
		t.Fatalf("open registry: %v", err)
	}
	t.Cleanup(func() { _ = registry.Close() })

	return &TestEnv{t: t, FixturesDir: dir, Registry: registry, User: user}
}

func writeFixture(t *testing.T, dir, name string, records any) {
	t.Helper()

	data, err := json.Marshal(records)
	if err != nil {
		t.Fatalf("marshal fixture %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func intPtr(v int) *int { return &v }
