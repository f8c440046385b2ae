package memstore

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Default fixtures shipped with the binary. A configured fixtures directory
// overrides them file by file; any fixture missing from the directory falls
// back to the embedded copy.
//
//go:embed fixtures/*.json
var defaultFixtures embed.FS

// Fixture file names. Each holds a flat JSON array of one entity type.
const (
	fixtureCaseReports = "casereports.json"
	fixtureDocuments   = "documents.json"
	fixtureFeedbacks   = "feedbacks.json"
	fixtureMeetings    = "meetings.json"
)

// loadSeed reads the four fixture files into a Seed. dir may be empty, in
// which case only the embedded defaults are used.
func loadSeed(dir string) (types.Seed, error) {
	var seed types.Seed
	if err := loadFixture(dir, fixtureCaseReports, &seed.CaseReports); err != nil {
		return types.Seed{}, err
	}
	if err := loadFixture(dir, fixtureDocuments, &seed.Documents); err != nil {
		return types.Seed{}, err
	}
	if err := loadFixture(dir, fixtureFeedbacks, &seed.Feedbacks); err != nil {
		return types.Seed{}, err
	}
	if err := loadFixture(dir, fixtureMeetings, &seed.Meetings); err != nil {
		return types.Seed{}, err
	}
	return seed, nil
}

// loadFixture unmarshals one fixture file into v, preferring dir over the
// embedded defaults.
func loadFixture(dir, name string, v any) error {
	var (
		data []byte
		err  error
	)
	if dir != "" {
		data, err = os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			data, err = defaultFixtures.ReadFile("fixtures/" + name)
		}
	} else {
		data, err = defaultFixtures.ReadFile("fixtures/" + name)
	}
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}
