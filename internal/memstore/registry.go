// Package memstore implements the in-memory store registry for casetrack.
// Each entity collection is seeded from JSON fixtures on open and lives only
// for the process lifetime; there is no persistence. All reads return deep
// copies, so callers can never mutate registry state through a result.
package memstore

import (
	"sync"
	"time"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Registry owns the four entity collections. There are no package-level
// singletons: callers create an instance, open it with a Config (and
// optionally an injected seed), and hand store accessors to whatever
// needs them.
type Registry struct {
	mu     sync.RWMutex
	open   bool
	config types.Config

	// now and sleep are injectable for tests; they default to the real
	// clock and time.Sleep.
	now   func() time.Time
	sleep func(time.Duration)

	reports   []types.CaseReport
	documents []types.Document
	feedbacks []types.Feedback
	meetings  []types.Meeting
}

// NewRegistry creates a registry that is not yet open.
func NewRegistry() *Registry {
	return &Registry{
		now:   func() time.Time { return time.Now().UTC() },
		sleep: time.Sleep,
	}
}

// Open validates the config, loads seed data from the configured fixtures
// directory (falling back to the embedded defaults), and populates the
// collections. Returns ErrAlreadyOpen when called on an open registry.
func (r *Registry) Open(config types.Config) error {
	seed, err := loadSeed(config.FixturesDir)
	if err != nil {
		return err
	}
	return r.OpenSeed(config, seed)
}

// OpenSeed opens the registry with directly injected seed data, bypassing
// fixture files. Tests and embedding applications use this form.
func (r *Registry) OpenSeed(config types.Config, seed types.Seed) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.open {
		return types.ErrAlreadyOpen
	}
	if err := config.Validate(); err != nil {
		return err
	}

	r.config = config
	r.reports = append([]types.CaseReport(nil), seed.CaseReports...)
	r.documents = append([]types.Document(nil), seed.Documents...)
	r.feedbacks = append([]types.Feedback(nil), seed.Feedbacks...)
	r.meetings = append([]types.Meeting(nil), seed.Meetings...)
	r.open = true

	return nil
}

// Close releases the collections. Idempotent: closing a closed registry
// succeeds. After Close, store operations return ErrRegistryClosed.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.open {
		return nil
	}

	r.reports = nil
	r.documents = nil
	r.feedbacks = nil
	r.meetings = nil
	r.open = false

	return nil
}

// CaseReports returns the case report store accessor.
func (r *Registry) CaseReports() *CaseReportStore { return &CaseReportStore{r: r} }

// Documents returns the document store accessor.
func (r *Registry) Documents() *DocumentStore { return &DocumentStore{r: r} }

// Feedbacks returns the feedback store accessor.
func (r *Registry) Feedbacks() *FeedbackStore { return &FeedbackStore{r: r} }

// Meetings returns the meeting store accessor.
func (r *Registry) Meetings() *MeetingStore { return &MeetingStore{r: r} }

// User returns the acting user from the open config.
func (r *Registry) User() types.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.config.User
}
