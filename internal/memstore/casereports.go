package memstore

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// CaseReportStore provides CRUD over the registry's case report collection.
type CaseReportStore struct {
	r *Registry
}

// List returns copies of all case reports sorted by descending case number.
func (s *CaseReportStore) List() ([]types.CaseReport, error) {
	s.r.pause(delayReportList)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	out := make([]types.CaseReport, 0, len(s.r.reports))
	for _, rec := range s.r.reports {
		out = append(out, rec.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CaseNumber > out[j].CaseNumber
	})
	return out, nil
}

// Get returns a copy of the case report with the given id.
func (s *CaseReportStore) Get(id int) (types.CaseReport, error) {
	s.r.pause(delayReportGet)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return types.CaseReport{}, types.ErrRegistryClosed
	}

	for _, rec := range s.r.reports {
		if rec.ID == id {
			return rec.Clone(), nil
		}
	}
	return types.CaseReport{}, fmt.Errorf("case report %d: %w", id, types.ErrNotFound)
}

// Create validates the draft, assigns Id and case number as independent
// max+1 sequences, stamps the submission date, and appends the record.
// Returns a copy of the stored record.
func (s *CaseReportStore) Create(draft types.CaseReportDraft) (types.CaseReport, error) {
	if err := draft.Validate(); err != nil {
		return types.CaseReport{}, err
	}

	s.r.pause(delayReportCreate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.CaseReport{}, types.ErrRegistryClosed
	}

	maxID, maxCase := 0, 0
	for _, rec := range s.r.reports {
		if rec.ID > maxID {
			maxID = rec.ID
		}
		if rec.CaseNumber > maxCase {
			maxCase = rec.CaseNumber
		}
	}

	status := draft.Status
	if status == "" {
		status = types.StatusDraft
	}
	attachments := append([]string(nil), draft.Attachments...)
	if attachments == nil {
		attachments = []string{}
	}

	rec := types.CaseReport{
		ID:             maxID + 1,
		CaseNumber:     maxCase + 1,
		Title:          draft.Title,
		CaseType:       draft.CaseType,
		Interventions:  types.FilterBlank(draft.Interventions),
		Outcomes:       draft.Outcomes,
		Status:         status,
		SubmissionDate: s.r.now(),
		Attachments:    attachments,
	}

	s.r.reports = append(s.r.reports, rec)
	return rec.Clone(), nil
}

// Update validates and applies the patch to the record with the given id.
// Only fields the patch sets change; identity and case number never do.
// Returns a copy of the updated record.
func (s *CaseReportStore) Update(id int, patch types.CaseReportPatch) (types.CaseReport, error) {
	if err := patch.Validate(); err != nil {
		return types.CaseReport{}, err
	}

	s.r.pause(delayReportUpdate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.CaseReport{}, types.ErrRegistryClosed
	}

	for i := range s.r.reports {
		if s.r.reports[i].ID != id {
			continue
		}
		rec := &s.r.reports[i]
		if patch.Title != nil {
			rec.Title = *patch.Title
		}
		if patch.CaseType != nil {
			rec.CaseType = *patch.CaseType
		}
		if patch.Interventions != nil {
			rec.Interventions = types.FilterBlank(*patch.Interventions)
		}
		if patch.Outcomes != nil {
			rec.Outcomes = *patch.Outcomes
		}
		if patch.Status != nil {
			rec.Status = *patch.Status
		}
		if patch.Attachments != nil {
			rec.Attachments = append([]string(nil), *patch.Attachments...)
		}
		return rec.Clone(), nil
	}
	return types.CaseReport{}, fmt.Errorf("case report %d: %w", id, types.ErrNotFound)
}

// Delete removes the case report with the given id. Feedback and documents
// referencing the case are left in place; there is no cross-store cascade.
func (s *CaseReportStore) Delete(id int) error {
	s.r.pause(delayReportDelete)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.ErrRegistryClosed
	}

	for i := range s.r.reports {
		if s.r.reports[i].ID == id {
			s.r.reports = append(s.r.reports[:i], s.r.reports[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("case report %d: %w", id, types.ErrNotFound)
}
