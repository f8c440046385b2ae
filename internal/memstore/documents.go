package memstore

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// DocumentStore provides CRUD over the registry's document collection.
type DocumentStore struct {
	r *Registry
}

// List returns copies of all documents sorted by descending upload date.
func (s *DocumentStore) List() ([]types.Document, error) {
	s.r.pause(delayDocList)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	out := append([]types.Document(nil), s.r.documents...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UploadDate.After(out[j].UploadDate)
	})
	return out, nil
}

// Get returns a copy of the document with the given id.
func (s *DocumentStore) Get(id int) (types.Document, error) {
	s.r.pause(delayDocGet)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return types.Document{}, types.ErrRegistryClosed
	}

	for _, rec := range s.r.documents {
		if rec.ID == id {
			return rec, nil
		}
	}
	return types.Document{}, fmt.Errorf("document %d: %w", id, types.ErrNotFound)
}

// ListByCategory returns the documents with an exact category match, in
// collection order.
func (s *DocumentStore) ListByCategory(category string) ([]types.Document, error) {
	s.r.pause(delayDocCategory)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	var out []types.Document
	for _, rec := range s.r.documents {
		if rec.Category == category {
			out = append(out, rec)
		}
	}
	return out, nil
}

// ListRelated returns the documents attached to the given case report id.
func (s *DocumentStore) ListRelated(caseID int) ([]types.Document, error) {
	s.r.pause(delayDocRelated)
	s.r.mu.RLock()
	defer s.r.mu.RUnlock()

	if !s.r.open {
		return nil, types.ErrRegistryClosed
	}

	var out []types.Document
	for _, rec := range s.r.documents {
		if rec.RelatedCaseID != 0 && rec.RelatedCaseID == caseID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Create validates the draft, assigns the next id, stamps the upload date,
// and appends the record. Returns a copy of the stored record.
func (s *DocumentStore) Create(draft types.DocumentDraft) (types.Document, error) {
	if err := draft.Validate(); err != nil {
		return types.Document{}, err
	}

	s.r.pause(delayDocCreate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Document{}, types.ErrRegistryClosed
	}

	maxID := 0
	for _, rec := range s.r.documents {
		if rec.ID > maxID {
			maxID = rec.ID
		}
	}

	rec := types.Document{
		ID:            maxID + 1,
		Filename:      draft.Filename,
		Category:      draft.Category,
		FileSize:      draft.FileSize,
		FileType:      draft.FileType,
		UploadDate:    s.r.now(),
		RelatedCaseID: draft.RelatedCaseID,
	}

	s.r.documents = append(s.r.documents, rec)
	return rec, nil
}

// Update validates and applies the patch to the record with the given id.
// Returns a copy of the updated record.
func (s *DocumentStore) Update(id int, patch types.DocumentPatch) (types.Document, error) {
	if err := patch.Validate(); err != nil {
		return types.Document{}, err
	}

	s.r.pause(delayDocUpdate)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.Document{}, types.ErrRegistryClosed
	}

	for i := range s.r.documents {
		if s.r.documents[i].ID != id {
			continue
		}
		rec := &s.r.documents[i]
		if patch.Filename != nil {
			rec.Filename = *patch.Filename
		}
		if patch.Category != nil {
			rec.Category = *patch.Category
		}
		if patch.FileSize != nil {
			rec.FileSize = *patch.FileSize
		}
		if patch.FileType != nil {
			rec.FileType = *patch.FileType
		}
		if patch.RelatedCaseID != nil {
			rec.RelatedCaseID = *patch.RelatedCaseID
		}
		return *rec, nil
	}
	return types.Document{}, fmt.Errorf("document %d: %w", id, types.ErrNotFound)
}

// Delete removes the document with the given id.
func (s *DocumentStore) Delete(id int) error {
	s.r.pause(delayDocDelete)
	s.r.mu.Lock()
	defer s.r.mu.Unlock()

	if !s.r.open {
		return types.ErrRegistryClosed
	}

	for i := range s.r.documents {
		if s.r.documents[i].ID == id {
			s.r.documents = append(s.r.documents[:i], s.r.documents[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("document %d: %w", id, types.ErrNotFound)
}
