package triage

import "github.com/alexanderramin/sehat/internal/domain"

// Selection is an insertion-ordered set of symptom ids plus the free text
// entered for the custom symptom.
type Selection struct {
	ids        []domain.SymptomID
	CustomText string
}

// NewSelection builds a Selection from ids, dropping duplicates.
func NewSelection(ids ...domain.SymptomID) Selection {
	var s Selection
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Has reports whether id is selected.
func (s Selection) Has(id domain.SymptomID) bool {
	for _, x := range s.ids {
		if x == id {
			return true
		}
	}
	return false
}

// Len returns the number of distinct selected ids.
func (s Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []domain.SymptomID {
	out := make([]domain.SymptomID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Add selects id. It returns false if id was already selected.
func (s *Selection) Add(id domain.SymptomID) bool {
	if s.Has(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove deselects id. It returns false if id was not selected.
func (s *Selection) Remove(id domain.SymptomID) bool {
	for i, x := range s.ids {
		if x == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle flips id and reports whether it is now selected.
func (s *Selection) Toggle(id domain.SymptomID) bool {
	if s.Remove(id) {
		return false
	}
	return s.Add(id)
}

// Clear empties the selection and the custom text.
func (s *Selection) Clear() {
	s.ids = nil
	s.CustomText = ""
}
