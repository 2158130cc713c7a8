package service

import (
	"github.com/pedroganco/sanum/internal/domain"
)

// MarkerCatalog resolves marker names to knowledge base entries.
type MarkerCatalog interface {
	Lookup(name string) (*domain.MarkerInfo, bool)
}

// MarkerNormalizer maps names as they appear on lab reports to the canonical
// names of the knowledge base.
type MarkerNormalizer struct {
	catalog MarkerCatalog
}

// NewMarkerNormalizer creates a normalizer over catalog
func NewMarkerNormalizer(catalog MarkerCatalog) *MarkerNormalizer {
	return &MarkerNormalizer{catalog: catalog}
}

// Resolve returns the knowledge base entry for raw, matching canonical names
// before aliases. Matching ignores case and surrounding whitespace.
func (n *MarkerNormalizer) Resolve(raw string) (*domain.MarkerInfo, bool) {
	return n.catalog.Lookup(raw)
}

// NormalizeMarkerName returns the canonical name for raw, or raw unchanged
// when it does not resolve.
func (n *MarkerNormalizer) NormalizeMarkerName(raw string) string {
	if info, ok := n.catalog.Lookup(raw); ok {
		return info.Name
	}
	return raw
}

// SelectReference picks the reference range that applies to a patient. A
// single range applies to everyone; otherwise the first range for the
// patient's sex wins, falling back to the first listed range. It returns
// false when the entry has no ranges.
func SelectReference(info *domain.MarkerInfo, sex domain.Sex) (domain.ReferenceRange, bool) {
	if info == nil || len(info.References) == 0 {
		return domain.ReferenceRange{}, false
	}
	if len(info.References) == 1 {
		return info.References[0], true
	}
	if sex != "" {
		for _, ref := range info.References {
			if ref.Sex == sex {
				return ref, true
			}
		}
	}
	return info.References[0], true
}
