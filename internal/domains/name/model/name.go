package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NameEntry is the canonical record for a dictionary name. The name itself is
// the unique key and is always stored lower-case.
type NameEntry struct {
	ID              uuid.UUID    `json:"-" db:"id"`
	Name            string       `json:"name" db:"name"`
	Pronunciation   string       `json:"pronunciation" db:"pronunciation"`
	Meaning         string       `json:"meaning" db:"meaning"`
	ExtendedMeaning string       `json:"extendedMeaning" db:"extended_meaning"`
	Morphology      string       `json:"morphology" db:"morphology"`
	Etymology       []string     `json:"etymology" db:"etymology"`
	TonalMark       string       `json:"tonalMark" db:"tonal_mark"`
	Syllables       string       `json:"syllables" db:"syllables"`
	Variants        string       `json:"variants" db:"variants"`
	GeoLocation     *GeoLocation `json:"geoLocation" db:"-"`
	SubmittedBy     string       `json:"submittedBy" db:"submitted_by"`
	Indexed         bool         `json:"indexed" db:"indexed"`
	CreatedAt       time.Time    `json:"-" db:"created_at"`
	UpdatedAt       time.Time    `json:"-" db:"updated_at"`
}

// GeoLocation is the place a name is associated with. Entries reference it by
// place; region is resolved on read.
type GeoLocation struct {
	Place  string `json:"place"`
	Region string `json:"region,omitempty"`
}

// DuplicateNameEntry is an alternate submission of a name that already has a
// canonical entry. It references the canonical record by its lower-cased name
// and is removed together with it.
type DuplicateNameEntry struct {
	ID            uuid.UUID `json:"-" db:"id"`
	Name          string    `json:"name" db:"name"`
	CanonicalName string    `json:"mainEntry" db:"canonical_name"`
	SubmittedBy   string    `json:"submittedBy" db:"submitted_by"`
	CreatedAt     time.Time `json:"-" db:"created_at"`
}

// NormalizeName applies the storage invariant for name keys: trimmed and
// lower-cased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Normalize enforces the storage invariants on an entry: the name is kept
// lower-case and an absent submitter gets the historical placeholder value.
func (n *NameEntry) Normalize() {
	n.Name = NormalizeName(n.Name)
	if strings.TrimSpace(n.SubmittedBy) == "" {
		n.SubmittedBy = "Not Available"
	}
}

// NameDto is the read-model projection returned to API clients.
type NameDto struct {
	Name            string       `json:"name"`
	Pronunciation   string       `json:"pronunciation,omitempty"`
	Meaning         string       `json:"meaning,omitempty"`
	ExtendedMeaning string       `json:"extendedMeaning,omitempty"`
	Morphology      string       `json:"morphology,omitempty"`
	Etymology       []string     `json:"etymology,omitempty"`
	TonalMark       string       `json:"tonalMark,omitempty"`
	Syllables       string       `json:"syllables,omitempty"`
	Variants        string       `json:"variants,omitempty"`
	GeoLocation     *GeoLocation `json:"geoLocation,omitempty"`
	SubmittedBy     string       `json:"submittedBy"`
	Indexed         bool         `json:"indexed"`
}

// ToDto converts a NameEntry to its API projection.
func (n *NameEntry) ToDto() *NameDto {
	return &NameDto{
		Name:            n.Name,
		Pronunciation:   n.Pronunciation,
		Meaning:         n.Meaning,
		ExtendedMeaning: n.ExtendedMeaning,
		Morphology:      n.Morphology,
		Etymology:       n.Etymology,
		TonalMark:       n.TonalMark,
		Syllables:       n.Syllables,
		Variants:        n.Variants,
		GeoLocation:     n.GeoLocation,
		SubmittedBy:     n.SubmittedBy,
		Indexed:         n.Indexed,
	}
}

// EntryWithDuplicates bundles a canonical entry with its registered variants
// for GET /v1/names/{name}?duplicates=true.
type EntryWithDuplicates struct {
	MainEntry  *NameDto             `json:"mainEntry"`
	Duplicates []DuplicateNameEntry `json:"duplicates"`
}
