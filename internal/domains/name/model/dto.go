package model

import (
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Pagination defaults for GET /v1/names.
const (
	DefaultPage  = 0
	DefaultCount = 50
	MaxCount     = 500
)

// NameRequest is the payload for creating and updating a name entry.
type NameRequest struct {
	Name            string       `json:"name"`
	Pronunciation   string       `json:"pronunciation"`
	Meaning         string       `json:"meaning"`
	ExtendedMeaning string       `json:"extendedMeaning"`
	Morphology      string       `json:"morphology"`
	Etymology       []string     `json:"etymology"`
	TonalMark       string       `json:"tonalMark"`
	Syllables       string       `json:"syllables"`
	Variants        string       `json:"variants"`
	GeoLocation     *GeoLocation `json:"geoLocation"`
	SubmittedBy     string       `json:"submittedBy"`
	Indexed         bool         `json:"indexed"`
}

func (r NameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("is required"),
			validation.Length(1, 255).Error("must be between 1 and 255 characters"),
		),
		validation.Field(&r.Meaning,
			validation.Length(0, 5000).Error("must not exceed 5000 characters"),
		),
		validation.Field(&r.ExtendedMeaning,
			validation.Length(0, 10000).Error("must not exceed 10000 characters"),
		),
		validation.Field(&r.SubmittedBy,
			validation.Length(0, 255).Error("must not exceed 255 characters"),
		),
	)
}

// ToEntry converts the request into a NameEntry candidate. Normalization
// (lower-casing) is applied by the service before persistence.
func (r *NameRequest) ToEntry() *NameEntry {
	return &NameEntry{
		Name:            r.Name,
		Pronunciation:   r.Pronunciation,
		Meaning:         r.Meaning,
		ExtendedMeaning: r.ExtendedMeaning,
		Morphology:      r.Morphology,
		Etymology:       r.Etymology,
		TonalMark:       r.TonalMark,
		Syllables:       r.Syllables,
		Variants:        r.Variants,
		GeoLocation:     r.GeoLocation,
		SubmittedBy:     r.SubmittedBy,
		Indexed:         r.Indexed,
	}
}

// ListOptions carries the optional query parameters of the listing endpoint.
// SubmittedBy and Indexed are applied by the handler after the page is
// fetched, not pushed into the query.
type ListOptions struct {
	Page  int
	Count int
}

// Sanitize applies the documented defaults and bounds.
func (o *ListOptions) Sanitize() {
	if o.Page < 0 {
		o.Page = DefaultPage
	}
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.Count > MaxCount {
		o.Count = MaxCount
	}
}

// FormatFieldErrors renders ozzo validation errors in the legacy aggregated
// format: "<field> <message>" pairs joined by single spaces, fields in
// deterministic order.
func FormatFieldErrors(err error, fieldPrefix string) string {
	errs, ok := err.(validation.Errors)
	if !ok {
		return err.Error()
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		name := field
		if fieldPrefix != "" {
			name = fieldPrefix + "." + field
		}
		parts = append(parts, fmt.Sprintf("%s %s", name, errs[field].Error()))
	}
	return strings.Join(parts, " ")
}
