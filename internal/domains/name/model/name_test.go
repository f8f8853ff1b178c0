package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "adewale", NormalizeName("  ADEWALE "))
	assert.Equal(t, "bọlánlé", NormalizeName("BỌLÁNLÉ"), "diacritics must survive lower-casing")
	assert.Equal(t, "", NormalizeName("   "))
}

func TestNormalizeDefaultsSubmitter(t *testing.T) {
	e := &NameEntry{Name: "Kemi"}
	e.Normalize()
	assert.Equal(t, "kemi", e.Name)
	assert.Equal(t, "Not Available", e.SubmittedBy)

	e = &NameEntry{Name: "Kemi", SubmittedBy: "Alice"}
	e.Normalize()
	assert.Equal(t, "Alice", e.SubmittedBy)
}

func TestValidate_AggregatedFieldErrors(t *testing.T) {
	req := NameRequest{Meaning: "m"}
	err := req.Validate()
	require.Error(t, err)

	assert.Equal(t, "name is required", FormatFieldErrors(err, ""))
	assert.Equal(t, "entries[3].name is required", FormatFieldErrors(err, "entries[3]"))
}

func TestValidate_LengthBounds(t *testing.T) {
	long := make([]byte, 5001)
	for i := range long {
		long[i] = 'a'
	}

	req := NameRequest{Name: "fine", Meaning: string(long)}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, FormatFieldErrors(err, ""), "meaning must not exceed 5000 characters")
}

func TestListOptionsSanitize(t *testing.T) {
	cases := []struct {
		in        ListOptions
		wantPage  int
		wantCount int
	}{
		{ListOptions{}, 0, DefaultCount},
		{ListOptions{Page: -3, Count: -1}, 0, DefaultCount},
		{ListOptions{Page: 2, Count: 25}, 2, 25},
		{ListOptions{Count: 9999}, 0, MaxCount},
	}

	for _, tc := range cases {
		tc.in.Sanitize()
		assert.Equal(t, tc.wantPage, tc.in.Page)
		assert.Equal(t, tc.wantCount, tc.in.Count)
	}
}
