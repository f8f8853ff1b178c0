package importer

// ImportStatus is the transient result of one bulk import: how many entries
// went in, and every per-row failure message. It lives only for the duration
// of the request that triggered the import.
type ImportStatus struct {
	TotalRows     int      `json:"totalRows"`
	ImportedRows  int      `json:"importedRows"`
	ErrorMessages []string `json:"errorMessages,omitempty"`
}

func (s *ImportStatus) AddError(msg string) {
	s.ErrorMessages = append(s.ErrorMessages, msg)
}

func (s *ImportStatus) HasErrors() bool {
	return len(s.ErrorMessages) > 0
}

// AggregatedErrors joins all row failures into the single message blob the
// API surfaces on a failed import.
func (s *ImportStatus) AggregatedErrors() string {
	out := ""
	for i, msg := range s.ErrorMessages {
		if i > 0 {
			out += "; "
		}
		out += msg
	}
	return out
}
