package records

import "strings"

// FilterHistory keeps records whose patient name, patient id or record id
// contains term, ignoring case. Order is preserved and the input is not
// modified. An empty term matches everything; the term is not trimmed.
func FilterHistory(in []HistoryRecord, term string) []HistoryRecord {
	needle := strings.ToLower(term)
	out := make([]HistoryRecord, 0, len(in))
	for _, r := range in {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Patient), needle) ||
			strings.Contains(strings.ToLower(r.PatientID), needle) ||
			strings.Contains(strings.ToLower(r.ID), needle) {
			out = append(out, r)
		}
	}
	return out
}
