package types

// RecordSet is the complete in-memory snapshot of every category's
// path sequence, most-recently-used first. Engine transforms never
// mutate a RecordSet they were handed; they operate on a Clone and
// return the new value.
type RecordSet map[Category][]string

// NewRecordSet returns a RecordSet with all six categories present
// and empty.
func NewRecordSet() RecordSet {
	rs := make(RecordSet, len(categories))
	for _, c := range categories {
		rs[c] = []string{}
	}
	return rs
}

// Clone returns a deep copy of rs. Sequences are copied so the result
// shares no backing arrays with the original.
func (rs RecordSet) Clone() RecordSet {
	out := make(RecordSet, len(rs))
	for c, seq := range rs {
		cp := make([]string, len(seq))
		copy(cp, seq)
		out[c] = cp
	}
	return out
}

// Equal reports whether rs and other hold the same categories with the
// same sequences in the same order. A nil sequence and an empty
// sequence are considered equal.
func (rs RecordSet) Equal(other RecordSet) bool {
	if len(rs) != len(other) {
		return false
	}
	for c, seq := range rs {
		oseq, ok := other[c]
		if !ok || len(seq) != len(oseq) {
			return false
		}
		for i := range seq {
			if seq[i] != oseq[i] {
				return false
			}
		}
	}
	return true
}
