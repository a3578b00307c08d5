package transcript

// Transcript mirrors the payload returned by /api/transcript: chronological
// sentences, each a list of lines already wrapped to the overlay's budget.
type Transcript struct {
	Sentences   [][]string `json:"sentences" yaml:"sentences"`
	BlinkCursor bool       `json:"blinkCursor" yaml:"blinkCursor"`
}

// LineCount returns the total number of lines across all sentences.
func (t Transcript) LineCount() int {
	n := 0
	for _, s := range t.Sentences {
		n += len(s)
	}
	return n
}

// Clone returns a deep copy so callers can hand the transcript across
// goroutines without sharing backing arrays.
func (t Transcript) Clone() Transcript {
	out := Transcript{BlinkCursor: t.BlinkCursor}
	if len(t.Sentences) == 0 {
		return out
	}
	out.Sentences = make([][]string, len(t.Sentences))
	for i, s := range t.Sentences {
		out.Sentences[i] = append([]string(nil), s...)
	}
	return out
}

// Tail keeps only the most recent n sentences. Non-positive n keeps all.
func (t Transcript) Tail(n int) Transcript {
	if n <= 0 || len(t.Sentences) <= n {
		return t
	}
	t.Sentences = t.Sentences[len(t.Sentences)-n:]
	return t
}
