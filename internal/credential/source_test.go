package credential

// sequenceSource replays vals (modulo n) and records every n it was asked for.
type sequenceSource struct {
	vals  []int
	next  int
	spans []int
}

func (s *sequenceSource) IntN(n int) int {
	s.spans = append(s.spans, n)
	v := s.vals[s.next%len(s.vals)] % n
	s.next++
	return v
}
