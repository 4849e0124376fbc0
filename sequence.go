package satchel

// Seq is a finite lazy sequence. A Seq is consumed by repeated Next
// calls and stays exhausted once done; restarting means asking the
// factory for a fresh one.
type Seq struct {
	a, b  int
	limit int
}

// Fib returns a sequence of Fibonacci numbers strictly below limit.
// Each call produces an independent iterator.
func Fib(limit int) *Seq {
	return &Seq{a: 0, b: 1, limit: limit}
}

func (s *Seq) Next() (int, bool) {
	if s.a >= s.limit {
		return 0, false
	}

	v := s.a
	s.a, s.b = s.b, s.a+s.b

	return v, true
}

// Collect drains the sequence into a slice.
func Collect(s *Seq) []int {
	var out []int
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
