package search

import "sync/atomic"

// Session orders overlapping queries from one search surface. Each query
// takes a token from Next; a result set is committed only if its token is
// still the latest issued, so rapid successive queries cannot apply
// results out of submission order.
type Session struct {
	latest atomic.Uint64
}

// Next issues a new monotonically increasing request token.
func (s *Session) Next() uint64 {
	return s.latest.Add(1)
}

// Latest reports whether token belongs to the most recently issued query.
func (s *Session) Latest(token uint64) bool {
	return s.latest.Load() == token
}
