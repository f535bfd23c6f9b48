// Package cycle hands out the prime moduli ("cycles") that drive weft's
// seed arithmetic. Every Weighted/Shuffle choice point is bound to one
// prime during compilation; selection then reduces the seed modulo that
// prime, so distinct choice points decorrelate while staying fully
// deterministic.
//
// What:
//
//   - Pool — an ordered, finite pool of 700 distinct primes, consumed
//     largest-first. Next pops one; ForLabel binds one per label and caches
//     it so co-labeled choice points share a cycle.
//
// Errors:
//
//   - ErrPoolExhausted: a fresh prime was requested and none remain.
//     Fatal to the compilation that hit it.
//
// A Pool is scoped to a single compilation and discarded afterwards; the
// compiled tree retains only the assigned primes. Pools are not safe for
// concurrent use, which never arises: compilation is single-threaded.
package cycle

import "errors"

// ErrPoolExhausted indicates a cycle was requested and none remain.
var ErrPoolExhausted = errors.New("cycle: prime pool exhausted")

// Pool allocates distinct primes in a fixed largest-first order and caches
// per-label bindings. The zero value is not usable; call NewPool.
type Pool struct {
	next   int
	labels map[string]uint64
}

// NewPool returns a full pool over the package's fixed prime table.
func NewPool() *Pool {
	return &Pool{labels: make(map[string]uint64)}
}

// Next pops and returns the next unassigned prime.
// Returns ErrPoolExhausted when the pool is empty.
func (p *Pool) Next() (uint64, error) {
	if p.next >= len(primes) {
		return 0, ErrPoolExhausted
	}
	v := primes[p.next]
	p.next++
	return v, nil
}

// ForLabel returns the prime bound to label, allocating and caching a fresh
// one on first use. Returns ErrPoolExhausted if a fresh allocation is
// needed and none remain.
func (p *Pool) ForLabel(label string) (uint64, error) {
	if v, ok := p.labels[label]; ok {
		return v, nil
	}
	v, err := p.Next()
	if err != nil {
		return 0, err
	}
	p.labels[label] = v
	return v, nil
}

// Label returns the prime currently bound to label, if any.
func (p *Pool) Label(label string) (uint64, bool) {
	v, ok := p.labels[label]
	return v, ok
}

// Bind records label as sharing an already-allocated prime, so later
// ForLabel calls return it without consuming the pool. Rebinding a label
// is the caller's error to prevent; Bind overwrites silently.
func (p *Pool) Bind(label string, prime uint64) {
	p.labels[label] = prime
}

// Remaining reports how many primes are still unassigned.
func (p *Pool) Remaining() int { return len(primes) - p.next }
