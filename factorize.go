package units

import (
	"container/heap"
	"sort"
	"strings"
)

// FactorResult is one candidate factorization: a list of named
// quantities whose vector product equals the target vector, paired with
// a lower-is-better score. Factorize implementations return these
// ordered by score; DefaultFactorizer below is a bounded best-first
// search over the named-quantity vectors.
type FactorResult struct {
	Score int
	Names []string
}

// Factorizer decomposes a target vector into named-quantity factors:
// given a target vector and the set of named quantity vectors it may
// draw from, it returns an ordered collection of factorizations
// comparable by score. Implementations beyond DefaultFactorizer can plug
// in a different search strategy or scoring heuristic.
type Factorizer interface {
	Factorize(target Vector, names map[string]Vector) []FactorResult
}

// DefaultFactorizer is a best-first search over alias-name combinations,
// bounded so a target with no small factorization terminates instead of
// exhausting memory or time.
type DefaultFactorizer struct {
	MaxDepth   int
	MaxResults int
	MaxVisited int
}

// NewDefaultFactorizer returns a DefaultFactorizer with conservative
// bounds suitable for an interactive query.
func NewDefaultFactorizer() *DefaultFactorizer {
	return &DefaultFactorizer{MaxDepth: 6, MaxResults: 20, MaxVisited: 20000}
}

type factorState struct {
	remaining Vector
	names     []string
	weight    int
}

type factorQueue []factorState

func (q factorQueue) Len() int { return len(q) }
func (q factorQueue) Less(i, j int) bool {
	if len(q[i].names) != len(q[j].names) {
		return len(q[i].names) < len(q[j].names)
	}
	return q[i].weight < q[j].weight
}
func (q factorQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *factorQueue) Push(x any) { *q = append(*q, x.(factorState)) }

func (q *factorQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

func weightOf(v Vector) int {
	w := 0
	for _, e := range v {
		if e < 0 {
			w -= e
		} else {
			w += e
		}
	}
	return w
}

// Factorize implements Factorizer via a bounded priority-queue search,
// expanding the lowest-factor-count, lowest-remaining-weight state first.
func (f *DefaultFactorizer) Factorize(target Vector, names map[string]Vector) []FactorResult {
	candidates := make([]string, 0, len(names))
	for n, v := range names {
		if !v.IsEmpty() {
			candidates = append(candidates, n)
		}
	}
	sort.Strings(candidates)

	var results []FactorResult
	seen := map[string]bool{}

	pq := &factorQueue{{remaining: target.Clone(), weight: weightOf(target)}}
	heap.Init(pq)

	visited := 0
	for pq.Len() > 0 && visited < f.MaxVisited && len(results) < f.MaxResults {
		visited++
		cur := heap.Pop(pq).(factorState)

		if cur.remaining.IsEmpty() {
			if len(cur.names) > 0 {
				key := strings.Join(sortedCopy(cur.names), ",")
				if !seen[key] {
					seen[key] = true
					results = append(results, FactorResult{Score: len(cur.names), Names: cur.names})
				}
			}
			continue
		}
		if len(cur.names) >= f.MaxDepth {
			continue
		}

		for _, name := range candidates {
			v := names[name]
			for _, dir := range [2]int{1, -1} {
				next := cur.remaining.Sub(v.Scale(dir))
				nw := weightOf(next)
				if nw >= cur.weight+weightOf(v) {
					continue
				}
				ns := make([]string, len(cur.names)+1)
				copy(ns, cur.names)
				ns[len(cur.names)] = name
				heap.Push(pq, factorState{remaining: next, names: ns, weight: nw})
			}
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score < results[j].Score })
	return results
}

func sortedCopy(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	sort.Strings(out)
	return out
}
