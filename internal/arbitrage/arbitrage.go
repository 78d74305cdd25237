// Package arbitrage detects riskless exchange-rate cycles.
//
// A product of rates around a cycle greater than 1 means converting along
// the cycle returns more than was put in. Taking -log of each rate turns
// the product test into a negative-sum test, which Bellman-Ford detects.
package arbitrage

import (
	"errors"
	"math"
	"sort"
)

// ErrInvalidRate is returned when a quoted rate is not strictly positive.
var ErrInvalidRate = errors.New("exchange rate must be positive")

// relaxEps absorbs the floating-point residue left when consistent quotes
// (r one way, 1/r back) are mapped through -log: the pair sums to ~1e-16
// instead of zero and must not register as profit. Genuine arbitrage sums
// are many orders of magnitude larger.
const relaxEps = 1e-12

type edge struct {
	from, to string
	weight   float64
}

// Graph accumulates directed exchange rate quotes between currencies.
type Graph struct {
	edges []edge
	nodes map[string]bool
}

// NewGraph returns an empty rate graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]bool)}
}

// AddRate quotes that one unit of from buys rate units of to.
func (g *Graph) AddRate(from, to string, rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return ErrInvalidRate
	}
	g.edges = append(g.edges, edge{from: from, to: to, weight: -math.Log(rate)})
	g.nodes[from] = true
	g.nodes[to] = true
	return nil
}

// Currencies returns all quoted currencies in sorted order.
func (g *Graph) Currencies() []string {
	out := make([]string, 0, len(g.nodes))
	for n := range g.nodes {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// FindCycle runs Bellman-Ford over the negative-log weights and returns an
// arbitrage cycle as a currency sequence whose first and last entries
// coincide, or nil when no profitable cycle exists. Results are
// deterministic for a given insertion order.
func (g *Graph) FindCycle() []string {
	if len(g.edges) == 0 {
		return nil
	}

	currencies := g.Currencies()
	dist := make(map[string]float64, len(currencies))
	parent := make(map[string]string, len(currencies))
	// Starting every node at distance zero is equivalent to adding a
	// virtual source with zero-weight edges to all nodes, so cycles
	// unreachable from any single node are still found.
	for _, c := range currencies {
		dist[c] = 0
	}

	var candidate string
	for i := 0; i < len(currencies); i++ {
		candidate = ""
		for _, e := range g.edges {
			if dist[e.from]+e.weight < dist[e.to]-relaxEps {
				dist[e.to] = dist[e.from] + e.weight
				parent[e.to] = e.from
				candidate = e.to
			}
		}
		if candidate == "" {
			return nil
		}
	}

	// A node relaxed on the |V|-th pass lies on or downstream of a
	// negative cycle. Walking |V| parents lands inside the cycle.
	for i := 0; i < len(currencies); i++ {
		candidate = parent[candidate]
	}

	cycle := []string{candidate}
	for cur := parent[candidate]; cur != candidate; cur = parent[cur] {
		cycle = append(cycle, cur)
	}
	cycle = append(cycle, candidate)

	// Parent pointers walk backwards; reverse to trade order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}
	return cycle
}

// CycleProfit returns the multiplicative return of trading one unit around
// the cycle using the best quoted rate for each leg. Returns 0 when a leg
// has no quote.
func (g *Graph) CycleProfit(cycle []string) float64 {
	if len(cycle) < 2 {
		return 0
	}
	product := 1.0
	for i := 0; i+1 < len(cycle); i++ {
		best := math.Inf(1)
		found := false
		for _, e := range g.edges {
			if e.from == cycle[i] && e.to == cycle[i+1] && e.weight < best {
				best = e.weight
				found = true
			}
		}
		if !found {
			return 0
		}
		product *= math.Exp(-best)
	}
	return product
}
