// Package exchange resolves conversion rates between currency codes from a
// sparse set of direct exchange rates. Every direct rate implies its inverse,
// so the rate table forms an undirected weighted graph.
package exchange

import (
	"container/heap"
	"errors"
	"sort"
)

// ErrNoPath is returned when no chain of exchange rates connects the two
// currencies. Callers must abort the enclosing operation; the amount was not
// converted.
var ErrNoPath = errors.New("no conversion path between currencies")

type Rate struct {
	From string
	To   string
	Rate float64
}

type Graph struct {
	adj map[string]map[string]float64
}

func NewGraph(rates []Rate) *Graph {
	adj := make(map[string]map[string]float64)
	add := func(from, to string, rate float64) {
		edges, ok := adj[from]
		if !ok {
			edges = make(map[string]float64)
			adj[from] = edges
		}
		edges[to] = rate
	}
	for _, r := range rates {
		if r.Rate <= 0 {
			continue
		}
		add(r.From, r.To, r.Rate)
		add(r.To, r.From, 1/r.Rate)
	}
	return &Graph{adj: adj}
}

// Convert converts amount from one currency to another along the path that
// maximizes the product of rates. No rounding is applied; formatting happens
// at render time.
func (g *Graph) Convert(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	best := map[string]float64{from: 1}
	visited := make(map[string]bool)
	pq := &ratePQ{{currency: from, rate: 1}}
	heap.Init(pq)
	for pq.Len() > 0 {
		current := heap.Pop(pq).(ratePath)
		if visited[current.currency] {
			continue
		}
		visited[current.currency] = true
		if current.currency == to {
			return amount * current.rate, nil
		}
		for _, next := range sortedNeighbors(g.adj[current.currency]) {
			if visited[next] {
				continue
			}
			candidate := current.rate * g.adj[current.currency][next]
			if previous, ok := best[next]; !ok || candidate > previous {
				best[next] = candidate
				heap.Push(pq, ratePath{currency: next, rate: candidate})
			}
		}
	}
	return 0, ErrNoPath
}

// sortedNeighbors keeps traversal order deterministic for a fixed rate set.
func sortedNeighbors(edges map[string]float64) []string {
	neighbors := make([]string, 0, len(edges))
	for currency := range edges {
		neighbors = append(neighbors, currency)
	}
	sort.Strings(neighbors)
	return neighbors
}

type ratePath struct {
	currency string
	rate     float64
}

// ratePQ is a max-heap on the accumulated rate product.
type ratePQ []ratePath

func (pq ratePQ) Len() int           { return len(pq) }
func (pq ratePQ) Less(i, j int) bool { return pq[i].rate > pq[j].rate }
func (pq ratePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *ratePQ) Push(x any)        { *pq = append(*pq, x.(ratePath)) }
func (pq *ratePQ) Pop() any {
	old := *pq
	last := old[len(old)-1]
	*pq = old[:len(old)-1]
	return last
}
