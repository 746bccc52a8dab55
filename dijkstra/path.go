// SPDX-License-Identifier: MIT

package dijkstra

import (
	"slices"

	"github.com/katalvlaran/lvlpath/core"
)

// Reconstruct walks the predecessor chain of res's terminal record back to the
// start record and returns the node values from start to end, both inclusive.
// A nil Result yields nil.
//
// Complexity: O(path length).
func Reconstruct[K comparable](res *Result[K]) []K {
	if res == nil {
		return nil
	}
	var path []K
	for i := res.terminal; i != noPred; i = res.records[i].pred {
		path = append(path, res.records[i].Node)
	}
	slices.Reverse(path)

	return path
}

// ShortestPathCost returns the total cost of the cheapest directed path from
// start to end. It fails like Search (ErrNodeNotFound, ErrPathNotFound, ...).
func ShortestPathCost[K comparable, W core.Weight](g Store[K, W], start, end K, opts ...Option) (float64, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return 0, err
	}

	return res.Cost(), nil
}

// ShortestPathData returns the node values along the cheapest directed path
// from start to end, inclusive of both. When start == end the path is [start].
func ShortestPathData[K comparable, W core.Weight](g Store[K, W], start, end K, opts ...Option) ([]K, error) {
	res, err := Search(g, start, end, opts...)
	if err != nil {
		return nil, err
	}

	return Reconstruct(res), nil
}
