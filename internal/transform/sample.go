// Package transform implements the pure warehouse transformations: product
// sampling, dimension and fact extraction, order reconstruction, and the
// calendar dimension. Everything here operates on in-memory rows and is
// deterministic for a given seed, so the persisted tables are reproducible.
package transform

import (
	"math/rand"
	"sort"

	"github.com/upcasem/profiledw/internal/warehouse"
)

// ProductSet is the materialized sample of product ids. It is computed once
// per run and handed to every extractor, so facts and dimensions always agree
// on which products survive.
type ProductSet map[string]struct{}

// Contains reports whether id is part of the sample.
func (s ProductSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// IDs returns the sampled ids in ascending order.
func (s ProductSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Sampler selects a bounded, reproducible subset of product ids.
type Sampler struct {
	rng  *rand.Rand
	size int
	prob float64
}

// NewSampler creates a sampler with its own seeded generator. The sampler
// never touches the global rand state, so runs are reproducible end to end.
func NewSampler(seed int64, size int, prob float64) *Sampler {
	return &Sampler{
		rng:  rand.New(rand.NewSource(seed)),
		size: size,
		prob: prob,
	}
}

// Sample picks at most the configured number of distinct product ids from
// events. Each distinct id is considered in ascending order and included
// independently with the configured probability, capped at the sample size.
// If there are no more distinct ids than the cap, all of them are returned.
func (s *Sampler) Sample(events []warehouse.StagingEvent) ProductSet {
	distinct := distinctProductIDs(events)

	set := make(ProductSet, s.size)
	if len(distinct) <= s.size {
		for _, id := range distinct {
			set[id] = struct{}{}
		}
		return set
	}

	for _, id := range distinct {
		if s.rng.Float64() < s.prob {
			set[id] = struct{}{}
			if len(set) == s.size {
				break
			}
		}
	}
	return set
}

func distinctProductIDs(events []warehouse.StagingEvent) []string {
	seen := make(map[string]struct{})
	for _, e := range events {
		seen[e.ProductID] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
