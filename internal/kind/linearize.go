package kind

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// mroCacheSize bounds the number of linearizations kept in memory. Lattices
// are rebuilt per session, so a modest bound is enough.
const mroCacheSize = 256

var mroCache *lru.Cache[*Kind, []*Kind]

func init() {
	cache, err := lru.New[*Kind, []*Kind](mroCacheSize)
	if err != nil {
		panic(fmt.Sprintf("kind: cannot create mro cache: %v", err))
	}
	mroCache = cache
}

// MRO returns the C3 linearization of k, most specific first, caching the
// result for the lifetime of the kind.
func MRO(k *Kind) ([]*Kind, error) {
	if cached, ok := mroCache.Get(k); ok {
		return cached, nil
	}
	seq, err := Linearize(k)
	if err != nil {
		return nil, err
	}
	mroCache.Add(k, seq)
	return seq, nil
}

// Linearize computes the C3 linearization of k without consulting the cache.
// It fails when the base ordering is inconsistent (no valid merge exists).
func Linearize(k *Kind) ([]*Kind, error) {
	if len(k.bases) == 0 {
		return []*Kind{k}, nil
	}
	sequences := make([][]*Kind, 0, len(k.bases)+1)
	for _, base := range k.bases {
		seq, err := MRO(base)
		if err != nil {
			return nil, err
		}
		sequences = append(sequences, append([]*Kind(nil), seq...))
	}
	sequences = append(sequences, append([]*Kind(nil), k.bases...))

	merged, err := merge(sequences)
	if err != nil {
		return nil, fmt.Errorf("inconsistent lattice for kind %s: %w", k.name, err)
	}
	return append([]*Kind{k}, merged...), nil
}

// merge implements the C3 merge step: repeatedly take the head of some
// sequence that appears in no other sequence's tail.
func merge(sequences [][]*Kind) ([]*Kind, error) {
	var result []*Kind
	for {
		sequences = pruneEmpty(sequences)
		if len(sequences) == 0 {
			return result, nil
		}
		candidate := pickHead(sequences)
		if candidate == nil {
			return nil, fmt.Errorf("no valid C3 merge order")
		}
		result = append(result, candidate)
		for i, seq := range sequences {
			if len(seq) > 0 && seq[0] == candidate {
				sequences[i] = seq[1:]
			}
		}
	}
}

func pruneEmpty(sequences [][]*Kind) [][]*Kind {
	kept := sequences[:0]
	for _, seq := range sequences {
		if len(seq) > 0 {
			kept = append(kept, seq)
		}
	}
	return kept
}

func pickHead(sequences [][]*Kind) *Kind {
	for _, seq := range sequences {
		head := seq[0]
		if inAnyTail(head, sequences) {
			continue
		}
		return head
	}
	return nil
}

func inAnyTail(k *Kind, sequences [][]*Kind) bool {
	for _, seq := range sequences {
		for _, other := range seq[1:] {
			if other == k {
				return true
			}
		}
	}
	return false
}
