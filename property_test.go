package huffman

import (
	"math"
	"math/rand"
	"strings"
	"testing"
)

func randomAlphabet(rng *rand.Rand, k int) []Weighted {
	perm := rng.Perm(int(MaxSymbol) + 1)
	alphabet := make([]Weighted, k)
	for i := range alphabet {
		// Small integer weights produce plenty of ties.
		alphabet[i] = Weighted{Symbol(perm[i]), float64(rng.Intn(8))}
	}
	return alphabet
}

func TestProperties_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		k := 2 + rng.Intn(60)
		alphabet := randomAlphabet(rng, k)

		tree, err := BuildFromWeights(alphabet)
		if err != nil {
			t.Fatalf("round %d: BuildFromWeights failed: %v", round, err)
		}
		if err := tree.Validate(); err != nil {
			t.Fatalf("round %d: Validate failed: %v", round, err)
		}
		if tree.NumInternal() != k-1 {
			t.Errorf("round %d: expected %d internal nodes, got %d", round, k-1, tree.NumInternal())
		}

		ct := tree.Codes()
		if ct.Len() != k {
			t.Fatalf("round %d: expected %d codes, got %d", round, k, ct.Len())
		}
		for _, w := range alphabet {
			if _, found := ct.Lookup(w.Symbol); !found {
				t.Errorf("round %d: no code for %s", round, w.Symbol)
			}
		}

		entries := ct.Entries()
		for i := range entries {
			for j := range entries {
				if i != j && entries[i].Code.HasPrefix(entries[j].Code) {
					t.Errorf("round %d: %s is a prefix of %s", round, entries[j].Code, entries[i].Code)
				}
			}
		}
		if _, err := NewDecoder(ct); err != nil {
			t.Errorf("round %d: NewDecoder failed: %v", round, err)
		}

		// Sum of 2^-len over a complete prefix code is 1.
		var kraft float64
		for _, sc := range entries {
			kraft += math.Ldexp(1, -sc.Code.Size())
		}
		if math.Abs(kraft-1) > 1e-12 {
			t.Errorf("round %d: Kraft sum %g != 1", round, kraft)
		}
	}
}

func TestProperties_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for round := 0; round < 50; round++ {
		alphabet := randomAlphabet(rng, 1+rng.Intn(30))

		var dumps [3]string
		for i := range dumps {
			var tree *Tree
			table, err := NewTable(alphabet)
			if err != nil {
				t.Fatalf("round %d: NewTable failed: %v", round, err)
			}
			if i == 2 {
				tree = BuildBySorting(table)
			} else {
				tree = Build(table)
			}
			var buf strings.Builder
			_, _ = tree.Codes().Dump(&buf)
			dumps[i] = buf.String()
		}
		if dumps[0] != dumps[1] || dumps[0] != dumps[2] {
			t.Errorf("round %d: results differ:\n\t%s\n\t%s\n\t%s", round, dumps[0], dumps[1], dumps[2])
		}
	}
}

// optimalCost finds the cheapest prefix code by brute force over every
// assignment of code lengths that satisfies the Kraft inequality.
func optimalCost(weights []float64) float64 {
	k := len(weights)
	lengths := make([]int, k)
	best := math.Inf(1)

	var search func(i int, kraft float64, cost float64)
	search = func(i int, kraft float64, cost float64) {
		if kraft > 1 || cost >= best {
			return
		}
		if i == k {
			best = cost
			return
		}
		for l := 1; l < k; l++ {
			lengths[i] = l
			search(i+1, kraft+math.Ldexp(1, -l), cost+weights[i]*float64(l))
		}
	}
	search(0, 0, 0)
	return best
}

func TestProperties_Optimal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 100; round++ {
		k := 2 + rng.Intn(5)
		alphabet := make([]Weighted, k)
		weights := make([]float64, k)
		for i := range alphabet {
			weights[i] = float64(rng.Intn(100)) / 100
			alphabet[i] = Weighted{Symbol('a' + i), weights[i]}
		}

		tree, err := BuildFromWeights(alphabet)
		if err != nil {
			t.Fatalf("round %d: BuildFromWeights failed: %v", round, err)
		}
		actual := tree.Codes().Cost()
		expect := optimalCost(weights)
		if math.Abs(actual-expect) > 1e-9 {
			t.Errorf("round %d: weights %v: expected cost %g, got %g", round, weights, expect, actual)
		}
	}
}
