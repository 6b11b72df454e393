package deck

import (
	"crypto/cipher"
	"slices"
	"testing"
)

func permutation(n int, stream cipher.Stream) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	Shuffle(n, func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	}, stream)
	return perm
}

func TestShuffleIsPermutation(t *testing.T) {
	for _, n := range []int{0, 1, 2, 13, 52} {
		perm := permutation(n, RandomStream())
		if len(perm) != n {
			t.Fatalf("expected %d elements, got %d", n, len(perm))
		}
		sorted := slices.Clone(perm)
		slices.Sort(sorted)
		for i, v := range sorted {
			if v != i {
				t.Fatalf("permutation of %d is missing %d: %v", n, i, perm)
			}
		}
	}
}

func TestSeededStreamIsDeterministic(t *testing.T) {
	a := permutation(52, SeededStream([]byte("table-7")))
	b := permutation(52, SeededStream([]byte("table-7")))
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different shuffles:\n%v\n%v", a, b)
	}
	c := permutation(52, SeededStream([]byte("table-8")))
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced the same shuffle")
	}
}

func TestShuffleNilStream(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	}, nil)
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	if !slices.Equal(sorted, []int{0, 1, 2, 3, 4, 5, 6, 7}) {
		t.Fatalf("shuffle lost elements: %v", items)
	}
}

// TestShuffleUniform checks that all 6 orderings of 3 elements show up with
// roughly equal frequency.
func TestShuffleUniform(t *testing.T) {
	const trials = 6000
	stream := SeededStream([]byte("uniformity"))
	counts := make(map[[3]int]int)
	for range trials {
		perm := permutation(3, stream)
		counts[[3]int{perm[0], perm[1], perm[2]}]++
	}
	if len(counts) != 6 {
		t.Fatalf("expected 6 distinct orderings, got %d: %v", len(counts), counts)
	}
	for perm, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("ordering %v seen %d times, expected about %d", perm, n, trials/6)
		}
	}
}

func TestIndexCoversRange(t *testing.T) {
	stream := SeededStream([]byte("index"))
	for _, bound := range []int{1, 2, 3, 52} {
		seen := make([]int, bound)
		for range 200 * bound {
			j := index(bound, stream)
			if j < 0 || j >= bound {
				t.Fatalf("index(%d) = %d out of range", bound, j)
			}
			seen[j]++
		}
		for j, n := range seen {
			if n == 0 {
				t.Errorf("index(%d) never returned %d", bound, j)
			}
		}
	}
}

// TestFirstPositionMoves checks that the element at position 0 can land
// anywhere.
func TestFirstPositionMoves(t *testing.T) {
	const n = 5
	stream := SeededStream([]byte("first"))
	landed := make([]int, n)
	for range 5000 {
		perm := permutation(n, stream)
		landed[slices.Index(perm, 0)]++
	}
	for pos, count := range landed {
		if count < 800 || count > 1200 {
			t.Errorf("element 0 landed at %d %d times, expected about 1000", pos, count)
		}
	}
}
