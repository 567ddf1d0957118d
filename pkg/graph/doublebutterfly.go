package graph

import cbytes "github.com/r2unit/catena/pkg/bytes"

// DBHIndex is the double-butterfly-graph index function: for inner
// sub-pass j (0-indexed against garlic) it flips bit (garlic-1-j) of i if
// j is in the graph's lower half, or bit (j-(garlic-1)) in the upper half.
func DBHIndex(garlic uint8, j int, i uint64) uint64 {
	g := int(garlic)
	if j <= g-1 {
		return i ^ (1 << uint(g-1-j))
	}
	return i ^ (1 << uint(j-(g-1)))
}

// DoubleButterflyHash is F instantiated with the double-butterfly graph:
// lambda outer passes, each running 2*garlic-1 inner sub-passes that chain
// H′ across XORed neighbor pairs selected by DBHIndex.
func DoubleButterflyHash(h H, hPrime HPrime, lambda int, v []byte, wordSize, n, k int, garlic uint8) []byte {
	dim := 1 << garlic
	jLimit := 2*int(garlic) - 1

	for pass := 0; pass < lambda; pass++ {
		for j := 1; j <= jLimit; j++ {
			r := make([][]byte, dim)

			seedA := cbytes.XOR(cbytes.GetWord(v, wordSize, dim-1), cbytes.GetWord(v, wordSize, 0))
			seedB := cbytes.GetWord(v, wordSize, int(DBHIndex(garlic, j-1, 0)))
			r[0] = HFirst(h, seedA, seedB, n, k)

			for i := 1; i < dim; i++ {
				prior := cbytes.XOR(r[i-1], cbytes.GetWord(v, wordSize, i))
				neighbor := cbytes.GetWord(v, wordSize, int(DBHIndex(garlic, j-1, uint64(i))))
				r[i] = hPrime(prior, neighbor)
			}

			for i := 0; i < dim; i++ {
				cbytes.SetWord(v, wordSize, i, r[i])
			}
		}
	}

	return v
}
