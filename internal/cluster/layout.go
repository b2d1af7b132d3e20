package cluster

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// layoutSeed seeds the random scatter used when PCA fails. Layout3D has
// no UMAP tier: every input of 3 or more files goes through the same PCA
// projection (documented in DESIGN.md), which gives a stable
// low-dimensional projection rather than a locally-faithful manifold.
const layoutSeed = 42

// Layout3D assigns every embedding a 3D position for the graph view.
// Fewer than 3 files: the raw embedding is truncated/zero-padded to 3
// dims (there's no meaningful projection with that little data). 3 or
// more: PCA reduces to min(3, dims, n) components, zero-padded out to 3.
// If PCA fails (degenerate input), positions fall back to a seeded
// random scatter rather than leaving the graph empty.
func Layout3D(embeddings [][]float64) [][3]float64 {
	n := len(embeddings)
	positions := make([][3]float64, n)
	if n == 0 {
		return positions
	}

	if n < 3 {
		for i, e := range embeddings {
			positions[i] = padTo3(e)
		}
		return positions
	}

	reduced, ok := pca(embeddings, 3)
	if !ok {
		return randomLayout(n)
	}
	for i, row := range reduced {
		positions[i] = padTo3(row)
	}
	return positions
}

func padTo3(v []float64) [3]float64 {
	var out [3]float64
	for i := 0; i < len(v) && i < 3; i++ {
		out[i] = v[i]
	}
	return out
}

// pca projects rows of embeddings onto their top `components` principal
// components via gonum/stat. Returns ok=false if the decomposition fails
// (e.g. a zero-variance input).
func pca(embeddings [][]float64, components int) ([][]float64, bool) {
	n := len(embeddings)
	dims := len(embeddings[0])
	want := components
	if dims < want {
		want = dims
	}
	if n < want {
		want = n
	}
	if want < 1 {
		return nil, false
	}

	data := mat.NewDense(n, dims, nil)
	for i, row := range embeddings {
		data.SetRow(i, row)
	}

	var pc stat.PC
	ok := pc.PrincipalComponents(data, nil)
	if !ok {
		return nil, false
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, want)
		for j := 0; j < want; j++ {
			sum := 0.0
			for d := 0; d < dims; d++ {
				sum += embeddings[i][d] * vecs.At(d, j)
			}
			row[j] = sum
		}
		out[i] = row
	}
	return out, true
}

func randomLayout(n int) [][3]float64 {
	rng := rand.New(rand.NewSource(layoutSeed))
	out := make([][3]float64, n)
	for i := range out {
		out[i] = [3]float64{rng.Float64()*2 - 1, rng.Float64()*2 - 1, rng.Float64()*2 - 1}
	}
	return out
}
