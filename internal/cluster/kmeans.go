package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// kmeansSeed and kmeansRestarts mirror the original's
// `random_state=42, n_init=10`: the run is deterministic given identical
// input, and the best of several restarts (by inertia) is kept.
const (
	kmeansSeed     = 42
	kmeansRestarts = 10
	kmeansMaxIters = 300
)

// kmeansResult holds one clustering attempt.
type kmeansResult struct {
	labels    []int
	centroids [][]float64
	inertia   float64
}

// runKMeans clusters points into k groups using Lloyd's algorithm, keeping
// the best of kmeansRestarts random-seeded attempts by inertia (sum of
// squared distances to assigned centroid).
func runKMeans(points [][]float64, k int) kmeansResult {
	rng := rand.New(rand.NewSource(kmeansSeed))

	var best kmeansResult
	best.inertia = math.Inf(1)

	for attempt := 0; attempt < kmeansRestarts; attempt++ {
		result := kmeansOnce(points, k, rng)
		if result.inertia < best.inertia {
			best = result
		}
	}
	return best
}

func kmeansOnce(points [][]float64, k int, rng *rand.Rand) kmeansResult {
	n := len(points)
	centroids := initCentroids(points, k, rng)
	labels := make([]int, n)

	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i, p := range points {
			closest, _ := nearestCentroid(p, centroids)
			if labels[i] != closest {
				labels[i] = closest
				changed = true
			}
		}

		newCentroids := recomputeCentroids(points, labels, k, centroids)
		centroids = newCentroids

		if !changed && iter > 0 {
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		_, dist := nearestCentroid(p, centroids)
		_ = i
		inertia += dist * dist
	}

	return kmeansResult{labels: labels, centroids: centroids, inertia: inertia}
}

// initCentroids picks k distinct starting points uniformly at random, the
// same "random" init strategy the original configures explicitly
// (init="random") rather than k-means++.
func initCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	perm := rng.Perm(len(points))
	centroids := make([][]float64, k)
	for i := 0; i < k; i++ {
		src := points[perm[i]]
		c := make([]float64, len(src))
		copy(c, src)
		centroids[i] = c
	}
	return centroids
}

func nearestCentroid(p []float64, centroids [][]float64) (int, float64) {
	best := 0
	bestDist := math.Inf(1)
	for i, c := range centroids {
		d := floats.Distance(p, c, 2)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, bestDist
}

func recomputeCentroids(points [][]float64, labels []int, k int, prev [][]float64) [][]float64 {
	dims := len(points[0])
	sums := make([][]float64, k)
	counts := make([]int, k)
	for i := range sums {
		sums[i] = make([]float64, dims)
	}

	for i, p := range points {
		c := labels[i]
		floats.Add(sums[c], p)
		counts[c]++
	}

	out := make([][]float64, k)
	for i := 0; i < k; i++ {
		if counts[i] == 0 {
			// Empty cluster: keep its previous centroid rather than
			// reseeding, so convergence doesn't thrash on outliers.
			out[i] = prev[i]
			continue
		}
		mean := make([]float64, dims)
		copy(mean, sums[i])
		floats.Scale(1/float64(counts[i]), mean)
		out[i] = mean
	}
	return out
}

// silhouetteScore computes the mean silhouette coefficient for a labeling,
// used to pick k in ChooseK.
func silhouetteScore(points [][]float64, labels []int) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}

	sum := 0.0
	for i := range points {
		a := meanIntraClusterDistance(points, labels, i)
		b := meanNearestOtherClusterDistance(points, labels, i)
		maxAB := math.Max(a, b)
		if maxAB == 0 {
			continue
		}
		sum += (b - a) / maxAB
	}
	return sum / float64(n)
}

func meanIntraClusterDistance(points [][]float64, labels []int, idx int) float64 {
	own := labels[idx]
	total, count := 0.0, 0
	for j, p := range points {
		if j == idx || labels[j] != own {
			continue
		}
		total += floats.Distance(points[idx], p, 2)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func meanNearestOtherClusterDistance(points [][]float64, labels []int, idx int) float64 {
	own := labels[idx]
	sums := map[int]float64{}
	counts := map[int]int{}
	for j, p := range points {
		if labels[j] == own {
			continue
		}
		sums[labels[j]] += floats.Distance(points[idx], p, 2)
		counts[labels[j]]++
	}

	best := math.Inf(1)
	for cid, total := range sums {
		mean := total / float64(counts[cid])
		if mean < best {
			best = mean
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}
	return best
}

// ChooseK runs k-means for every k in [2, min(maxK, n-1)] and returns the
// labeling with the best silhouette score, ties broken toward the
// smaller k.
func ChooseK(points [][]float64, maxK int) (k int, labels []int) {
	n := len(points)
	upper := maxK
	if n-1 < upper {
		upper = n - 1
	}
	if upper < 2 {
		// Fewer than 2 uncategorized files can't be split further;
		// callers handle n<2 before reaching here.
		return 1, make([]int, n)
	}

	bestK := 2
	bestScore := math.Inf(-1)
	var bestLabels []int

	for candidate := 2; candidate <= upper; candidate++ {
		result := runKMeans(points, candidate)
		score := silhouetteScore(points, result.labels)
		if score > bestScore {
			bestScore = score
			bestK = candidate
			bestLabels = result.labels
		}
	}

	return bestK, bestLabels
}
