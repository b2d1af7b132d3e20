package cluster

import "context"

// FileInput is the minimal view of a tracked file the Clustering Engine
// needs: identity, text for scoring/naming, and an embedding for the
// KMeans fallback and the 3D layout.
type FileInput struct {
	Path      string
	Name      string
	Text      string
	Embedding []float32
}

// Assignment is one file's outcome of a reclustering pass.
type Assignment struct {
	Path      string
	ClusterID int
	Position  [3]float64
}

// ClusterInfo describes one cluster in the rebuilt table.
type ClusterInfo struct {
	ID        int
	Name      string
	Color     string
	FileCount int
}

// provisionalCluster accumulates files under a not-yet-finalized
// cluster id, in the order clusters are first created — the
// deduplication pass scans in id order, so that order must be stable
// and meaningful.
type provisionalCluster struct {
	name  string
	files []FileInput
}

// Recluster runs the full hybrid grouping algorithm over every
// currently-tracked file: per-file keyword categorization, KMeans
// fallback on the leftovers, name de-duplication, dense id
// reassignment, and a 3D layout over every embedding. It does not
// modify the Index — callers apply the result to the Index. Naming may
// fill the name cache and call the naming service through namer.
func Recluster(ctx context.Context, files []FileInput, maxK int, namer *Namer) ([]ClusterInfo, []Assignment) {
	if len(files) == 0 {
		return nil, nil
	}

	provisional, uncategorized := categorizeAll(files)
	provisional = append(provisional, subclusterUncategorized(ctx, uncategorized, maxK, namer)...)
	provisional = dedupeByName(provisional)

	clusters := make([]ClusterInfo, len(provisional))
	fileToCluster := make(map[string]int, len(files))
	for id, c := range provisional {
		clusters[id] = ClusterInfo{
			ID:        id,
			Name:      c.name,
			Color:     ColorForID(id),
			FileCount: len(c.files),
		}
		for _, f := range c.files {
			fileToCluster[f.Path] = id
		}
	}

	positions := layoutAll(files)

	assignments := make([]Assignment, len(files))
	for i, f := range files {
		assignments[i] = Assignment{
			Path:      f.Path,
			ClusterID: fileToCluster[f.Path],
			Position:  positions[i],
		}
	}

	return clusters, assignments
}

// categorizeAll implements Step 1 (per-file category detection) and Step
// 2 (grouping into one cluster per distinct category), preserving the
// order categories are first encountered across the file list.
func categorizeAll(files []FileInput) ([]provisionalCluster, []FileInput) {
	var provisional []provisionalCluster
	index := map[string]int{}
	var uncategorized []FileInput

	for _, f := range files {
		category, ok := CategorizeFile(f.Text, f.Name)
		if !ok {
			uncategorized = append(uncategorized, f)
			continue
		}
		if idx, seen := index[category]; seen {
			provisional[idx].files = append(provisional[idx].files, f)
			continue
		}
		index[category] = len(provisional)
		provisional = append(provisional, provisionalCluster{name: category, files: []FileInput{f}})
	}

	return provisional, uncategorized
}

// subclusterUncategorized implements Step 3. A single leftover file
// becomes its own "General Documents" cluster; two or more run through
// KMeans (k chosen by silhouette score) and each resulting group is
// named via NameUncategorizedGroup's keyword/TF-IDF/filename fallback
// chain.
func subclusterUncategorized(ctx context.Context, files []FileInput, maxK int, namer *Namer) []provisionalCluster {
	if len(files) == 0 {
		return nil
	}
	if len(files) == 1 {
		return []provisionalCluster{{name: "General Documents", files: files}}
	}

	points := make([][]float64, len(files))
	for i, f := range files {
		points[i] = toFloat64(f.Embedding)
	}

	_, labels := ChooseK(points, maxK)

	groups := map[int][]FileInput{}
	var order []int
	for i, label := range labels {
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], files[i])
	}

	out := make([]provisionalCluster, 0, len(order))
	for _, label := range order {
		group := groups[label]
		texts := make([]string, len(group))
		names := make([]string, len(group))
		for i, f := range group {
			texts[i] = f.Text
			names[i] = f.Name
		}
		var name string
		if namer != nil {
			name = namer.Name(ctx, texts, names)
		} else {
			name = NameUncategorizedGroup(texts, names)
		}
		out = append(out, provisionalCluster{name: name, files: group})
	}
	return out
}

// dedupeByName implements Step 4: scanning in id order, a cluster whose
// name collides with one already seen is merged into the earlier one.
func dedupeByName(clusters []provisionalCluster) []provisionalCluster {
	out := make([]provisionalCluster, 0, len(clusters))
	seen := map[string]int{}

	for _, c := range clusters {
		if idx, dup := seen[c.name]; dup {
			out[idx].files = append(out[idx].files, c.files...)
			continue
		}
		seen[c.name] = len(out)
		out = append(out, c)
	}
	return out
}

func layoutAll(files []FileInput) [][3]float64 {
	points := make([][]float64, len(files))
	for i, f := range files {
		points[i] = toFloat64(f.Embedding)
	}
	return Layout3D(points)
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
