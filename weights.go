package main

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Table is the merged weight table for one root: one row per
// configuration surviving the threshold in either geometry, with the
// two geometries' weights side by side. DeltaE = E2 - E1.
type Table struct {
	Root   int
	Confs  []string
	W      *mat.Dense
	E1, E2 float64
	DeltaE float64
}

// Empty reports whether no configuration survived the threshold
func (t Table) Empty() bool {
	return len(t.Confs) == 0
}

// Sums returns the total retained weight per geometry
func (t Table) Sums() (w1, w2 float64) {
	if t.Empty() {
		return 0, 0
	}
	return floats.Sum(mat.Col(nil, 0, t.W)), floats.Sum(mat.Col(nil, 1, t.W))
}

// survivors returns conf -> weight for the entries of r whose
// coefficient magnitude strictly exceeds thres
func survivors(r Root, thres float64) map[string]float64 {
	ret := make(map[string]float64)
	for _, e := range r.Entries {
		if math.Abs(e.Coeff) > thres {
			ret[e.Conf] = e.Weight
		}
	}
	return ret
}

// Merge builds the per-root comparison table from the same root
// parsed out of the two geometries. A configuration is retained if
// its coefficient magnitude exceeds thres in either geometry; the
// side where it fell below (or never appeared) contributes 0.0.
// Rows are ordered by descending larger weight, ties broken by the
// configuration string, so output is deterministic run to run.
func Merge(r1, r2 Root, thres float64) Table {
	w1 := survivors(r1, thres)
	w2 := survivors(r2, thres)
	confs := make([]string, 0, len(w1)+len(w2))
	for c := range w1 {
		confs = append(confs, c)
	}
	for c := range w2 {
		if _, ok := w1[c]; !ok {
			confs = append(confs, c)
		}
	}
	sort.Slice(confs, func(i, j int) bool {
		mi := math.Max(w1[confs[i]], w2[confs[i]])
		mj := math.Max(w1[confs[j]], w2[confs[j]])
		if mi != mj {
			return mi > mj
		}
		return confs[i] < confs[j]
	})
	t := Table{
		Root:   r1.Index,
		Confs:  confs,
		E1:     r1.Energy,
		E2:     r2.Energy,
		DeltaE: r2.Energy - r1.Energy,
	}
	if len(confs) == 0 {
		return t
	}
	t.W = mat.NewDense(len(confs), 2, nil)
	for i, c := range confs {
		t.W.Set(i, 0, w1[c])
		t.W.Set(i, 1, w2[c])
	}
	return t
}
