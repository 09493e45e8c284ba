package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// hartree to eV, from https://physics.nist.gov/cgi-bin/cuu/Value?hrev
const htToEv = 27.2114

// TextName returns the output text file name for one root
func TextName(root int, thres float64) string {
	return fmt.Sprintf("config_weights_root%d_thres%s.txt",
		root, strconv.FormatFloat(thres, 'g', -1, 64))
}

// PlotName returns the heatmap file name for one root
func PlotName(root int, thres float64) string {
	return fmt.Sprintf("configuration_heatmap_root%d_thres%s.png",
		root, strconv.FormatFloat(thres, 'g', -1, 64))
}

// WriteTable formats the merged table for one root and writes it to
// w. tag1 and tag2 are the geometry tags derived from the input
// filenames; both they and the configuration strings are passed
// through the substitution tables in conf before printing.
func WriteTable(w io.Writer, t Table, conf Config, thres float64,
	tag1, tag2 string) error {
	nw := bufio.NewWriter(w)
	name1 := conf.Geometry(tag1)
	name2 := conf.Geometry(tag2)
	fmt.Fprintf(nw, "Coefficient threshold: |c| > %s\n",
		strconv.FormatFloat(thres, 'g', -1, 64))
	fmt.Fprintf(nw, "%s energy (Eh): %.6f\n", name1, t.E1)
	fmt.Fprintf(nw, "%s energy (Eh): %.6f\n", name2, t.E2)
	fmt.Fprintf(nw, "Energy difference (Eh): %.6f\n", t.DeltaE)
	fmt.Fprintf(nw, "Energy difference (eV): %.4f\n", t.DeltaE*htToEv)
	s1, s2 := t.Sums()
	fmt.Fprintf(nw, "Retained weight: %.4f (%s), %.4f (%s)\n",
		s1, name1, s2, name2)
	fmt.Fprint(nw, "\n")
	fmt.Fprintf(nw, "Configuration\t%s\t%s\n", name1, name2)
	for i, c := range t.Confs {
		fmt.Fprintf(nw, "%s\t%.4f\t%.4f\n",
			conf.Label(c), t.W.At(i, 0), t.W.At(i, 1))
	}
	return nw.Flush()
}
