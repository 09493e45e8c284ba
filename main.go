package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// DefaultThres is the coefficient magnitude below which
// configurations are dropped from the report
const DefaultThres = 0.2

// DefaultConfig is the substitution-table file loaded when no
// config= argument is given. Missing is fine, the raw strings are
// used as-is.
const DefaultConfig = "ciheat.toml"

// ParseArgs splits key=value command-line arguments into a map.
// Arguments without an = are ignored with a warning.
func ParseArgs(args []string) map[string]string {
	ret := make(map[string]string)
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr,
				"ignoring malformed argument %q\n", arg)
			continue
		}
		ret[k] = v
	}
	return ret
}

// Tag derives the geometry tag from an input filename: the base name
// with the extension stripped
func Tag(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func usage() {
	fmt.Fprintf(os.Stderr,
		"usage: ciheat geo1=file1.log geo2=file2.log "+
			"[thres=%g] [config=%s]\n",
		DefaultThres, DefaultConfig)
}

// byIndex maps the parsed roots by their printed root index
func byIndex(roots []Root) map[int]Root {
	ret := make(map[int]Root, len(roots))
	for _, r := range roots {
		ret[r.Index] = r
	}
	return ret
}

// commonRoots returns the sorted root indices present in both
// geometries; roots found in only one log are truncated away
func commonRoots(m1, m2 map[int]Root) []int {
	ret := make([]int, 0, len(m1))
	for idx := range m1 {
		if _, ok := m2[idx]; ok {
			ret = append(ret, idx)
		}
	}
	sort.Ints(ret)
	return ret
}

// warnCiroot compares the number of parsed CI sections against the
// root count requested in the input echo, if one is present
func warnCiroot(filename string, found int) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()
	if want, ok := DetectNumRoots(f); ok && want != found {
		fmt.Fprintf(os.Stderr,
			"%s: ciroot requests %d roots but %d were printed\n",
			filename, want, found)
	}
}

func main() {
	args := ParseArgs(os.Args[1:])
	geo1, ok1 := args["geo1"]
	geo2, ok2 := args["geo2"]
	if !ok1 || !ok2 {
		usage()
		os.Exit(1)
	}
	thres := DefaultThres
	if s, ok := args["thres"]; ok {
		var err error
		thres, err = strconv.ParseFloat(s, 64)
		if err != nil {
			log.Fatalf("cannot parse thres=%q as float", s)
		}
	}
	var conf Config
	if path, ok := args["config"]; ok {
		var err error
		conf, err = LoadConfig(path)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	} else if c, err := LoadConfig(DefaultConfig); err == nil {
		conf = c
	} else if !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("loading %s: %v", DefaultConfig, err)
	}

	roots1, err := ParseLogFile(geo1)
	if err != nil {
		log.Fatalln(err)
	}
	roots2, err := ParseLogFile(geo2)
	if err != nil {
		log.Fatalln(err)
	}
	warnCiroot(geo1, len(roots1))
	warnCiroot(geo2, len(roots2))

	m1 := byIndex(roots1)
	m2 := byIndex(roots2)
	if len(m1) != len(m2) {
		fmt.Fprintf(os.Stderr,
			"root count mismatch: %d in %s, %d in %s; "+
				"processing the common roots only\n",
			len(m1), geo1, len(m2), geo2)
	}
	common := commonRoots(m1, m2)

	tag1, tag2 := Tag(geo1), Tag(geo2)
	for _, idx := range common {
		t := Merge(m1[idx], m2[idx], thres)
		if t.Empty() {
			fmt.Fprintf(os.Stderr,
				"root %d: no configurations with |c| > %g, skipping\n",
				idx, thres)
			continue
		}
		txt := TextName(idx, thres)
		f, err := os.Create(txt)
		if err != nil {
			log.Fatalln(err)
		}
		if err := WriteTable(f, t, conf, thres, tag1, tag2); err != nil {
			f.Close()
			log.Fatalln(err)
		}
		f.Close()
		png := PlotName(idx, thres)
		if err := SaveHeatmap(png, t, conf, thres, tag1, tag2); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("root %d: %d configurations -> %s, %s\n",
			idx, len(t.Confs), txt, png)
	}
}
