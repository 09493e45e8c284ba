package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Errors
var (
	ErrFileNotFound   = errors.New("log file not found")
	ErrNoRoots        = errors.New("no CI root sections found")
	ErrEnergyNotFound = errors.New("energy not found for root")
)

// Entry is one configuration extracted from a CI-coefficient
// printout. Weight is the square of Coeff, computed once at parse
// time so both geometries get the same transform.
type Entry struct {
	Conf   string
	Coeff  float64
	Weight float64
}

// Root holds the parsed contents of one CI root section: its index
// as printed in the log, the state energy, and the configuration
// entries in order of first appearance.
type Root struct {
	Index     int
	Energy    float64
	HasEnergy bool
	Entries   []Entry
}

// rootMark delimits the CI printout for one root in a RASSCF
// section; the root index is the last field of the line
const rootMark = "printout of CI-coefficients larger than"

// confLine matches one printed configuration: a counter, an
// occupation string over the alphabet 0-2/u/d/*, the CI coefficient,
// and the weight column (recomputed from the coefficient, not taken
// from the log)
var confLine = regexp.MustCompile(
	`^\s*(\d+)\s+([0-2ud*]+)\s+(-?\d+\.\d+)\s+(\d+\.\d+)`,
)

// ParseLog scans an OpenMolcas log for CI root sections and returns
// one Root per section, in printout order. Lines inside a section
// that do not match the configuration pattern are skipped. A section
// with no matching lines yields a Root with empty Entries. A section
// with entries but no energy= line is an error: coefficients without
// an energy cannot be compared between geometries.
func ParseLog(r io.Reader) ([]Root, error) {
	var (
		ret     []Root
		cur     *Root
		seen    map[string]int
		confLen int
		scanner = bufio.NewScanner(r)
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.Entries) > 0 && !cur.HasEnergy {
			return fmt.Errorf("root %d: %w", cur.Index, ErrEnergyNotFound)
		}
		ret = append(ret, *cur)
		cur = nil
		return nil
	}
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, rootMark):
			if err := finish(); err != nil {
				return nil, err
			}
			fields := strings.Fields(line)
			idx, err := strconv.Atoi(fields[len(fields)-1])
			if err != nil {
				continue
			}
			cur = &Root{Index: idx}
			seen = make(map[string]int)
			confLen = 0
		case cur == nil:
			// outside any root section
		case strings.Contains(line, "energy="):
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				continue
			}
			cur.Energy = v
			cur.HasEnergy = true
		case strings.Contains(line, "Natural orbitals and occupation numbers"),
			strings.Contains(line, "----"),
			strings.Contains(line, "===="):
			if err := finish(); err != nil {
				return nil, err
			}
		default:
			m := confLine.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			// occupation strings are fixed-width within one
			// section; a different length means a truncated
			// or stray line, not a new configuration
			if confLen == 0 {
				confLen = len(m[2])
			} else if len(m[2]) != confLen {
				continue
			}
			c, err := strconv.ParseFloat(m[3], 64)
			if err != nil {
				continue
			}
			e := Entry{Conf: m[2], Coeff: c, Weight: c * c}
			// a repeated configuration within one section
			// overwrites the earlier occurrence in place
			if i, ok := seen[e.Conf]; ok {
				cur.Entries[i] = e
			} else {
				seen[e.Conf] = len(cur.Entries)
				cur.Entries = append(cur.Entries, e)
			}
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

// ParseLogFile opens filename and parses it with ParseLog. A file
// that opens but contains no root sections returns ErrNoRoots so the
// caller can distinguish "unreadable" from "readable but no CI data"
func ParseLogFile(filename string) ([]Root, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, filename)
	}
	defer f.Close()
	roots, err := ParseLog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoRoots)
	}
	return roots, nil
}

// DetectNumRoots scans for the input-echo line of the form
// "ciroot = N N 1" and returns the requested root count. The second
// return is false if no such line is found. Only used to warn when
// the printout disagrees with the request.
func DetectNumRoots(r io.Reader) (int, bool) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(strings.ToLower(line), "ciroot") {
			continue
		}
		// "ciroot" can occur in prose before the input echo;
		// keep scanning until a line actually parses
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
