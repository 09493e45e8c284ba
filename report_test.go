package main

import (
	"bytes"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestTextName(t *testing.T) {
	got := TextName(1, 0.2)
	want := "config_weights_root1_thres0.2.txt"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestPlotName(t *testing.T) {
	got := PlotName(2, 0.35)
	want := "configuration_heatmap_root2_thres0.35.png"
	if got != want {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func testTable() Table {
	return Table{
		Root:  1,
		Confs: []string{"2222222u000000", "22222220u00000"},
		W: mat.NewDense(2, 2, []float64{
			0.64, 0.25,
			0.16, 0.00,
		}),
		E1:     -100.50,
		E2:     -100.45,
		DeltaE: 0.05,
	}
}

func testConfig() Config {
	return Config{
		Labels: map[string]string{
			"2222222u000000": `$\pi_1^*$`,
		},
		Geometries: map[string]string{
			"planar":  "p-NDP",
			"twisted": "NDP",
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, testTable(), testConfig(), 0.2,
		"planar", "twisted")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := buf.String()
	want := `Coefficient threshold: |c| > 0.2
p-NDP energy (Eh): -100.500000
NDP energy (Eh): -100.450000
Energy difference (Eh): 0.050000
Energy difference (eV): 1.3606
Retained weight: 0.8000 (p-NDP), 0.2500 (NDP)

Configuration	p-NDP	NDP
$\pi_1^*$	0.6400	0.2500
22222220u00000	0.1600	0.0000
`
	if got != want {
		t.Errorf("got\n%q, wanted\n%q\n", got, want)
	}
}

// an unmapped configuration and an unmapped geometry tag pass
// through unsubstituted
func TestWriteTableNoConfig(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTable(&buf, testTable(), Config{}, 0.2, "geoA", "geoB")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		"geoA energy (Eh): -100.500000",
		"Configuration\tgeoA\tgeoB",
		"2222222u000000\t0.6400\t0.2500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
