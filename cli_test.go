package main

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"Quanta/internal/catalog"
	"Quanta/internal/sweep"
)

func TestParseAssignments(t *testing.T) {
	vals, err := parseAssignments([]string{"mass=125", "vev= 246", "note=a=b"})
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("mass") != "125" || vals.Get("vev") != " 246" || vals.Get("note") != "a=b" {
		t.Errorf("unexpected values %v", vals)
	}

	for _, bad := range []string{"mass", "=125"} {
		if _, err := parseAssignments([]string{bad}); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestListCalculators(t *testing.T) {
	var buf bytes.Buffer
	if err := listCalculators(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(catalog.All())+1 {
		t.Fatalf("expected header and %d rows, got %d lines", len(catalog.All()), len(lines))
	}
	if !strings.Contains(lines[1], "maxwell") || !strings.Contains(lines[1], "E,B,rho,J") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestEvaluate(t *testing.T) {
	c, err := lookup("higgs")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := evaluate(&buf, c, url.Values{"mass": {"125"}, "vev": {"246"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Yukawa coupling: 0.3593") {
		t.Errorf("unexpected output %q", buf.String())
	}

	err = evaluate(&buf, c, url.Values{"mass": {"heavy"}, "vev": {"246"}})
	if err == nil || err.Error() != "Invalid input. Please enter numeric values." {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestEvaluateMaxwellLists(t *testing.T) {
	c, _ := lookup("maxwell")
	var buf bytes.Buffer
	if err := evaluate(&buf, c, url.Values{"E": {"1"}, "B": {"2"}, "rho": {"0"}, "J": {"0"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Faraday's Law of Induction") || !strings.Contains(buf.String(), "-2") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := lookup("graviton")
	if err == nil || !strings.Contains(err.Error(), "quark") {
		t.Errorf("expected error listing known slugs, got %v", err)
	}
}

func TestPlotSweep(t *testing.T) {
	c, _ := lookup("quark")
	var buf bytes.Buffer
	r := sweep.Range{Field: "mass", From: 0, To: 1, Steps: 10}
	if err := plotSweep(&buf, c, url.Values{}, r, ""); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Energy equivalent") {
		t.Errorf("expected caption in plot, got %q", buf.String())
	}

	c, _ = lookup("gluon")
	err := plotSweep(&buf, c, url.Values{"alpha_s": {"x"}}, sweep.Range{Field: "distance", From: 1, To: 2, Steps: 3}, "")
	if err == nil || err.Error() != "Invalid input. Please enter numeric values." {
		t.Errorf("expected invalid input error, got %v", err)
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "list", "eval", "sweep"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("expected %s subcommand, got %v", name, err)
		}
	}
}
