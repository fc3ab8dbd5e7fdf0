package split

import "testing"

func sources(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a' + i))
	}
	return out
}

func TestByDocumentDefaultFractions(t *testing.T) {
	g := ByDocument(sources(10), Fractions{Dev: 0.16, Test: 0.20})

	// int(10*0.16)=1, int(10*0.20)=2
	if len(g.Dev) != 1 || len(g.Test) != 2 || len(g.Train) != 7 {
		t.Fatalf("sizes = %d/%d/%d, want 1/2/7", len(g.Dev), len(g.Test), len(g.Train))
	}
	if g.Dev[0] != "a" || g.Test[0] != "b" || g.Train[0] != "d" {
		t.Errorf("partition broke listing order: %v %v %v", g.Dev, g.Test, g.Train)
	}
}

func TestByDocumentDisjointAndComplete(t *testing.T) {
	in := sources(9)
	g := ByDocument(in, Fractions{Dev: 0.16, Test: 0.20})

	seen := map[string]int{}
	for _, grp := range [][]string{g.Dev, g.Test, g.Train} {
		for _, s := range grp {
			seen[s]++
		}
	}
	if len(seen) != len(in) {
		t.Errorf("partition lost documents: %d of %d", len(seen), len(in))
	}
	for s, c := range seen {
		if c != 1 {
			t.Errorf("document %q appears %d times", s, c)
		}
	}
}

func TestByDocumentEmptyInput(t *testing.T) {
	g := ByDocument(nil, Fractions{Dev: 0.16, Test: 0.20})
	if len(g.Dev) != 0 || len(g.Test) != 0 || len(g.Train) != 0 {
		t.Errorf("empty input must yield empty groups: %+v", g)
	}
}

func TestByDocumentSmallInputTruncatesToTrain(t *testing.T) {
	g := ByDocument(sources(2), Fractions{Dev: 0.16, Test: 0.20})
	if len(g.Dev) != 0 || len(g.Test) != 0 || len(g.Train) != 2 {
		t.Errorf("sizes = %d/%d/%d, want 0/0/2", len(g.Dev), len(g.Test), len(g.Train))
	}
}
