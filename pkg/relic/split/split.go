// Package split partitions source documents into train/dev/test groups.
package split

// Fractions are the shares of documents assigned to the dev and test groups.
// The remainder is training data.
type Fractions struct {
	Dev  float64
	Test float64
}

// Groups is a disjoint partition of source documents, each group keeping the
// original listing order.
type Groups struct {
	Dev   []string
	Test  []string
	Train []string
}

// ByDocument partitions the ordered source list by position: the first
// int(n*Dev) documents go to dev, the next int(n*Test) to test, the rest to
// train. Truncation matches the original tooling, so small inputs can leave
// dev or test empty. An empty source list yields three empty groups.
func ByDocument(sources []string, f Fractions) Groups {
	n := len(sources)
	devN := int(float64(n) * f.Dev)
	testN := int(float64(n) * f.Test)

	return Groups{
		Dev:   sources[:devN],
		Test:  sources[devN : devN+testN],
		Train: sources[devN+testN:],
	}
}
