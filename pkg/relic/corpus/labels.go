package corpus

import "strings"

// Label is the sentence-level sentiment decision.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelMixed    Label = "mixed"
	LabelNeutral  Label = "neutral"
)

// Aggregate reduces a flat collection of per-token label strings to one
// sentence label. A label ending in '+' is positive evidence, one ending in
// '-' is negative evidence, anything else is neither. The result depends only
// on the multiset of labels, not their order.
func Aggregate(labels []string) Label {
	positive, negative := false, false
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if strings.HasSuffix(l, "+") {
			positive = true
		} else if strings.HasSuffix(l, "-") {
			negative = true
		}
	}

	switch {
	case positive && !negative:
		return LabelPositive
	case negative && !positive:
		return LabelNegative
	case positive && negative:
		return LabelMixed
	default:
		return LabelNeutral
	}
}

// convertBuffer turns accumulated content lines into the sentence text and
// its aggregate label. Each line is tab-separated: first column is the token,
// the rest are label annotations. A line with no tab contributes its token
// and no label evidence.
func convertBuffer(buf []string) (string, Label) {
	tokens := make([]string, 0, len(buf))
	var labels []string
	for _, line := range buf {
		line = strings.TrimRight(line, "\r\n")
		cols := strings.Split(line, "\t")
		tokens = append(tokens, cols[0])
		labels = append(labels, cols[1:]...)
	}
	return strings.Join(tokens, " "), Aggregate(labels)
}
