package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cognicore/relic/pkg/relic/internalerr"
)

// Kind identifies what a raw corpus line is.
type Kind int

const (
	// KindContent is a token+label line that belongs to the current sentence.
	KindContent Kind = iota
	// KindSkip is a structural annotation line, invisible to extraction.
	KindSkip
	// KindBlank separates sentences.
	KindBlank
	// KindTitle marks the start of a title block.
	KindTitle
	// KindBody marks the start of a body block.
	KindBody
	// KindBook carries the current book name.
	KindBook
	// KindReviewID carries the current review id.
	KindReviewID
	// KindScore carries the current review score.
	KindScore
)

// Directives holds the reserved line prefixes of the corpus dialect.
type Directives struct {
	Title    string
	Body     string
	Book     string
	ReviewID string
	Score    string
	Skip     string
}

// DefaultDirectives returns the ReLi corpus prefixes.
func DefaultDirectives() Directives {
	return Directives{
		Title:    "#Título",
		Body:     "#Corpo",
		Book:     "#Livro",
		ReviewID: "#Resenha",
		Score:    "#Nota",
		Skip:     "[",
	}
}

// Classification is the tagged result of classifying one line. The value
// fields are populated only for the directive kind that carries them.
type Classification struct {
	Kind     Kind
	Book     string
	ReviewID int64
	Score    float64
}

// Classifier classifies raw lines against a directive vocabulary. It is
// stateless: classification is a pure function of the line text.
type Classifier struct {
	d Directives
}

// NewClassifier creates a classifier for the given directive prefixes.
func NewClassifier(d Directives) *Classifier {
	return &Classifier{d: d}
}

// Classify assigns exactly one kind to the line. Precedence: skip, then the
// directive prefixes, then blank, then content. Directive values that fail to
// parse return an error wrapping internalerr.ErrMalformedDirective.
func (c *Classifier) Classify(text string) (Classification, error) {
	switch {
	case strings.HasPrefix(text, c.d.Skip):
		return Classification{Kind: KindSkip}, nil
	case strings.HasPrefix(text, c.d.Title):
		return Classification{Kind: KindTitle}, nil
	case strings.HasPrefix(text, c.d.Body):
		return Classification{Kind: KindBody}, nil
	case strings.HasPrefix(text, c.d.Book):
		return Classification{Kind: KindBook, Book: directiveValue(text, c.d.Book)}, nil
	case strings.HasPrefix(text, c.d.ReviewID):
		v := directiveValue(text, c.d.ReviewID)
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Classification{}, fmt.Errorf("review id %q: %w", v, internalerr.ErrMalformedDirective)
		}
		return Classification{Kind: KindReviewID, ReviewID: id}, nil
	case strings.HasPrefix(text, c.d.Score):
		v := directiveValue(text, c.d.Score)
		score, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Classification{}, fmt.Errorf("score %q: %w", v, internalerr.ErrMalformedDirective)
		}
		return Classification{Kind: KindScore, Score: score}, nil
	case strings.TrimSpace(text) == "":
		return Classification{Kind: KindBlank}, nil
	default:
		return Classification{Kind: KindContent}, nil
	}
}

// directiveValue strips the prefix and the underscore/whitespace padding that
// bounds directive values ("#Livro_A Casa_" → "A Casa"). Interior
// underscores are preserved.
func directiveValue(text, prefix string) string {
	v := strings.TrimPrefix(text, prefix)
	v = strings.TrimSpace(v)
	v = strings.Trim(v, "_")
	return strings.TrimSpace(v)
}
