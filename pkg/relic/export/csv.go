// Package export serializes sentence records to tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/cognicore/relic/pkg/relic/corpus"
)

// Header is the column layout of every exported subset file.
var Header = []string{
	"source", "title", "book", "review_id", "score",
	"sentence_id", "unique_review_id", "sentence", "label",
}

// WriteCSV writes records to path as CSV, header first. An empty record set
// still produces a header-only file.
func WriteCSV(path string, recs []corpus.SentenceRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range recs {
		if err := w.Write(Row(rec)); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Row renders one record as CSV cells. Unset title, review id and score
// render as empty cells.
func Row(rec corpus.SentenceRecord) []string {
	title := ""
	if rec.Title != nil {
		title = strconv.FormatBool(*rec.Title)
	}
	reviewID := ""
	if rec.ReviewID != nil {
		reviewID = strconv.FormatInt(*rec.ReviewID, 10)
	}
	score := ""
	if rec.Score != nil {
		score = strconv.FormatFloat(*rec.Score, 'g', -1, 64)
	}
	return []string{
		rec.Source,
		title,
		rec.Book,
		reviewID,
		score,
		strconv.Itoa(rec.SentenceID),
		rec.UniqueReviewID,
		rec.Sentence,
		string(rec.Label),
	}
}
