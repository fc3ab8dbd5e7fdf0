package corpus

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Metadata is the snapshot of directive state carried by every emitted
// sentence. Title, ReviewID and Score are nil until the corresponding
// directive has been seen. Book, ReviewID and Score are sticky: they keep
// their last-set value across sentence and document boundaries until
// overwritten.
type Metadata struct {
	Source         string
	Title          *bool
	Book           string
	ReviewID       *int64
	Score          *float64
	SentenceID     int
	UniqueReviewID string
}

// SentenceRecord is one extracted sentence with the metadata snapshot taken
// at emission time.
type SentenceRecord struct {
	Metadata
	Sentence string
	Label    Label
}

// ScannerOptions configures a sentence scan.
type ScannerOptions struct {
	// Directives is the line prefix vocabulary; zero value means
	// DefaultDirectives.
	Directives Directives
	// StrictBoundaries resets book, review id, score and the title flag at
	// every document change instead of letting them leak into the next
	// document.
	StrictBoundaries bool
}

// Scanner walks a line stream and assembles labeled sentences. It is a
// single-use lazy iterator in the bufio.Scanner style:
//
//	sc := corpus.NewScanner(lines, corpus.ScannerOptions{})
//	for sc.Scan() {
//		rec := sc.Record()
//		...
//	}
//	if err := sc.Err(); err != nil { ... }
//
// A sentence is emitted at every boundary: a blank line, a document change,
// or the end of the stream. Re-scanning requires a fresh Scanner over a fresh
// LineReader.
type Scanner struct {
	lines  LineReader
	cls    *Classifier
	strict bool

	meta     Metadata
	buf      []string
	prevDoc  string
	havePrev bool
	idx      int

	rec  SentenceRecord
	err  error
	done bool
}

// NewScanner creates a scanner over the given line stream.
func NewScanner(lines LineReader, opts ScannerOptions) *Scanner {
	d := opts.Directives
	if d == (Directives{}) {
		d = DefaultDirectives()
	}
	return &Scanner{
		lines:  lines,
		cls:    NewClassifier(d),
		strict: opts.StrictBoundaries,
		meta:   Metadata{SentenceID: -1},
	}
}

// Scan advances to the next sentence. It returns false at the end of the
// stream or on the first error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done || s.err != nil {
		return false
	}
	for {
		line, err := s.lines.Next()
		if err == io.EOF {
			s.done = true
			if len(s.buf) > 0 {
				s.rec = s.emit()
				return true
			}
			return false
		}
		if err != nil {
			s.err = err
			return false
		}

		rec, err := s.step(line)
		if err != nil {
			s.err = err
			s.done = true
			// A document-change flush that preceded the error is still a
			// complete sentence and is delivered before Err reports.
			if rec != nil {
				s.rec = *rec
				return true
			}
			return false
		}
		if rec != nil {
			s.rec = *rec
			return true
		}
	}
}

// Record returns the sentence produced by the last successful Scan. The
// record does not alias scanner state and stays valid across further calls.
func (s *Scanner) Record() SentenceRecord {
	return s.rec
}

// Err returns the first error encountered, or nil if the stream ended
// cleanly.
func (s *Scanner) Err() error {
	return s.err
}

// step is the reducer: it consumes one line, mutates scanner state, and
// returns a record when the line completed a sentence. At most one record
// can result from one line.
func (s *Scanner) step(line RawLine) (*SentenceRecord, error) {
	idx := s.idx
	s.idx++

	// A document change flushes the pending sentence before anything else on
	// the new line is looked at, so sentences never span documents.
	var flushed *SentenceRecord
	if s.havePrev && line.Doc != s.prevDoc {
		if len(s.buf) > 0 {
			rec := s.emit()
			flushed = &rec
		}
		if s.strict {
			s.meta.Title = nil
			s.meta.Book = ""
			s.meta.ReviewID = nil
			s.meta.Score = nil
		}
	}

	cls, err := s.cls.Classify(line.Text)
	if err != nil {
		return flushed, fmt.Errorf("%s: line %q: %w", line.Doc, strings.TrimRight(line.Text, "\r\n"), err)
	}

	// Skip lines bypass metadata refresh and boundary logic entirely. They
	// still consume a line ordinal.
	if cls.Kind == KindSkip {
		return flushed, nil
	}

	s.meta.SentenceID = idx
	s.meta.Source = line.Doc
	s.meta.UniqueReviewID = uniqueReviewID(line.Doc, s.meta.Book, s.meta.ReviewID)

	switch cls.Kind {
	case KindTitle:
		t := true
		s.meta.Title = &t
	case KindBody:
		f := false
		s.meta.Title = &f
	case KindBook:
		s.meta.Book = cls.Book
	case KindReviewID:
		id := cls.ReviewID
		s.meta.ReviewID = &id
	case KindScore:
		score := cls.Score
		s.meta.Score = &score
	case KindBlank:
		if len(s.buf) > 0 {
			rec := s.emit()
			flushed = &rec
		}
		s.prevDoc = line.Doc
		s.havePrev = true
	default: // content
		s.buf = append(s.buf, line.Text)
		s.prevDoc = line.Doc
		s.havePrev = true
	}
	return flushed, nil
}

// emit converts the buffer into a record with a copy of the current metadata
// and clears the buffer. Directive updates replace the pointer fields rather
// than writing through them, so the value copy is a true snapshot.
func (s *Scanner) emit() SentenceRecord {
	sentence, label := convertBuffer(s.buf)
	s.buf = s.buf[:0]
	return SentenceRecord{
		Metadata: s.meta,
		Sentence: sentence,
		Label:    label,
	}
}

// uniqueReviewID disambiguates reviews that share a book across documents:
// document name with its 4-character extension stripped, then book, then
// review id, underscore-joined. Unset parts contribute empty segments.
func uniqueReviewID(source, book string, reviewID *int64) string {
	base := ""
	if len(source) >= 4 {
		base = source[:len(source)-4]
	}
	id := ""
	if reviewID != nil {
		id = strconv.FormatInt(*reviewID, 10)
	}
	return base + "_" + book + "_" + id
}

// ReadAll drains the scanner and returns every remaining record.
func ReadAll(s *Scanner) ([]SentenceRecord, error) {
	var recs []SentenceRecord
	for s.Scan() {
		recs = append(recs, s.Record())
	}
	return recs, s.Err()
}
