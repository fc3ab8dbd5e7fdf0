package corpus

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
)

// RawLine is one input line with the document it came from. Text keeps its
// trailing line terminator when the source had one.
type RawLine struct {
	Doc  string
	Text string
}

// LineReader yields raw lines in stream order and returns io.EOF when the
// stream is exhausted.
type LineReader interface {
	Next() (RawLine, error)
}

// FileLineReader reads lines from an ordered list of files with at most one
// file open at a time. The document identifier of each line is the file's
// base name.
type FileLineReader struct {
	paths []string
	idx   int
	cur   *os.File
	rd    *bufio.Reader
}

// NewFileLineReader creates a reader over the given paths, read in order.
func NewFileLineReader(paths []string) *FileLineReader {
	return &FileLineReader{paths: paths}
}

// Next implements LineReader.
func (r *FileLineReader) Next() (RawLine, error) {
	for {
		if r.rd == nil {
			if r.idx >= len(r.paths) {
				return RawLine{}, io.EOF
			}
			f, err := os.Open(r.paths[r.idx])
			if err != nil {
				return RawLine{}, err
			}
			r.cur = f
			r.rd = bufio.NewReader(f)
		}

		doc := filepath.Base(r.paths[r.idx])
		line, err := r.rd.ReadString('\n')
		if err == io.EOF {
			cerr := r.cur.Close()
			r.cur, r.rd = nil, nil
			r.idx++
			if cerr != nil {
				return RawLine{}, cerr
			}
			// A final line without a terminator still counts.
			if line != "" {
				return RawLine{Doc: doc, Text: line}, nil
			}
			continue
		}
		if err != nil {
			r.cur.Close()
			r.cur, r.rd = nil, nil
			return RawLine{}, err
		}
		return RawLine{Doc: doc, Text: line}, nil
	}
}

// Close releases the currently open file, if any. Safe to call after a scan
// was abandoned mid-stream.
func (r *FileLineReader) Close() error {
	if r.cur == nil {
		return nil
	}
	err := r.cur.Close()
	r.cur, r.rd = nil, nil
	return err
}

// SliceLineReader serves a fixed slice of lines. Used to drive the scanner
// without file I/O.
type SliceLineReader struct {
	lines []RawLine
	i     int
}

// NewSliceLineReader creates a reader over the given lines.
func NewSliceLineReader(lines []RawLine) *SliceLineReader {
	return &SliceLineReader{lines: lines}
}

// Next implements LineReader.
func (r *SliceLineReader) Next() (RawLine, error) {
	if r.i >= len(r.lines) {
		return RawLine{}, io.EOF
	}
	line := r.lines[r.i]
	r.i++
	return line, nil
}
