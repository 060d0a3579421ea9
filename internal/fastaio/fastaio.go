// Package fastaio implements minimal multi-FASTA reading and writing,
// shaped like a Reader/Scanner/Writer trio: NewReader wraps an
// io.Reader, Scanner.Next/Seq/Err drive record-at-a-time iteration,
// and Writer wraps an io.Writer with fixed line-width wrapping.
package fastaio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Record is one FASTA entry: an identifier (the header line without
// the leading '>') and its character payload.
type Record struct {
	Name string
	Seq  []byte
}

// Reader reads FASTA records from an underlying stream.
type Reader struct {
	scanner *bufio.Scanner
	pending string
	done    bool
}

// NewReader wraps r for record-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	return &Reader{scanner: sc}
}

// Scanner drives iteration over a Reader's records.
type Scanner struct {
	r       *Reader
	current Record
	err     error

	// SkipUnknownCharacters, when true, drops characters absent from
	// validChars instead of rejecting the whole record.
	SkipUnknownCharacters bool
	// CapitaliseCharacters, when true, upper-cases payload characters
	// before validation.
	CapitaliseCharacters bool
	// ValidChars restricts accepted payload characters. Empty means no
	// restriction.
	ValidChars string
}

// NewScanner builds a Scanner over reader.
func NewScanner(reader *Reader) *Scanner {
	return &Scanner{r: reader}
}

// Next advances to the next record, returning false at EOF or on
// error (distinguishable via Err).
func (s *Scanner) Next() bool {
	rec, ok, err := s.r.next(s.CapitaliseCharacters, s.SkipUnknownCharacters, s.ValidChars)
	if err != nil {
		s.err = err
		return false
	}
	if !ok {
		return false
	}
	s.current = rec
	return true
}

// Seq returns the most recently read record.
func (s *Scanner) Seq() Record { return s.current }

// Err returns the first error encountered, if any.
func (s *Scanner) Err() error { return s.err }

func (r *Reader) next(capitalise, skipUnknown bool, validChars string) (Record, bool, error) {
	var name string
	if r.pending != "" {
		name = strings.TrimPrefix(r.pending, ">")
		r.pending = ""
	} else {
		for r.scanner.Scan() {
			line := strings.TrimSpace(r.scanner.Text())
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, ">") {
				return Record{}, false, fmt.Errorf("fastaio: expected header line, got %q", line)
			}
			name = strings.TrimPrefix(line, ">")
			break
		}
		if name == "" {
			if err := r.scanner.Err(); err != nil {
				return Record{}, false, err
			}
			return Record{}, false, nil
		}
	}

	var payload []byte
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			r.pending = line
			break
		}
		if capitalise {
			line = strings.ToUpper(line)
		}
		for i := 0; i < len(line); i++ {
			c := line[i]
			if validChars != "" && !strings.ContainsRune(validChars, rune(c)) {
				if skipUnknown {
					continue
				}
				return Record{}, false, fmt.Errorf("fastaio: unknown character %q in record %q", c, name)
			}
			payload = append(payload, c)
		}
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, false, err
	}
	return Record{Name: name, Seq: payload}, true, nil
}

// Writer writes FASTA records, wrapping payload lines at width
// characters.
type Writer struct {
	w     io.Writer
	width int
}

// NewWriter wraps w, wrapping payload lines at width characters.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{w: w, width: width}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	if _, err := fmt.Fprintf(w.w, ">%s\n", rec.Name); err != nil {
		return err
	}
	for i := 0; i < len(rec.Seq); i += w.width {
		end := i + w.width
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := w.w.Write(rec.Seq[i:end]); err != nil {
			return err
		}
		if _, err := io.WriteString(w.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
