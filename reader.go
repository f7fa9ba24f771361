// Streaming FASTQ reader that keeps every record byte-for-byte

package main

import (
	"bufio"
	"bytes"
	"io"
)

// Record is a single FASTQ record. The raw lines (including their line
// terminators) are kept so the record can be written back unchanged;
// Seq and Qual are views into them without the terminator
type Record struct {
	Index int // 1-based position of the record in the input
	Line  int // 1-based line number of the header

	Header []byte
	Seq    []byte
	Qual   []byte

	raw [4][]byte
}

// Name returns the header line without the leading '@'
func (rec *Record) Name() []byte {
	return bytes.TrimPrefix(rec.Header, []byte("@"))
}

// Reader reads FASTQ records from a stream, four lines per record.
// It does not support multi-line sequences. Once an error has been
// returned, every later call returns the same error
type Reader struct {
	r     *bufio.Reader
	line  int
	count int
	err   error
}

// NewReader creates a Reader reading from r
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReaderSize(r, 1<<20)}
}

// readLine returns the next line including its terminator and the line
// content without it. At the end of input it returns io.EOF with a nil line
func (fr *Reader) readLine() (raw, text []byte, err error) {
	raw, err = fr.r.ReadBytes('\n')
	if len(raw) == 0 {
		if err == nil {
			err = io.EOF
		}
		return nil, nil, err
	}
	if err != nil && err != io.EOF {
		return nil, nil, err
	}
	fr.line++
	text = bytes.TrimSuffix(raw, []byte("\n"))
	text = bytes.TrimSuffix(text, []byte("\r"))
	return raw, text, nil
}

func (fr *Reader) fail(rec *Record, line int, rule string) error {
	fr.err = &RecordError{Index: rec.Index, Line: line, Rule: rule, Err: ErrMalformedRecord}
	return fr.err
}

// Read returns the next record, or io.EOF once the input is exhausted
func (fr *Reader) Read() (*Record, error) {
	if fr.err != nil {
		return nil, fr.err
	}

	// Skip blank lines between records
	var raw, text []byte
	var err error
	for {
		raw, text, err = fr.readLine()
		if err != nil {
			fr.err = err
			return nil, err
		}
		if len(text) > 0 {
			break
		}
	}

	fr.count++
	rec := &Record{Index: fr.count, Line: fr.line}

	if text[0] != '@' {
		return nil, fr.fail(rec, fr.line, "header line does not start with '@'")
	}
	rec.raw[0], rec.Header = raw, text

	names := [3]string{"sequence", "separator", "quality"}
	for i := 1; i < 4; i++ {
		raw, text, err = fr.readLine()
		if err == io.EOF {
			return nil, fr.fail(rec, fr.line, "truncated record: missing "+names[i-1]+" line")
		}
		if err != nil {
			fr.err = err
			return nil, err
		}
		rec.raw[i] = raw
		switch i {
		case 1:
			rec.Seq = text
		case 2:
			if len(text) == 0 || text[0] != '+' {
				return nil, fr.fail(rec, fr.line, "separator line does not start with '+'")
			}
		case 3:
			rec.Qual = text
		}
	}

	if len(rec.Seq) != len(rec.Qual) {
		return nil, fr.fail(rec, fr.line, "sequence and quality lengths differ")
	}
	return rec, nil
}
