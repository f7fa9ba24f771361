// Error types shared by the reader, the metric calculator and the CLI

package main

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQualityChar is returned when a quality character is not a valid Phred+33 symbol
	ErrInvalidQualityChar = errors.New("invalid quality character")

	// ErrMalformedRecord is returned when the 4-line FASTQ framing is broken
	ErrMalformedRecord = errors.New("malformed FASTQ record")

	// ErrInvalidArgument is returned for threshold values that cannot be used
	ErrInvalidArgument = errors.New("invalid argument")
)

// RecordError describes a problem with a specific input record.
// It always matches ErrMalformedRecord with errors.Is, and unwraps to its cause
// (for example ErrInvalidQualityChar)
type RecordError struct {
	Index int    // 1-based record number
	Line  int    // 1-based line number where the problem was found
	Rule  string // short description of the violated rule
	Err   error
}

func (e *RecordError) Error() string {
	msg := fmt.Sprintf("malformed FASTQ record %d (line %d): %s", e.Index, e.Line, e.Rule)
	if e.Err != nil && e.Err != ErrMalformedRecord {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RecordError) Unwrap() error { return e.Err }

func (e *RecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// argError wraps ErrInvalidArgument with a message naming the offending flag
func argError(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}
