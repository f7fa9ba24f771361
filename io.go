// Filtlong I/O utilities for FASTQ record handling

package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"
)

// writeRecord writes a FASTQ record exactly as it was read: header,
// sequence, separator and quality lines with their original line endings
func writeRecord(w io.Writer, rec *Record) error {
	for _, line := range rec.raw {
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// openInput opens a FASTQ file for reading. "-" reads from stdin;
// gzip, xz, zstd and bzip2 input is decompressed transparently
func openInput(inFile string) (*xopen.Reader, error) {
	reader, err := xopen.Ropen(inFile)
	if err != nil {
		return nil, fmt.Errorf("error opening input file: %w", err)
	}
	return reader, nil
}

// stdoutWriter buffers writes to the command's stdout. Close only flushes,
// the underlying writer stays open
type stdoutWriter struct {
	*bufio.Writer
}

func (w stdoutWriter) Close() error { return w.Flush() }

// openOutput opens the output file for writing. "-" writes to stdout;
// the compression format follows the file extension (.gz, .xz, .zst, .bz2)
func openOutput(outFile string, stdout io.Writer) (io.WriteCloser, error) {
	if outFile == "-" {
		return stdoutWriter{bufio.NewWriterSize(stdout, 1<<16)}, nil
	}
	outfh, err := xopen.Wopen(outFile)
	if err != nil {
		return nil, fmt.Errorf("error creating output file: %w", err)
	}
	return outfh, nil
}
