// Streaming read filter: read, evaluate, emit-or-drop

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shenwei356/xopen"
)

// Summary counts the reads and bases seen and kept during a run
type Summary struct {
	TotalReads  int
	TotalBases  int64
	PassedReads int
	PassedBases int64
}

// recordMetrics computes the metrics of a record that the configured filters need
func recordMetrics(rec *Record, cfg FilterConfig) (Metrics, error) {
	windowSize := 0
	if cfg.NeedsWindow() {
		windowSize = cfg.WindowSize
	}
	m, err := calculateMetrics(rec.Qual, windowSize)
	if err != nil {
		return Metrics{}, err
	}
	m.Length = len(rec.Seq)
	return m, nil
}

// filterReads streams records from in to out, keeping the reads that pass
// every configured filter. Kept records are written unchanged and in input
// order. The first malformed record stops the run; records written before
// it stay in the output
func filterReads(in io.Reader, out io.Writer, cfg FilterConfig, logger *log.Logger) (Summary, error) {
	var sum Summary
	reader := NewReader(in)

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, err
		}

		m, err := recordMetrics(rec, cfg)
		if err != nil {
			// Quality characters are on the last line of the record
			return sum, &RecordError{
				Index: rec.Index,
				Line:  rec.Line + 3,
				Rule:  "bad quality line",
				Err:   err,
			}
		}

		sum.TotalReads++
		sum.TotalBases += int64(m.Length)

		ok, failed := cfg.Check(m)
		if !ok {
			logger.Debug("read filtered out",
				"read", readID(rec),
				"filter", failed,
				"length", m.Length,
				"mean_q", m.MeanQuality,
			)
			continue
		}

		if err := writeRecord(out, rec); err != nil {
			return sum, fmt.Errorf("error writing record: %w", err)
		}
		sum.PassedReads++
		sum.PassedBases += int64(m.Length)
	}

	return sum, nil
}

// readID returns the first word of the header, without the '@'
func readID(rec *Record) string {
	name := string(rec.Name())
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		return name[:i]
	}
	return name
}

// filterFile opens the input and output files and runs filterReads over them.
// An outFile of "-" writes to stdout. An empty input file is treated as a
// FASTQ file with no records
func filterFile(inFile, outFile string, stdout io.Writer, cfg FilterConfig, logger *log.Logger) (Summary, error) {
	var in io.Reader
	reader, err := openInput(inFile)
	switch {
	case errors.Is(err, xopen.ErrNoContent):
		in = strings.NewReader("")
	case err != nil:
		return Summary{}, err
	default:
		defer reader.Close()
		in = reader
	}

	outfh, err := openOutput(outFile, stdout)
	if err != nil {
		return Summary{}, err
	}

	logger.Info("filtering reads", "input", inFile, "filters", cfg.Describe())

	sum, err := filterReads(in, outfh, cfg, logger)
	if cerr := outfh.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("error closing output file: %w", cerr)
	}
	if err != nil {
		return sum, err
	}

	logger.Info("done",
		"reads", fmt.Sprintf("%d/%d", sum.PassedReads, sum.TotalReads),
		"bases", fmt.Sprintf("%d/%d", sum.PassedBases, sum.TotalBases),
	)
	return sum, nil
}
