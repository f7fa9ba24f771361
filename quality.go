// Phred+33 quality decoding and per-read metrics

package main

import (
	"fmt"
)

const (
	PHRED_OFFSET = 33

	// Default window size for the window quality metric
	DEFAULT_WINDOW_SIZE = 250
)

// Metrics holds the values computed for a single read
type Metrics struct {
	Length        int
	MeanQuality   float64 // arithmetic mean of Phred scores
	WindowQuality float64 // lowest mean Phred score over any window
}

// decodeQuality converts a Phred+33 character into its quality score
func decodeQuality(c byte) (int, error) {
	if c < PHRED_OFFSET {
		return 0, fmt.Errorf("%w: %q (code %d)", ErrInvalidQualityChar, c, c)
	}
	return int(c) - PHRED_OFFSET, nil
}

// qualityError reports the position of a bad quality character within a record
type qualityError struct {
	Pos int // 1-based column in the quality line
	Err error
}

func (e *qualityError) Error() string {
	return fmt.Sprintf("column %d: %v", e.Pos, e.Err)
}

func (e *qualityError) Unwrap() error { return e.Err }

// calculateMetrics computes length, mean quality and (if windowSize > 0) the
// window quality of a read. Every quality character is decoded exactly once:
// the running sum for the mean and the sliding window sum share one loop
//
// Reads shorter than the window, or an unset window, report the mean quality
// as their window quality. Zero-length reads have a mean quality of 0
func calculateMetrics(qual []byte, windowSize int) (Metrics, error) {
	m := Metrics{Length: len(qual)}
	if len(qual) == 0 {
		return m, nil
	}

	useWindow := windowSize > 0 && windowSize < len(qual)

	var sum, winSum int
	minWin := -1
	for i, c := range qual {
		q, err := decodeQuality(c)
		if err != nil {
			return Metrics{}, &qualityError{Pos: i + 1, Err: err}
		}
		sum += q

		if !useWindow {
			continue
		}
		winSum += q
		if i >= windowSize {
			// the leaving character was validated on an earlier iteration
			winSum -= int(qual[i-windowSize]) - PHRED_OFFSET
		}
		if i >= windowSize-1 && (minWin < 0 || winSum < minWin) {
			minWin = winSum
		}
	}

	m.MeanQuality = float64(sum) / float64(len(qual))
	if useWindow {
		m.WindowQuality = float64(minWin) / float64(windowSize)
	} else {
		m.WindowQuality = m.MeanQuality
	}
	return m, nil
}
