package main

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDecodeQuality(t *testing.T) {
	tests := []struct {
		char    byte
		want    int
		wantErr bool
	}{
		{'!', 0, false},  // ASCII 33 = Phred 0
		{'+', 10, false}, // ASCII 43 = Phred 10
		{'5', 20, false}, // ASCII 53 = Phred 20
		{'I', 40, false}, // ASCII 73 = Phred 40
		{'~', 93, false}, // ASCII 126 = Phred 93
		{' ', 0, true},   // ASCII 32, below the Phred+33 range
		{'\t', 0, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			got, err := decodeQuality(tt.char)
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeQuality(%q) error = %v, wantErr %v", tt.char, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQualityChar) {
					t.Errorf("decodeQuality(%q) error = %v, want ErrInvalidQualityChar", tt.char, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("decodeQuality(%q) = %d, want %d", tt.char, got, tt.want)
			}
		})
	}
}

// Test quality metric calculations
func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name       string
		qual       string
		windowSize int
		wantMean   float64
		wantWindow float64
	}{
		{
			name:       "All high quality",
			qual:       "IIIII", // Phred 40
			wantMean:   40,
			wantWindow: 40,
		},
		{
			name:       "All Phred 0",
			qual:       strings.Repeat("!", 100),
			wantMean:   0,
			wantWindow: 0,
		},
		{
			name:       "Mixed quality, arithmetic mean",
			qual:       "I$$I$", // 40, 3, 3, 40, 3
			wantMean:   17.8,
			wantWindow: 17.8,
		},
		{
			name:       "Non-integer mean is not truncated",
			qual:       "!\"", // 0 and 1
			wantMean:   0.5,
			wantWindow: 0.5,
		},
		{
			name:       "Empty quality",
			qual:       "",
			wantMean:   0,
			wantWindow: 0,
		},
		{
			name:       "Window finds the low quality stretch",
			qual:       "IIII!!IIII", // 40 x4, 0 x2, 40 x4
			windowSize: 2,
			wantMean:   32,
			wantWindow: 0,
		},
		{
			name:       "Window of three",
			qual:       "III+III", // 40 x3, 10, 40 x3
			windowSize: 3,
			wantMean:   (40*6 + 10) / 7.0,
			wantWindow: 30,
		},
		{
			name:       "Read shorter than window",
			qual:       "I!",
			windowSize: 250,
			wantMean:   20,
			wantWindow: 20,
		},
		{
			name:       "Window equal to read length",
			qual:       "I!I!",
			windowSize: 4,
			wantMean:   20,
			wantWindow: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calculateMetrics([]byte(tt.qual), tt.windowSize)
			if err != nil {
				t.Fatalf("calculateMetrics() error = %v", err)
			}
			if got.Length != len(tt.qual) {
				t.Errorf("Length = %d, want %d", got.Length, len(tt.qual))
			}
			// Use approximate comparison for floating point values
			if math.Abs(got.MeanQuality-tt.wantMean) > 0.00001 {
				t.Errorf("MeanQuality = %v, want %v", got.MeanQuality, tt.wantMean)
			}
			if math.Abs(got.WindowQuality-tt.wantWindow) > 0.00001 {
				t.Errorf("WindowQuality = %v, want %v", got.WindowQuality, tt.wantWindow)
			}
		})
	}
}

func TestCalculateMetricsInvalidChar(t *testing.T) {
	_, err := calculateMetrics([]byte("II II"), 0)
	if !errors.Is(err, ErrInvalidQualityChar) {
		t.Fatalf("calculateMetrics() error = %v, want ErrInvalidQualityChar", err)
	}
	var qe *qualityError
	if !errors.As(err, &qe) || qe.Pos != 3 {
		t.Errorf("calculateMetrics() error = %v, want position 3", err)
	}

	// also found inside a window
	_, err = calculateMetrics([]byte("IIIIIIII\x1f"), 3)
	if !errors.Is(err, ErrInvalidQualityChar) {
		t.Errorf("calculateMetrics() error = %v, want ErrInvalidQualityChar", err)
	}
}
