// Package transient reads Fourier-transform mass-spectrometry transients.
//
// A transient file is line-oriented CSV with one value per line:
//
//	line 1   calibration coefficient A (m/z = A / f²)
//	line 2   sampling rate in Hz
//	line 3+  one time-domain sample per line
package transient

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-cwt/cwt"
)

var (
	ErrNotCSV       = errors.New("transient: file must have a .csv extension")
	ErrInvalidValue = errors.New("transient: invalid number")
	ErrShortHeader  = errors.New("transient: missing calibration or sampling rate")
)

// Transient is one acquisition.
type Transient struct {
	Calibration  float64
	SamplingRate int
	Samples      []float64
}

// Load reads a transient from r. At most maxPoints samples are read;
// maxPoints <= 0 reads all of them.
func Load(r io.Reader, maxPoints int) (*Transient, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	tr := &Transient{}
	header := 0
	for maxPoints <= 0 || len(tr.Samples) < maxPoints {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("transient: %w", err)
		}
		line, _ := cr.FieldPos(0)

		v, err := strconv.ParseFloat(strings.TrimSpace(rec[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %q", ErrInvalidValue, line, rec[0])
		}

		switch header {
		case 0:
			tr.Calibration = v
			header++
		case 1:
			rate := math.Round(v)
			if !(rate >= 1 && rate <= math.MaxInt32) {
				return nil, fmt.Errorf("%w at line %d: sampling rate %v", ErrInvalidValue, line, v)
			}
			tr.SamplingRate = int(rate)
			header++
		default:
			tr.Samples = append(tr.Samples, v)
		}
	}

	if header < 2 {
		return nil, ErrShortHeader
	}
	return tr, nil
}

// LoadFile opens path, which must end in .csv, and reads it with [Load].
func LoadFile(path string, maxPoints int) (*Transient, error) {
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return nil, fmt.Errorf("%w: %s", ErrNotCSV, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("transient: %w", err)
	}
	defer f.Close()

	tr, err := Load(f, maxPoints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tr, nil
}

// Params returns transform parameters for this transient with the given
// octave layout. Sampling rate and calibration are carried over.
func (t *Transient) Params(startOctave, endOctave, voices int, c0 float64) cwt.Params {
	return cwt.Params{
		StartOctave:     startOctave,
		EndOctave:       endOctave,
		VoicesPerOctave: voices,
		C0:              c0,
		SamplingRate:    t.SamplingRate,
		Calibration:     t.Calibration,
	}
}
