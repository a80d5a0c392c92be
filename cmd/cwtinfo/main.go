// Command cwtinfo inspects CWT frequency axes and runs the peak pipeline on
// transients.
//
// Usage:
//
//	cwtinfo [flags] axis
//	cwtinfo [flags] range START END
//	cwtinfo [flags] peaks FILE.csv
//
// Examples:
//
//	cwtinfo -start 1 -end 6 -voices 200 axis
//	cwtinfo -rate 100000 -unit hz range 4925.781 5242.714
//	cwtinfo -rate 100000 -cal 7.5e12 -unit mz range 309108.469 294468.634
//	cwtinfo -smooth 2 -threshold 0.3 peaks transient.csv
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-cwt/cwt/axis"
	"github.com/cwbudde/algo-cwt/dsp/gauss"
	"github.com/cwbudde/algo-cwt/measure/peak"
	"github.com/cwbudde/algo-cwt/transient"
	"github.com/montanaflynn/stats"
	"go.uber.org/zap"
)

type options struct {
	startOctave int
	endOctave   int
	voices      int
	c0          float64
	rate        int
	calibration float64
	unit        string
	rows        bool

	maxPoints int
	smooth    float64
	threshold float64
	distance  int
	sigma     float64
}

var errUsage = errors.New("usage")

func main() {
	var opts options
	fs := flag.NewFlagSet("cwtinfo", flag.ExitOnError)
	fs.IntVar(&opts.startOctave, "start", 1, "first octave of the transform")
	fs.IntVar(&opts.endOctave, "end", 6, "last octave of the transform")
	fs.IntVar(&opts.voices, "voices", 200, "voices per octave")
	fs.Float64Var(&opts.c0, "c0", 2*math.Pi, "wavelet center frequency")
	fs.IntVar(&opts.rate, "rate", 0, "sampling rate in Hz (peaks: taken from the file)")
	fs.Float64Var(&opts.calibration, "cal", 0, "calibration coefficient A of m/z = A/f² (peaks: taken from the file)")
	fs.StringVar(&opts.unit, "unit", "wavelet", "range unit: wavelet, hz or mz")
	fs.BoolVar(&opts.rows, "rows", false, "axis: print every row")
	fs.IntVar(&opts.maxPoints, "max", 0, "peaks: maximum samples to read, 0 for all")
	fs.Float64Var(&opts.smooth, "smooth", 0, "peaks: Gaussian pre-smoothing sigma in samples, 0 to disable")
	fs.Float64Var(&opts.threshold, "threshold", peak.DefaultThreshold, "peaks: intensity threshold in (0, 1]")
	fs.IntVar(&opts.distance, "distance", peak.DefaultDerivativeDistance, "peaks: derivative distance")
	fs.Float64Var(&opts.sigma, "sigma", peak.DefaultSmoothingDeviation, "peaks: derivative smoothing sigma, 0 to disable")
	verbose := fs.Bool("v", false, "development logging")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: cwtinfo [flags] axis | range START END | peaks FILE.csv\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(fs.Args(), opts, os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			os.Exit(2)
		}
		logger.Error("cwtinfo failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

func run(args []string, opts options, w io.Writer, logger *zap.Logger) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "axis":
		a, err := buildAxis(opts)
		if err != nil {
			return err
		}
		return printAxis(w, a, opts.rows)
	case "range":
		if len(args) != 3 {
			return errUsage
		}
		return printRange(w, opts, args[1], args[2], logger)
	case "peaks":
		if len(args) != 2 {
			return errUsage
		}
		return runPeaks(w, opts, args[1], logger)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
}

func buildAxis(opts options) (*axis.FrequencyAxis, error) {
	return axis.FromOctaves(opts.startOctave, opts.endOctave, opts.voices, opts.c0,
		axis.WithSamplingRate(opts.rate),
		axis.WithCalibration(opts.calibration),
	)
}

func printAxis(w io.Writer, a *axis.FrequencyAxis, rows bool) error {
	hz, hzErr := a.TrueFrequencies()
	mz, mzErr := a.MZValues()

	fmt.Fprintf(w, "rows:     %d (%d voices/octave)\n", a.Len(), a.VoicesPerOctave())
	fmt.Fprintf(w, "wavelet:  %.6g .. %.6g\n", a.Min(), a.Max())
	if hzErr == nil {
		fmt.Fprintf(w, "hz:       %.6g .. %.6g\n", hz[0], hz[len(hz)-1])
	}
	if mzErr == nil {
		fmt.Fprintf(w, "m/z:      %.6g .. %.6g\n", mz[0], mz[len(mz)-1])
	}
	if !rows {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Row\tWavelet\tHz\tm/z\n")
	fmt.Fprintf(tw, "---\t-------\t--\t---\n")
	for i := 0; i < a.Len(); i++ {
		fmt.Fprintf(tw, "%d\t%.6g\t%s\t%s\n", i, a.At(i), column(hz, i), column(mz, i))
	}
	return tw.Flush()
}

func column(values []float64, i int) string {
	if values == nil {
		return "-"
	}
	return strconv.FormatFloat(values[i], 'g', 6, 64)
}

func printRange(w io.Writer, opts options, startArg, endArg string, logger *zap.Logger) error {
	unit, err := axis.ParseUnit(opts.unit)
	if err != nil {
		return fmt.Errorf("%w: %q", err, opts.unit)
	}
	start, err := strconv.ParseFloat(startArg, 64)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	end, err := strconv.ParseFloat(endArg, 64)
	if err != nil {
		return fmt.Errorf("end: %w", err)
	}

	a, err := buildAxis(opts)
	if err != nil {
		return err
	}
	lo, hi, err := a.IndicesIn(start, end, unit)
	if err != nil {
		return err
	}
	logger.Debug("range resolved",
		zap.Stringer("unit", unit),
		zap.Float64("start", start),
		zap.Float64("end", end),
		zap.Int("lo", lo),
		zap.Int("hi", hi),
	)

	fmt.Fprintf(w, "rows %d..%d (%d rows), wavelet %.6g .. %.6g\n", lo, hi, hi-lo+1, a.At(lo), a.At(hi))
	return nil
}

func runPeaks(w io.Writer, opts options, path string, logger *zap.Logger) error {
	tr, err := transient.LoadFile(path, opts.maxPoints)
	if err != nil {
		return err
	}
	logger.Info("transient loaded",
		zap.String("path", path),
		zap.Int("samples", len(tr.Samples)),
		zap.Int("samplingRate", tr.SamplingRate),
		zap.Float64("calibration", tr.Calibration),
	)

	slice := tr.Samples
	if opts.smooth > 0 {
		slice, err = gauss.Smooth1D(slice, opts.smooth)
		if err != nil {
			return err
		}
		logger.Debug("slice smoothed", zap.Float64("sigma", opts.smooth))
	}

	an := peak.NewAnalyzer(
		peak.WithThreshold(opts.threshold),
		peak.WithDerivativeDistance(opts.distance),
		peak.WithSmoothingDeviation(opts.sigma),
	)
	rep, err := an.Analyze(slice)
	if err != nil {
		return err
	}
	logger.Info("slice analyzed",
		zap.Float64("floor", rep.Floor),
		zap.Int("filtered", rep.Filtered.Len()),
		zap.Int("derivative", rep.Derivative.Len()),
		zap.Int("peaks", len(rep.Peaks)),
	)

	if err := printSummary(w, rep); err != nil {
		return err
	}

	ta, err := axis.NewTimeAxis(tr.SamplingRate, len(slice), axis.Milliseconds)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Peak\tSample\tTime [ms]\tValue\n")
	fmt.Fprintf(tw, "----\t------\t---------\t-----\n")
	for i, p := range rep.Peaks {
		fmt.Fprintf(tw, "%d\t%d\t%.6f\t%.6g\n", i, p, ta.At(p), slice[p])
	}
	return tw.Flush()
}

// printSummary writes the distribution of the filtered magnitudes.
func printSummary(w io.Writer, rep *peak.Report) error {
	data := make(stats.Float64Data, 0, rep.Filtered.Len())
	for _, v := range rep.Filtered.All() {
		data = append(data, math.Abs(v))
	}
	median, err := stats.Median(data)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	p95, err := stats.Percentile(data, 95)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}
	maxAbs, err := stats.Max(data)
	if err != nil {
		return fmt.Errorf("summary: %w", err)
	}

	fmt.Fprintf(w, "floor %.6g, kept %d samples: median %.6g, p95 %.6g, max %.6g\n",
		rep.Floor, len(data), median, p95, maxAbs)
	return nil
}
