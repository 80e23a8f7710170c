// Command magnify-raw applies temporal magnification to a raw planar video
// stream: headerless little-endian float32 Y'CbCr 4:4:4 frames, the format
// produced by e.g. ffmpeg's rawvideo muxer after pixel format conversion.
//
// Usage:
//
//	magnify-raw -width 160 -height 120 -fps 30 input.raw output.raw
//	magnify-raw -width 160 -height 120 -low 0.4 -high 3 -alpha 10 -chroma 0.1 in.raw out.raw
//	magnify-raw -width 160 -height 120 -fast in.raw out.raw    # float32 engine
//
// The output stream contains only the band-passed, amplified frames; the
// first taps-1 input frames are consumed as filter warm-up and produce no
// output. Recombination with the original footage happens downstream.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	magnify "github.com/tphakala/go-video-magnify"
	"github.com/tphakala/go-video-magnify/internal/engine"
	"github.com/tphakala/go-video-magnify/internal/filter"
)

const (
	// I/O buffer sizes
	readBufferSize  = 256 * 1024 // 256KB read buffer
	writeBufferSize = 256 * 1024 // 256KB write buffer

	// Progress logging cadence
	progressInterval = 100 // Log progress every N frames

	// CLI argument count
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	width := flag.Int("width", 0, "Frame width in pixels (required)")
	height := flag.Int("height", 0, "Frame height in pixels (required)")
	fps := flag.Float64("fps", magnify.RateNTSC, "Frame rate of the input in Hz")
	low := flag.Float64("low", magnify.PulseLowCutoff, "Lower corner frequency in Hz")
	high := flag.Float64("high", magnify.PulseHighCutoff, "Upper corner frequency in Hz")
	taps := flag.Int("taps", magnify.DefaultTapCount, "Filter length (odd)")
	alpha := flag.Float64("alpha", magnify.DefaultAlpha, "Magnification factor")
	chroma := flag.Float64("chroma", magnify.DefaultChromaAttenuation, "Chroma attenuation")
	fast := flag.Bool("fast", false, "Use float32 precision (faster, sufficient for 8-bit sources)")
	parallel := flag.Bool("parallel", true, "Process the three planes concurrently")
	verbose := flag.Bool("v", false, "Verbose (development) logging")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		flag.Usage()
		return fmt.Errorf("need input and output paths")
	}
	if *width <= 0 || *height <= 0 {
		return fmt.Errorf("frame dimensions are required: -width and -height")
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(args[1])
	if err != nil {
		return err
	}
	defer out.Close()

	r := bufio.NewReaderSize(in, readBufferSize)
	w := bufio.NewWriterSize(out, writeBufferSize)

	logger.Info("starting magnification",
		zap.Int("width", *width),
		zap.Int("height", *height),
		zap.Float64("fps", *fps),
		zap.Float64("low_hz", *low),
		zap.Float64("high_hz", *high),
		zap.Int("taps", *taps),
		zap.Float64("alpha", *alpha),
		zap.Float64("chroma_attenuation", *chroma),
		zap.Bool("fast", *fast),
		zap.Bool("parallel", *parallel),
	)

	start := time.Now()
	var framesIn, framesOut int64

	if *fast {
		framesIn, framesOut, err = processFloat32(r, w, *width, *height, filter.BandPassParams{
			LowCutoff:  *low,
			HighCutoff: *high,
			SampleRate: *fps,
			NumTaps:    *taps,
		}, *alpha, *chroma, *parallel, logger)
	} else {
		framesIn, framesOut, err = processFloat64(r, w, *width, *height, &magnify.Config{
			LowCutoff:         *low,
			HighCutoff:        *high,
			SampleRate:        *fps,
			TapCount:          *taps,
			Alpha:             *alpha,
			ChromaAttenuation: *chroma,
			EnableParallel:    *parallel,
		}, logger)
	}
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}

	logger.Info("done",
		zap.Int64("frames_in", framesIn),
		zap.Int64("frames_out", framesOut),
		zap.Int64("warmup_dropped", framesIn-framesOut),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}

// newLogger builds a zap logger; development mode for -v, production JSON
// otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// processFloat64 runs the stream through the float64 public API.
func processFloat64(r io.Reader, w io.Writer, width, height int, config *magnify.Config, logger *zap.Logger) (framesIn, framesOut int64, err error) {
	m, err := magnify.New(config)
	if err != nil {
		return 0, 0, err
	}

	scratch := make([]float32, width*height)

	for {
		frame, err := readFrame(r, width, height, scratch)
		if err == io.EOF {
			break
		}
		if err != nil {
			return framesIn, framesOut, fmt.Errorf("read frame %d: %w", framesIn, err)
		}
		framesIn++

		result, ok, err := m.Process(frame)
		if err != nil {
			return framesIn, framesOut, err
		}
		if !ok {
			continue
		}

		if err := writeFrame(w, result, scratch); err != nil {
			return framesIn, framesOut, err
		}
		framesOut++

		if framesOut%progressInterval == 0 {
			logger.Info("progress",
				zap.Int64("frames_out", framesOut),
				zap.Float64("luma_rms", result.LumaRMS()),
				zap.String("state", m.State().String()))
		}
	}

	return framesIn, framesOut, nil
}

// processFloat32 runs the stream through the float32 engine directly,
// trading precision for throughput.
func processFloat32(r io.Reader, w io.Writer, width, height int, params filter.BandPassParams, alpha, chroma float64, parallel bool, logger *zap.Logger) (framesIn, framesOut int64, err error) {
	eng, err := engine.NewTemporalFilter[float32](params, alpha, chroma, parallel)
	if err != nil {
		return 0, 0, err
	}

	for {
		frame, err := readFrame32(r, width, height)
		if err == io.EOF {
			break
		}
		if err != nil {
			return framesIn, framesOut, fmt.Errorf("read frame %d: %w", framesIn, err)
		}
		framesIn++

		result, ok, err := eng.Ingest(frame)
		if err != nil {
			return framesIn, framesOut, err
		}
		if !ok {
			continue
		}

		if err := writeFrame32(w, result); err != nil {
			return framesIn, framesOut, err
		}
		framesOut++

		if framesOut%progressInterval == 0 {
			logger.Info("progress",
				zap.Int64("frames_out", framesOut),
				zap.Float64("luma_rms", result.PlaneRMS(engine.ChannelLuma)))
		}
	}

	return framesIn, framesOut, nil
}
