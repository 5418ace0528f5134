// Package pipeline runs the status-plot commands: read a log, parse it, then
// either draw it as a scatter chart or summarize it.
package pipeline

import (
	"io"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/internal/render"
	"github.com/iwvelando/status-plot/internal/source"
	"github.com/iwvelando/status-plot/pkg/output"
	"github.com/iwvelando/status-plot/pkg/scatter"
	"github.com/iwvelando/status-plot/pkg/statuslog"
	"github.com/iwvelando/status-plot/pkg/validation"
	"go.uber.org/zap"
)

// Job describes one plot invocation.
type Job struct {
	Input  source.Source
	Output string
	Render scatter.RenderConfig
	// Stdin is read when Input is the standard input source.
	Stdin io.Reader
}

// Result reports what a plot invocation did.
type Result struct {
	Records int
	Written bool
}

// Plot reads and parses the job's input and writes the chart. The output
// format is resolved before any input is read. An empty log is not an error:
// a warning naming the input is logged and no image is written.
func Plot(logger *zap.Logger, job Job) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	sink, err := render.NewSink(job.Output)
	if err != nil {
		return Result{}, err
	}

	values, err := load(logger, job.Input, job.Stdin)
	if err != nil {
		return Result{}, err
	}
	if len(values) == 0 {
		logger.Warn("given data log is empty: "+job.Input.Name(),
			zap.String("op", "pipeline.Plot"),
			zap.String("input", job.Input.Name()),
		)
		return Result{}, nil
	}

	geometry := scatter.BuildGeometry(values, job.Render)
	logger.Debug("built scatter geometry",
		zap.String("op", "pipeline.Plot"),
		zap.Int("points", len(geometry.Points)),
		zap.Float64("yMax", geometry.YMax),
	)

	if err := sink.Write(geometry); err != nil {
		return Result{}, apperr.Wrap("pipeline.Plot", apperr.KindRender, sink.Path, err)
	}
	logger.Info("wrote chart",
		zap.String("op", "pipeline.Plot"),
		zap.String("output", sink.Path),
		zap.String("format", sink.Format.String()),
		zap.Int("records", len(values)),
	)

	return Result{Records: len(values), Written: true}, nil
}

// StatsJob describes one stats invocation.
type StatsJob struct {
	Input  source.Source
	Format string
	Stdin  io.Reader
	Out    io.Writer
}

// Stats reads and parses the job's input and writes its summary to job.Out.
func Stats(logger *zap.Logger, job StatsJob) (statuslog.Summary, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := validation.ValidateOutputFormat(job.Format); err != nil {
		return statuslog.Summary{}, apperr.Wrap("pipeline.Stats", apperr.KindConfig, "", err)
	}

	values, err := load(logger, job.Input, job.Stdin)
	if err != nil {
		return statuslog.Summary{}, err
	}
	if len(values) == 0 {
		logger.Warn("given data log is empty: "+job.Input.Name(),
			zap.String("op", "pipeline.Stats"),
			zap.String("input", job.Input.Name()),
		)
	}

	summary := statuslog.Summarize(values)
	if err := output.Write(job.Out, job.Format, summary); err != nil {
		return statuslog.Summary{}, apperr.Wrap("pipeline.Stats", apperr.KindIO, "", err)
	}
	return summary, nil
}

func load(logger *zap.Logger, src source.Source, stdin io.Reader) ([]statuslog.StatusValue, error) {
	text, err := src.ReadAll(stdin)
	if err != nil {
		return nil, err
	}
	logger.Debug("read input",
		zap.String("op", "pipeline.load"),
		zap.String("input", src.Name()),
		zap.Int("bytes", len(text)),
	)

	values, err := statuslog.ParseLog(text)
	if err != nil {
		return nil, apperr.Wrap("statuslog.ParseLog", apperr.KindParse, src.Name(), err)
	}
	return values, nil
}
