// Package collector drives a single-threaded URL statistics run: it reads the
// corpus line by line, feeds every line to the extractor, counts domains and
// paths, and renders the top lists.
package collector

import (
	"context"
	"fmt"
	"io"
	"time"
	"urlstats/internal/extract"
	"urlstats/internal/stats"
	"urlstats/pkg/domain"
	"urlstats/pkg/fileio"
	"urlstats/pkg/logger"
	"urlstats/pkg/metrics"
	"urlstats/pkg/serrors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "urlstats/internal/collector"

// Options configure a Collector.
type Options struct {
	// Metrics receives scan instrumentation. A private set is created when nil.
	Metrics *metrics.Scan
	// DomainOrder orders domains with equal counts. Domains are stored lower
	// cased, so byte order is already case-insensitive.
	DomainOrder domain.CompareMode
	// PathOrder orders paths with equal counts.
	PathOrder domain.CompareMode
}

// DefaultOptions returns the orderings used by the report format.
func DefaultOptions() Options {
	return Options{
		DomainOrder: domain.CompareBytes,
		PathOrder:   domain.CompareFoldCase,
	}
}

// collector is the concrete implementation of Collector. It is not safe for
// concurrent use.
type collector struct {
	options   Options
	extractor *extract.Extractor

	inputName string
	input     io.Reader
	state     State

	urls    uint64
	domains *stats.Table
	paths   *stats.Table
}

// New creates a Collector without input; call SetInput before scanning.
func New(options Options) Collector {
	if options.Metrics == nil {
		options.Metrics = metrics.NewScan()
	}

	return &collector{
		options:   options,
		extractor: extract.New(),
		domains:   stats.NewTable(),
		paths:     stats.NewTable(),
	}
}

func (c *collector) SetInput(name string, r io.Reader) {
	if c.input != nil && name == c.inputName {
		if c.state == NotScanned {
			c.input = r
		}

		return
	}

	c.inputName = name
	c.input = r
	c.reset()
}

func (c *collector) State() State {
	return c.state
}

func (c *collector) reset() {
	c.state = NotScanned
	c.urls = 0
	c.domains = stats.NewTable()
	c.paths = stats.NewTable()
}

func (c *collector) Scan(ctx context.Context) (err error) {
	if c.state == Scanned {
		return nil
	}
	if c.input == nil {
		return serrors.With(serrors.ErrCannotOpenInput, "Can not open input file! no input set")
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "collector.Scan",
		trace.WithAttributes(attribute.String("urlstats.input", c.inputName)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	ctx = logger.WithFields(ctx, zap.String("input", c.inputName))
	logger.Debug(ctx, "scanning corpus...")

	// a failed earlier attempt may have left partial counts behind
	c.reset()

	m := c.options.Metrics
	start := time.Now()
	defer m.ObserveDuration(start)

	var total extract.LineStats
	lines := fileio.NewLineReader(c.input)
	for lines.Next() {
		line := lines.Line()
		m.Lines.Inc()
		m.Bytes.Add(float64(len(line)))

		total.Add(c.extractor.ScanLine(line, c.count))
	}
	if err := lines.Err(); err != nil {
		c.reset()
		logger.Error(ctx, "could not read corpus", zap.Error(err), zap.Int("line", lines.Lines()+1))

		return fmt.Errorf("could not scan corpus: %w", err)
	}

	m.Candidates.Add(float64(total.Candidates))
	m.URLs.Add(float64(total.Accepted))
	m.Rejected.WithLabelValues(extract.BadScheme.String()).Add(float64(total.BadScheme))
	m.Rejected.WithLabelValues(extract.EmptyDomain.String()).Add(float64(total.EmptyDomain))
	m.Distinct.WithLabelValues("domains").Set(float64(c.domains.Len()))
	m.Distinct.WithLabelValues("paths").Set(float64(c.paths.Len()))

	span.SetAttributes(
		attribute.Int("urlstats.lines", lines.Lines()),
		attribute.Int64("urlstats.urls", int64(c.urls)), //nolint: gosec
		attribute.Int("urlstats.domains", c.domains.Len()),
		attribute.Int("urlstats.paths", c.paths.Len()),
	)

	c.state = Scanned

	logger.Info(ctx, "corpus scanned",
		zap.Int("lines", lines.Lines()),
		zap.Uint64("urls", c.urls),
		zap.Int("domains", c.domains.Len()),
		zap.Int("paths", c.paths.Len()),
		zap.Int("candidates", total.Candidates),
		zap.Int("badScheme", total.BadScheme),
		zap.Int("emptyDomain", total.EmptyDomain),
		zap.Duration("took", time.Since(start)))

	return nil
}

// count records one accepted URL. The URL counter moves with the domain
// table, since scheme and domain are the mandatory parts.
func (c *collector) count(u extract.URL) {
	c.domains.Increment(u.Domain)
	c.urls++
	c.paths.Increment(u.Path)
}

func (c *collector) Report(ctx context.Context, k int) (domain.Report, error) {
	if k < 0 {
		return domain.Report{}, serrors.With(serrors.ErrBadArgument, "size of top must not be negative, got %d", k)
	}
	if err := c.Scan(ctx); err != nil {
		return domain.Report{}, err
	}

	return domain.Report{
		TotalURLs:  c.urls,
		Domains:    c.domains.Len(),
		Paths:      c.paths.Len(),
		TopDomains: stats.SelectTop(c.domains, k, c.options.DomainOrder),
		TopPaths:   stats.SelectTop(c.paths, k, c.options.PathOrder),
	}, nil
}

func (c *collector) WriteReport(ctx context.Context, w io.Writer, k int) (err error) {
	report, err := c.Report(ctx, k)
	if err != nil {
		return err
	}

	_, span := otel.Tracer(tracerName).Start(ctx, "collector.WriteReport",
		trace.WithAttributes(attribute.Int("urlstats.top", k)))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err := Render(w, report); err != nil {
		return serrors.Wrap(serrors.ErrIO, err, "could not write statistics")
	}

	logger.Debug(ctx, "report written", zap.Int("top", k))

	return nil
}
