package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const stdinName = "standard input"

// Processor counts each input in turn and writes the formatted results.
type Processor struct {
	fs     afero.Fs
	stdin  io.Reader
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger
}

// NewProcessor returns a Processor reading paths from fsys and standard
// input from stdin. A nil logger disables logging.
func NewProcessor(fsys afero.Fs, stdin io.Reader, out, errOut io.Writer, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{
		fs:     fsys,
		stdin:  stdin,
		out:    out,
		errOut: errOut,
		log:    log,
	}
}

// Run counts standard input when opts has no paths, otherwise every path in
// order. Inputs that cannot be opened or read are reported on the error
// stream and skipped; they contribute nothing to the total. The total line is
// written when more than one path was given.
func (p *Processor) Run(opts Options) Summary {
	var summary Summary

	if len(opts.Paths) == 0 {
		stat, err := Count(p.stdin)
		if err != nil {
			p.fail(&summary, stdinName, err)
			return summary
		}
		p.log.Debug("counted input", zap.String("input", stdinName), zap.Any("stat", stat))
		summary.Processed++
		summary.Total = summary.Total.Add(stat)
		io.WriteString(p.out, formatFileLine(stat, opts, ""))
		return summary
	}

	for _, path := range opts.Paths {
		stat, err := p.countPath(path)
		if err != nil {
			p.fail(&summary, path, err)
			continue
		}
		p.log.Debug("counted input", zap.String("input", path), zap.Any("stat", stat))
		summary.Processed++
		summary.Total = summary.Total.Add(stat)
		io.WriteString(p.out, formatFileLine(stat, opts, path))
	}

	if len(opts.Paths) > 1 {
		io.WriteString(p.out, formatTotalLine(summary.Total, opts))
	}
	return summary
}

// countPath opens path, counts it and closes it again, also when the read
// fails part way through.
func (p *Processor) countPath(path string) (stat FileStat, err error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return FileStat{}, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return Count(f)
}

// fail reports a skipped input and records its error in the summary.
func (p *Processor) fail(summary *Summary, name string, err error) {
	fmt.Fprintf(p.errOut, "%s: %s: %s\n", programName, name, failureReason(err))
	p.log.Warn("skipping input", zap.String("input", name), zap.Error(err))
	summary.Failed++
	summary.Err = multierr.Append(summary.Err, fmt.Errorf("%s: %w", name, err))
}

// failureReason strips the operation and path from filesystem errors so the
// diagnostic reads "wc: <path>: <reason>".
func failureReason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
