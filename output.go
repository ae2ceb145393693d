package main

import (
	"strconv"
	"strings"
)

// Format renders the requested counts of stat.
//
// With no statistic flag set the default view "lines words chars" is used,
// without a trailing space. Otherwise each selected count is written in the
// fixed order lines, words, chars, bytes, each followed by a space. Bytes are
// reported as the character count.
func Format(stat FileStat, opts Options) string {
	if !opts.anyStat() {
		return strconv.FormatInt(stat.Lines, 10) + " " +
			strconv.FormatInt(stat.Words, 10) + " " +
			strconv.FormatInt(stat.Chars, 10)
	}

	var builder strings.Builder
	writeCount := func(n int64) {
		builder.WriteString(strconv.FormatInt(n, 10))
		builder.WriteString(" ")
	}
	if opts.Has(OptLines) {
		writeCount(stat.Lines)
	}
	if opts.Has(OptWords) {
		writeCount(stat.Words)
	}
	if opts.Has(OptChars) {
		writeCount(stat.Chars)
	}
	if opts.Has(OptBytes) {
		writeCount(stat.Chars)
	}
	return builder.String()
}

// formatFileLine renders the output line for one input. An empty name
// (standard input) gets no suffix.
func formatFileLine(stat FileStat, opts Options, name string) string {
	if name == "" {
		return Format(stat, opts) + "\n"
	}
	return Format(stat, opts) + ": " + name + "\n"
}

// formatTotalLine renders the trailing total for multi-file runs.
func formatTotalLine(total FileStat, opts Options) string {
	return Format(total, opts) + " : total\n"
}
