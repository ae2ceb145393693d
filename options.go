package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	programName = "wc"
	usageLine   = "Usage: wc [OPTION]... [FILE]..."
)

// version is the application version, set via ldflags.
var version = "0.0.1"

// optionDesc describes one recognized flag.
type optionDesc struct {
	short byte
	long  string
	help  string
}

// optionTable is the whole flag vocabulary, indexed by Option.
// Adding a flag means adding an Option constant and a row here.
var optionTable = [optionCount]optionDesc{
	OptBytes:   {'c', "--bytes", "prints the byte counts"},
	OptChars:   {'m', "--chars", "prints the character counts"},
	OptWords:   {'w', "--words", "prints the word counts"},
	OptLines:   {'l', "--lines", "prints the newline counts"},
	OptHelp:    {'h', "--help", "prints this help and exits"},
	OptVersion: {'v', "--version", "prints version information and exits"},
}

// helpOrder is the order flags are listed in the help text.
var helpOrder = []Option{OptBytes, OptChars, OptWords, OptLines, OptVersion, OptHelp}

// ParseArgs classifies every argument as a flag or an input path.
// It never performs I/O; an unrecognized flag is only recorded.
func ParseArgs(args []string) Options {
	var opts Options
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			opts.Paths = append(opts.Paths, arg)
			continue
		}
		if strings.HasPrefix(arg, "--") {
			opts.parseLong(arg)
		} else {
			opts.parseShort(arg)
		}
	}
	return opts
}

func (o *Options) parseLong(arg string) {
	for i, desc := range optionTable {
		if arg == desc.long {
			o.Set[i] = true
			return
		}
	}
	o.markInvalid(arg)
}

// parseShort handles combined short flags such as -lw.
// Scanning stops at the first unknown letter; bits set before it are kept.
// A bare "-" has no letters and therefore no effect.
func (o *Options) parseShort(arg string) {
	for j := 1; j < len(arg); j++ {
		opt, ok := lookupShort(arg[j])
		if !ok {
			o.markInvalid(arg)
			return
		}
		o.Set[opt] = true
	}
}

// markInvalid records tok unless an earlier token was already invalid.
func (o *Options) markInvalid(tok string) {
	if o.HasInvalid {
		return
	}
	o.Invalid = tok
	o.HasInvalid = true
}

func lookupShort(c byte) (Option, bool) {
	for i, desc := range optionTable {
		if desc.short == c {
			return Option(i), true
		}
	}
	return 0, false
}

// printHelp writes the usage line followed by one line per flag.
func printHelp(w io.Writer) {
	var b strings.Builder
	b.WriteString(usageLine)
	b.WriteString("\n")
	for _, opt := range helpOrder {
		desc := optionTable[opt]
		fmt.Fprintf(&b, "  -%c, %-11s%s\n", desc.short, desc.long, desc.help)
	}
	io.WriteString(w, b.String())
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s - version %s\n", programName, version)
}

// printInvalidOption reports an unrecognized flag and how to get help.
func printInvalidOption(w io.Writer, tok string) {
	fmt.Fprintf(w, "%s: invalid option '%s'\n", programName, tok)
	fmt.Fprintf(w, "Try '%s --help' for more information.\n", programName)
}
