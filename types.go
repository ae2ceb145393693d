package main

// Option identifies one entry of the fixed flag vocabulary.
// The ordinal order matches optionTable.
type Option int

const (
	OptBytes Option = iota
	OptChars
	OptWords
	OptLines
	OptHelp
	OptVersion
	optionCount
)

// Options is the validated result of parsing the command line.
type Options struct {
	Set        [optionCount]bool
	Paths      []string // Input paths in command-line order, duplicates kept
	Invalid    string   // First unrecognized flag token
	HasInvalid bool
}

// Has reports whether the given option was requested.
func (o Options) Has(opt Option) bool {
	return o.Set[opt]
}

// anyStat reports whether at least one statistic flag was given.
// Help and version are not statistics.
func (o Options) anyStat() bool {
	return o.Set[OptBytes] || o.Set[OptChars] || o.Set[OptWords] || o.Set[OptLines]
}

// FileStat holds the counts for a single input.
// Bytes are not tracked separately, they are reported as Chars.
type FileStat struct {
	Lines int64
	Words int64
	Chars int64
}

// Add returns the sum of s and other.
func (s FileStat) Add(other FileStat) FileStat {
	return FileStat{
		Lines: s.Lines + other.Lines,
		Words: s.Words + other.Words,
		Chars: s.Chars + other.Chars,
	}
}

// Summary holds the aggregated result of one run.
type Summary struct {
	Total     FileStat
	Processed int   // Inputs counted successfully
	Failed    int   // Inputs skipped because of open/read errors
	Err       error // All per-input errors, combined
}
