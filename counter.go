package main

import (
	"bufio"
	"fmt"
	"io"
)

// Count performs a single pass over r and returns its line, word and
// character counts. Every line is charged one character for its newline,
// including a final line that has none. Characters are single bytes.
//
// On a read error the partial counts are discarded and the error returned.
func Count(r io.Reader) (FileStat, error) {
	var stat FileStat
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if line[len(line)-1] == '\n' {
				line = line[:len(line)-1]
			}
			chars, words := countLine(line)
			stat.Lines++
			stat.Chars += chars
			stat.Words += words
		}
		if err == io.EOF {
			return stat, nil
		}
		if err != nil {
			return FileStat{}, fmt.Errorf("read: %w", err)
		}
	}
}

// countLine returns the characters (plus one for the newline) and words in
// line, which must not contain its terminator.
func countLine(line string) (chars, words int64) {
	inWord := false
	for i := 0; i < len(line); i++ {
		if isSpace(line[i]) {
			inWord = false
		} else if !inWord {
			words++
			inWord = true
		}
	}
	return int64(len(line)) + 1, words
}

// isSpace matches the C locale isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
