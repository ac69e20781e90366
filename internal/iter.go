package internal

import (
	"bufio"
	"io"
	"iter"
	"math"
)

// NewScanner returns a line scanner for r with no limit on line length.
func NewScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	return scanner
}

// Lines returns an iterator over the lines of a scanner, numbered from 1.
// Check scanner.Err() once the iteration is done.
func Lines(scanner *bufio.Scanner) iter.Seq2[int, string] {
	return func(yield func(lineno int, text string) bool) {
		lineno := 0
		for scanner.Scan() {
			lineno++
			if !yield(lineno, scanner.Text()) {
				return // Stop if the consumer stops
			}
		}
	}
}
