// Package pool loads the character pool passwords are sampled from.
package pool

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultPath is where the pool file lives relative to the working directory.
const DefaultPath = "../share/passchars"

// Load reads the pool file at path. See Read.
func Load(path string) ([]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pool file: %w", err)
	}
	defer f.Close()

	chars, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read pool file %s: %w", path, err)
	}
	return chars, nil
}

// Read returns every character of every line of r in order. Line terminators
// are dropped and lines are joined without a separator, so a multi-line file
// is one pool. Duplicates are kept.
func Read(r io.Reader) ([]rune, error) {
	var chars []rune
	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			lineNo++
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if !utf8.ValidString(line) {
				return nil, fmt.Errorf("line %d: invalid UTF-8", lineNo)
			}
			chars = append(chars, []rune(line)...)
		}
		if err == io.EOF {
			return chars, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
