package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// source is one input text and the name used for it in error messages.
type source struct {
	Name string
	Text string
}

// readSources resolves the input argument: "-" reads stdin, an existing path
// is read as is, and anything else is expanded as a doublestar glob whose
// matches are read in sorted order.
func readSources(stdin io.Reader, input string) ([]source, error) {
	if input == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []source{{Name: "<stdin>", Text: string(data)}}, nil
	}

	files := []string{input}
	if _, err := os.Stat(input); err != nil {
		matches, err := doublestar.FilepathGlob(input, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob error: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no input files match %q", input)
		}
		sort.Strings(matches)
		files = matches
	}

	sources := make([]source, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("input file %s: %w", f, err)
		}
		sources = append(sources, source{Name: f, Text: string(data)})
	}
	return sources, nil
}
