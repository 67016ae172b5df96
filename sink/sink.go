// Package sink delivers generated units: either written below an output
// directory or printed with a path banner for inspection.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlwelles/fznGen/generator"
	"github.com/mlwelles/fznGen/model"
)

var (
	ErrOutputMissing = errors.New("is not a valid path")
	ErrNotDirectory  = errors.New("is not a directory")
	ErrNotEmpty      = errors.New("is not empty")
)

const bannerWidth = 60

// CheckOutputDir verifies that dir exists, is a directory and is empty.
// It must be called before any generation work starts.
func CheckOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%s %w", dir, ErrOutputMissing)
	}
	if err != nil {
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s %w", dir, ErrNotDirectory)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading output directory %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%s %w", dir, ErrNotEmpty)
	}
	return nil
}

// Write creates the builtins subdirectory of dir and writes every unit into
// place. A unit sharing its path with an earlier one overwrites it.
func Write(dir string, units []model.GeneratedUnit) error {
	if err := os.MkdirAll(filepath.Join(dir, generator.BuiltinsDir), 0o755); err != nil {
		return fmt.Errorf("creating builtins directory: %w", err)
	}
	for _, u := range units {
		path := filepath.Join(dir, filepath.FromSlash(u.Path))
		if err := os.WriteFile(path, []byte(u.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// Print writes every unit to w, each preceded by a banner naming the path it
// would be written to under dir. dir may be empty.
func Print(w io.Writer, dir string, units []model.GeneratedUnit) error {
	for _, u := range units {
		path := filepath.Join(dir, filepath.FromSlash(u.Path))
		if _, err := fmt.Fprintf(w, "// %s\n%s\n", Banner(path), u.Content); err != nil {
			return err
		}
	}
	return nil
}

// Banner centers " path " in a line of dashes bannerWidth wide. When the
// padding is odd the extra dash goes on the right.
func Banner(path string) string {
	return center(" "+path+" ", bannerWidth, '-')
}

func center(s string, width int, fill rune) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), right)
}
