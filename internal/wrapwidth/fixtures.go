package wrapwidth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"mdpo/internal/logging"
	"mdpo/pkg/fileops"
)

const expectSuffix = ".expect.md"

// ErrMissingExpectation is returned when a case has no expectation file.
var ErrMissingExpectation = errors.New("expectation file not found")

// Converter renders the Markdown file at markdownPath with the translations
// of the catalog at poPath, wrapped at width.
type Converter func(markdownPath, poPath string, width WrapWidth) (string, error)

// Case is one fixture rendered at one width.
type Case struct {
	Dir   string
	Name  string
	Width WrapWidth
}

// InputPath is the source Markdown file.
func (c Case) InputPath() string {
	return filepath.Join(c.Dir, c.Name)
}

// POPath is the catalog next to the input, sharing its stem.
func (c Case) POPath() string {
	stem := strings.TrimSuffix(c.Name, filepath.Ext(c.Name))
	return filepath.Join(c.Dir, stem+".po")
}

// ExpectPath is "<input>.<suffix>.expect.md".
func (c Case) ExpectPath() string {
	return c.InputPath() + "." + c.Width.Suffix() + expectSuffix
}

func (c Case) String() string {
	return c.Name + "@" + c.Width.String()
}

// DiscoverExamples returns the sorted base names of the Markdown fixtures in
// dir, leaving out expectation files.
func DiscoverExamples(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot access fixtures directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fixtures path is not a directory: %s", dir)
	}

	res := fileops.ToGlobOrContentIn(dir, "*.md")
	if !res.IsGlob() {
		return []string{}, nil
	}

	names := make([]string, 0, len(res.Paths()))
	for _, p := range res.Paths() {
		if strings.HasSuffix(p, expectSuffix) {
			continue
		}
		names = append(names, filepath.Base(p))
	}
	slices.Sort(names)
	return names, nil
}

// Cases builds every fixture and width combination, grouped by fixture.
// With no widths, DefaultWidths is used.
func Cases(dir string, widths ...WrapWidth) ([]Case, error) {
	if len(widths) == 0 {
		widths = DefaultWidths()
	}

	names, err := DiscoverExamples(dir)
	if err != nil {
		return nil, err
	}

	cases := make([]Case, 0, len(names)*len(widths))
	for _, name := range names {
		for _, w := range widths {
			cases = append(cases, Case{Dir: dir, Name: name, Width: w})
		}
	}
	logging.Debug("Discovered wrap width cases", "dir", dir, "fixtures", len(names), "cases", len(cases))
	return cases, nil
}

// MismatchError reports rendered output that differs from the expectation.
type MismatchError struct {
	Case     Case
	Expected string
	Actual   string
}

func (e *MismatchError) Error() string {
	line := firstDifferentLine(e.Expected, e.Actual)
	return fmt.Sprintf("%s: output differs from %s at line %d", e.Case, e.Case.ExpectPath(), line)
}

func firstDifferentLine(a, b string) int {
	al := strings.Split(a, "\n")
	bl := strings.Split(b, "\n")
	for i := 0; i < len(al) && i < len(bl); i++ {
		if al[i] != bl[i] {
			return i + 1
		}
	}
	return min(len(al), len(bl)) + 1
}

// Check renders c and compares the output byte for byte with its
// expectation file.
func Check(c Case, conv Converter) error {
	start := time.Now()
	defer logging.LogPerformance("wrapwidth check "+c.String(), start)

	expectPath := c.ExpectPath()
	if !fileops.IsFile(expectPath) {
		return fmt.Errorf("%s: %w: %s", c, ErrMissingExpectation, expectPath)
	}

	output, err := conv(c.InputPath(), c.POPath(), c.Width)
	if err != nil {
		return fmt.Errorf("%s: conversion failed: %w", c, err)
	}

	expected, err := fileops.ToFileContentIfIsFile(expectPath, fileops.DefaultEncoding)
	if err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}

	if output != expected {
		return &MismatchError{Case: c, Expected: expected, Actual: output}
	}
	return nil
}

// CheckAll checks every case and joins the failures.
func CheckAll(cases []Case, conv Converter) error {
	var errs []error
	for _, c := range cases {
		if err := Check(c, conv); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Update renders c and stores the result as its expectation, reporting
// whether the stored expectation changed.
func Update(c Case, conv Converter) (bool, error) {
	output, err := conv(c.InputPath(), c.POPath(), c.Width)
	if err != nil {
		return false, fmt.Errorf("%s: conversion failed: %w", c, err)
	}

	changed, err := fileops.SaveFileCheckingFileChanged(c.ExpectPath(), output, fileops.DefaultEncoding)
	if err != nil {
		return false, fmt.Errorf("%s: %w", c, err)
	}

	if changed {
		logging.Info("Updated expectation", "case", c.String(), "path", c.ExpectPath())
	} else {
		logging.Debug("Expectation unchanged", "case", c.String())
	}
	return changed, nil
}
