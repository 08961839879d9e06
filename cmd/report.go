package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/fatih/color"
)

// printEntries prints entries as a padded table:
//
//	| Path | Key | Value |
//	_____________________
//	| a.b  | c   | 1     |
func printEntries(w io.Writer, entries []keyvalues.Entry, header *color.Color) error {
	pathWidth, keyWidth, valueWidth := len("Path"), len("Key"), len("Value")
	for _, e := range entries {
		pathWidth = max(pathWidth, len(e.Path))
		keyWidth = max(keyWidth, len(e.Key))
		valueWidth = max(valueWidth, len(e.Value))
	}

	title := fmt.Sprintf("| %-*s | %-*s | %-*s |", pathWidth, "Path", keyWidth, "Key", valueWidth, "Value")
	if _, err := fmt.Fprintln(w, header.Sprint(title)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("_", len(title))); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n", pathWidth, e.Path, keyWidth, e.Key, valueWidth, e.Value); err != nil {
			return err
		}
	}
	return nil
}

func printPaths(w io.Writer, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}
