package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

type DiffParams struct {
	Yaml bool `json:"yaml"` // 比较 yaml 输出而不是 json
}

func newDiffCmd(a *app) *cobra.Command {
	params := &DiffParams{}
	diffCmd := &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "show the line differences between two KeyValues files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.load(args[0])
			if err != nil {
				return err
			}
			to, err := a.load(args[1])
			if err != nil {
				return err
			}
			render := func(n keyvalues.Node) string { return keyvalues.ToJSON(n) + "\n" }
			if params.Yaml {
				render = func(n keyvalues.Node) string { return keyvalues.ToYAML(n, a.cfg.Indent) }
			}
			w := cmd.OutOrStdout()
			return printDiff(w, render(from), render(to), a.paint(w, color.FgRed), a.paint(w, color.FgGreen))
		},
	}
	diffCmd.Flags().BoolVar(&params.Yaml, "yaml", false, "compare the yaml renderings")
	return diffCmd
}

// printDiff prints every line of the two texts, prefixed "-" when only
// in from, "+" when only in to.
func printDiff(w io.Writer, from, to string, removed, added *color.Color) error {
	dmp := diffpatch.New()
	fromChars, toChars, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(fromChars, toChars, false), lines)

	for _, d := range diffs {
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			line = strings.TrimSuffix(line, "\n")
			var err error
			switch d.Type {
			case diffpatch.DiffDelete:
				_, err = fmt.Fprintln(w, removed.Sprint("- "+line))
			case diffpatch.DiffInsert:
				_, err = fmt.Fprintln(w, added.Sprint("+ "+line))
			case diffpatch.DiffEqual:
				_, err = fmt.Fprintln(w, "  "+line)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
