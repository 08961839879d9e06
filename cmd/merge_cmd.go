package cmd

import (
	"fmt"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/spf13/cobra"
)

type MergeParams struct {
	Inputs []string `json:"inputs"` // 输入文件路径, 可重复
	Output string   `json:"output"` // 输出文件地址
	To     string   `json:"to"`     // 输出格式 json/yaml
	Indent int      `json:"indent"` // yaml 缩进空格数
}

func newMergeCmd(a *app) *cobra.Command {
	params := &MergeParams{}
	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "merge several KeyValues files into one tree",
		Long: "Merge several KeyValues files into one tree. Blocks found at the same path in " +
			"several files are combined; a value found in several files keeps the last one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := append(append([]string{}, params.Inputs...), args...)
			if len(inputs) == 0 {
				return fmt.Errorf("no input file path")
			}
			roots := make([]keyvalues.Node, 0, len(inputs))
			for _, in := range inputs {
				root, err := a.load(in)
				if err != nil {
					return err
				}
				roots = append(roots, root)
			}
			merged := keyvalues.Merge(roots...)
			a.logger.Debug("merged files", "inputs", len(inputs), "children", merged.Len())

			format := params.To
			if format == "" {
				format = a.cfg.Format
			}
			var text string
			switch format {
			case "json":
				text = keyvalues.ToJSON(merged)
			case "yaml":
				var err error
				text, err = a.renderYAML(merged, a.indent(cmd, params.Indent), false)
				if err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown output format %q, want json or yaml", format)
			}
			return a.emit(cmd.OutOrStdout(), params.Output, text)
		},
	}
	mergeCmd.Flags().StringArrayVarP(&params.Inputs, "input", "i", nil, "input file path, repeatable")
	mergeCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	mergeCmd.Flags().StringVar(&params.To, "to", "", "output format: json or yaml (default from config)")
	mergeCmd.Flags().IntVar(&params.Indent, "indent", 0, "spaces per indentation level for yaml")
	return mergeCmd
}
