package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

type ConvertParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Indent int    `json:"indent"` // yaml 缩进空格数
	Check  bool   `json:"check"`  // 校验生成的 yaml
}

func newJsonCmd(a *app) *cobra.Command {
	params := &ConvertParams{}
	jsonCmd := &cobra.Command{
		Use:   "json",
		Short: "convert a KeyValues file to JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(params.Input)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), params.Output, keyvalues.ToJSON(root))
		},
	}
	jsonCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	jsonCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	return jsonCmd
}

func newYamlCmd(a *app) *cobra.Command {
	params := &ConvertParams{}
	yamlCmd := &cobra.Command{
		Use:   "yaml",
		Short: "convert a KeyValues file to YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(params.Input)
			if err != nil {
				return err
			}
			text, err := a.renderYAML(root, a.indent(cmd, params.Indent), params.Check)
			if err != nil {
				return err
			}
			return a.emit(cmd.OutOrStdout(), params.Output, text)
		},
	}
	yamlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	yamlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	yamlCmd.Flags().IntVar(&params.Indent, "indent", 0, "spaces per indentation level (default from config)")
	yamlCmd.Flags().BoolVar(&params.Check, "check", false, "verify the output parses as YAML")
	return yamlCmd
}

// indent prefers the --indent flag over the config file.
func (a *app) indent(cmd *cobra.Command, flagValue int) int {
	if cmd.Flags().Changed("indent") && flagValue > 0 {
		return flagValue
	}
	return a.cfg.Indent
}

func (a *app) renderYAML(root keyvalues.Node, indent int, check bool) (string, error) {
	text := keyvalues.ToYAML(root, indent)
	if !check {
		return text, nil
	}
	var decoded any
	if err := yaml.Unmarshal([]byte(text), &decoded); err != nil {
		return "", fmt.Errorf("generated yaml does not parse: %w", err)
	}
	a.logger.Debug("yaml output verified", "bytes", len(text))
	return text, nil
}

func splitOutput(output string) (string, string) {
	return filepath.Dir(output), filepath.Base(output)
}
