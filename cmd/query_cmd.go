package cmd

import (
	"fmt"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type QueryParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Prefix string `json:"prefix"` // 路径前缀过滤
	Depth  int    `json:"depth"`  // 遍历深度, -1 不限
}

func newGetCmd(a *app) *cobra.Command {
	params := &QueryParams{}
	getCmd := &cobra.Command{
		Use:   "get",
		Short: "print the value or block at a dotted path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(params.Find) == 0 {
				return fmt.Errorf("no path to find")
			}
			root, err := a.load(params.Input)
			if err != nil {
				return err
			}
			n, ok := keyvalues.Get(root, params.Find)
			if !ok {
				return fmt.Errorf("path %q not found", params.Find)
			}
			if v, isLeaf := keyvalues.Value(n); isLeaf {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), keyvalues.ToJSON(n))
			return err
		},
	}
	getCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	getCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted path to look up")
	return getCmd
}

func newListCmd(a *app) *cobra.Command {
	params := &QueryParams{}
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list every value with its path and key",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(params.Input)
			if err != nil {
				return err
			}
			entries := keyvalues.Flatten(root, prefixFlag(cmd, "path", params.Prefix), params.Depth)
			w := cmd.OutOrStdout()
			return printEntries(w, entries, a.paint(w, color.FgCyan, color.Bold))
		},
	}
	listCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	listCmd.Flags().StringVarP(&params.Prefix, "path", "p", "", "only values whose path starts with this")
	listCmd.Flags().IntVarP(&params.Depth, "depth", "d", keyvalues.Unlimited, "levels to descend, -1 for all")
	return listCmd
}

func newPathsCmd(a *app) *cobra.Command {
	params := &QueryParams{}
	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "list every dotted path in a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := a.load(params.Input)
			if err != nil {
				return err
			}
			paths := keyvalues.Paths(root, prefixFlag(cmd, "prefix", params.Prefix), params.Depth)
			return printPaths(cmd.OutOrStdout(), paths)
		},
	}
	pathsCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	pathsCmd.Flags().StringVarP(&params.Prefix, "prefix", "p", "", "only paths starting with this")
	pathsCmd.Flags().IntVarP(&params.Depth, "depth", "d", keyvalues.Unlimited, "levels to descend, -1 for all")
	return pathsCmd
}

// prefixFlag returns nil unless the flag was given, so that an explicit
// empty prefix still filters.
func prefixFlag(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
