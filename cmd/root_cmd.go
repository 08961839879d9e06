package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dzjyyds666/kvq/parse/keyvalues"
	"github.com/dzjyyds666/kvq/pkg"
	"github.com/dzjyyds666/kvq/pkg/config"
	"github.com/dzjyyds666/kvq/pkg/logging"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const version = "kvq v0.1 -- HEAD"

// app carries the settings shared by every sub command.
type app struct {
	ConfigPath string `json:"config"`    // 配置文件路径
	Charset    string `json:"charset"`   // 输入文件字符集
	LogLevel   string `json:"log_level"` // 日志级别
	NoColor    bool   `json:"no_color"`  // 关闭颜色输出

	cfg    config.Config
	logger *slog.Logger
}

func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logging.Default()}

	rootCmd := &cobra.Command{
		Use:   "kvq",
		Short: "Kvq is a tool for querying and converting KeyValues files.",
		Long: "Kvq is a tool for querying and converting KeyValues files, the quoted and brace-delimited " +
			"text format used by Source-engine games. It can print values, list entries, merge files and " +
			"convert them to JSON or YAML.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.ConfigPath, "config", "", "config file (default $HOME/"+config.FileName+")")
	rootCmd.PersistentFlags().StringVar(&a.Charset, "charset", "", "input charset (utf-8, utf-16, latin1, ...)")
	rootCmd.PersistentFlags().StringVar(&a.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&a.NoColor, "no-color", false, "disable colored output")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number of Kvq",
		Long:  `All software has versions. This is Kvq's`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newJsonCmd(a), newYamlCmd(a))
	rootCmd.AddCommand(newMergeCmd(a))
	rootCmd.AddCommand(newGetCmd(a), newListCmd(a), newPathsCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the config file and applies the flag overrides.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	if a.Charset != "" {
		cfg.Charset = a.Charset
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(logging.Config{Level: level, Output: cmd.ErrOrStderr(), Service: "kvq"})
	a.logger.Debug("config loaded", "charset", cfg.Charset, "indent", cfg.Indent, "format", cfg.Format)
	return nil
}

// load reads and parses one input file.
func (a *app) load(path string) (*keyvalues.Container, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("no input file path")
	}
	exist, err := pkg.CheckFileExist(path)
	if err != nil {
		return nil, fmt.Errorf("check file exist error: %w", err)
	}
	if !exist {
		return nil, fmt.Errorf("input file not exist: %s", path)
	}
	lines, err := pkg.ReadLines(path, a.cfg.Charset)
	if err != nil {
		return nil, err
	}
	root := keyvalues.Parse(lines, "")
	a.logger.Debug("parsed file", "path", path, "lines", len(lines), "root", root.Key(), "children", root.Len())
	if root.Len() == 0 {
		a.logger.Warn("no entries parsed", "path", path)
	}
	return root, nil
}

// emit writes text to the output file when one is given, else to w.
func (a *app) emit(w io.Writer, output, text string) error {
	if output == "" {
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, err := io.WriteString(w, text)
		return err
	}
	dir, name := splitOutput(output)
	if err := pkg.WriteText(dir, name, text); err != nil {
		return err
	}
	a.logger.Info("output written", "path", output, "bytes", len(text))
	return nil
}

// colorize reports whether output to w should carry colors.
func (a *app) colorize(w io.Writer) bool {
	if a.NoColor {
		return false
	}
	if a.cfg.Color != nil {
		return *a.cfg.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) paint(w io.Writer, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if a.colorize(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
