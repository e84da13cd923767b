package main

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"mdpo/internal/config"
	"mdpo/internal/logging"
	"mdpo/internal/wrapwidth"
	"mdpo/pkg/fileops"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	encoding   string
	verbose    bool
	noColor    bool

	cfg   *config.Config
	style styles
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "mdpoio",
		Short:         "File helpers of the mdpo Markdown translation tools",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/mdpo/config.yaml)")
	root.PersistentFlags().StringVarP(&a.encoding, "encoding", "e", "", "text encoding for reading and writing files")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output to stderr")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", termenv.EnvNoColor(), "disable colored output (default from NO_COLOR)")

	root.AddCommand(
		a.filterCmd(),
		a.resolveCmd(),
		a.globCmd(),
		a.hashCmd(),
		a.saveCmd(),
		a.fixturesCmd(),
	)
	return root
}

func (a *app) setup() error {
	level := log.WarnLevel
	if a.verbose {
		level = log.DebugLevel
	}
	logging.SetDefault(logging.NewWriterLogger(a.errOut, level))
	a.style = newStyles(a.out, a.noColor)

	path := a.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadOrDefault(fileops.ExpandPath(path))
	if err != nil {
		return err
	}

	if a.encoding != "" {
		if _, err := fileops.LookupEncoding(a.encoding); err != nil {
			return err
		}
		cfg.Encoding = a.encoding
	}

	a.cfg = cfg
	logging.Debug("Loaded config",
		"path", path,
		"encoding", cfg.Encoding,
		"ignore_paths", cfg.IgnorePaths,
		"wrap_widths", cfg.WrapWidths,
	)
	return nil
}

func (a *app) filterCmd() *cobra.Command {
	var (
		ignore   []string
		dir      string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "filter [paths...]",
		Short: "Print paths that are not ignored, sorted",
		Long: `Print the given paths, minus those whose file name, parent directory
name, full path or parent path equals an ignore entry. Arguments that are
globs are expanded first. With --dir the candidates are collected from a
directory tree instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			defer logging.LogPerformance("filter", start)

			var candidates []string
			if dir != "" {
				opts := &fileops.CollectOptions{
					SkipDirs:           fileops.DefaultSkipDirs(),
					SkipUnreadableDirs: true,
				}
				if markdown {
					opts.FileFilter = fileops.IsMarkdownFile
				}
				files, err := fileops.CollectFiles(dir, opts)
				if err != nil {
					return err
				}
				candidates = append(candidates, files...)
			}
			for _, arg := range args {
				if res := fileops.ToGlobOrContent(arg); res.IsGlob() {
					candidates = append(candidates, res.Paths()...)
				} else {
					candidates = append(candidates, res.Content())
				}
			}

			ignorePaths := append(append([]string{}, a.cfg.IgnorePaths...), ignore...)
			kept := fileops.FilterPaths(candidates, ignorePaths...)
			logging.Debug("Filtered paths", "candidates", len(candidates), "kept", len(kept))

			for _, p := range kept {
				fmt.Fprintln(a.out, p)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&ignore, "ignore", "i", nil, "entry to ignore (repeatable)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "collect candidate files from this directory")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "with --dir, only collect Markdown files")
	return cmd
}

func (a *app) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve VALUE",
		Short: "Print the file content if VALUE is a file, otherwise VALUE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := fileops.ToFileContentIfIsFile(args[0], a.cfg.Encoding)
			if err != nil {
				return err
			}
			fmt.Fprint(a.out, content)
			return nil
		},
	}
}

func (a *app) globCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "glob VALUE",
		Short: "Tell whether VALUE is a glob matching files or literal content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res := fileops.ToGlobOrContent(args[0])
			if !res.IsGlob() {
				fmt.Fprintln(a.out, a.style.label.Render("content"))
				fmt.Fprintln(a.out, res.Content())
				return nil
			}

			fmt.Fprintln(a.out, a.style.label.Render("glob"))
			for _, p := range res.Paths() {
				fmt.Fprintln(a.out, p)
			}
			return nil
		},
	}
}

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash FILE...",
		Short: "Print the MD5 digest of each file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				digest, err := fileops.FileHash(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s  %s\n", digest, path)
			}
			return nil
		},
	}
}

func (a *app) saveCmd() *cobra.Command {
	var parents bool

	cmd := &cobra.Command{
		Use:   "save FILE [VALUE]",
		Short: "Write VALUE (or stdin) to FILE and report whether it changed",
		Long: `Write content to FILE and print "changed" or "unchanged". VALUE may be
a path, in which case the content of that file is written. Without VALUE the
content is read from standard input. FILE is always rewritten.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]

			var content string
			if len(args) == 2 {
				resolved, err := fileops.ToFileContentIfIsFile(args[1], a.cfg.Encoding)
				if err != nil {
					return err
				}
				content = resolved
			} else {
				data, err := io.ReadAll(a.in)
				if err != nil {
					return fmt.Errorf("failed to read standard input: %w", err)
				}
				content = string(data)
			}

			if parents {
				if err := fileops.EnsureDirectoryExists(filepath.Dir(target)); err != nil {
					return err
				}
			}

			changed, err := fileops.SaveFileCheckingFileChanged(target, content, a.cfg.Encoding)
			if err != nil {
				return err
			}
			logging.Debug("Saved file", "path", target, "changed", changed)

			if changed {
				fmt.Fprintln(a.out, a.style.changed.Render("changed"))
			} else {
				fmt.Fprintln(a.out, a.style.unchanged.Render("unchanged"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&parents, "parents", "p", false, "create missing parent directories")
	return cmd
}

func (a *app) fixturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures DIR",
		Short: "List wrap width fixture cases found in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cases, err := wrapwidth.Cases(args[0], a.cfg.WrapWidths...)
			if err != nil {
				return err
			}

			for _, c := range cases {
				status := a.style.changed.Render("ok")
				if !fileops.IsFile(c.ExpectPath()) {
					status = a.style.missing.Render("missing")
				}
				fmt.Fprintf(a.out, "%s\t%s\t%s\t%s\n", c, c.POPath(), c.ExpectPath(), status)
			}
			return nil
		},
	}
}
