package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlcomponent/internal/config"
	"github.com/vango-dev/htmlcomponent/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli carries the state shared by all commands.
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	if err := newRootCmd(c).Execute(); err != nil {
		errors.Fprint(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "htmlc",
		Short: "Compile element trees to HTML",
		Long: `htmlc compiles JSON element documents into HTML.

Documents describe elements with ordered attributes, a role, an
optional extended built-in tag for web components, and children.
Output goes to stdout, a file, or an S3 object.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	rootCmd.SetIn(c.stdin)
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to htmlc.json (default: nearest in parent directories)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		compileCmd(c),
		fmtCmd(c),
		serveCmd(c),
		initCmd(c),
		explainCmd(c),
		versionCmd(c),
	)
	return rootCmd
}

// setup loads configuration and builds the logger.
func (c *cli) setup() error {
	if c.noColor {
		errors.DisableColors()
	} else {
		errors.EnableColors()
	}

	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	if c.logLevel != "" {
		if _, err := config.ParseLevel(c.logLevel); err != nil {
			return err
		}
		c.cfg.LogLevel = c.logLevel
	}
	c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: c.cfg.Level(),
	}))
	return nil
}

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	fmt.Fprintf(c.stderr, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
