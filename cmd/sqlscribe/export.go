package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"scribehq/sqlscribe/pkg/cli"
	"scribehq/sqlscribe/pkg/config"
	"scribehq/sqlscribe/pkg/export"
	"scribehq/sqlscribe/pkg/export/journal"
	"scribehq/sqlscribe/pkg/inventory"
	"scribehq/sqlscribe/pkg/scripting"
)

var exportFlags struct {
	input     string
	options   string
	path      string
	outputDir string
	encoding  string
	append    bool
	passthru  bool
	silent    bool
	confirm   bool
	journal   bool
	format    string
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export object definitions to SQL scripts",
	Long: `Export the objects of a server inventory to SQL script files.

Each object is scripted and written to a file named
<server>-<kind>-<timestamp>.sql, with backslashes in instance names replaced
by '$'. Objects sharing a server and kind land in the same file with one
header block. Pre-existing files are skipped unless --append is given.

Examples:
  # Export to auto-named files in the current directory
  sqlscribe export --input servers.yaml

  # Collect everything into a single file
  sqlscribe export --input servers.yaml --path all.sql --append

  # Stream scripts to stdout instead of files
  sqlscribe export --input servers.yaml --passthru

  # Ask before each object is written
  sqlscribe export --input servers.yaml --confirm`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFlags.input, "input", "i", "", "inventory file (required)")
	exportCmd.Flags().StringVar(&exportFlags.options, "options", "", "scripting options file")
	exportCmd.Flags().StringVarP(&exportFlags.path, "path", "p", "", "explicit output file path")
	exportCmd.Flags().StringVar(&exportFlags.outputDir, "output-dir", "", "directory for auto-named files")
	exportCmd.Flags().StringVar(&exportFlags.encoding, "encoding", "", "file encoding: ascii, unicode, bigendianunicode, utf8, ...")
	exportCmd.Flags().BoolVar(&exportFlags.append, "append", false, "append to existing files instead of skipping")
	exportCmd.Flags().BoolVar(&exportFlags.passthru, "passthru", false, "write scripts to stdout instead of files")
	exportCmd.Flags().BoolVar(&exportFlags.silent, "silent", false, "suppress progress logging")
	exportCmd.Flags().BoolVar(&exportFlags.confirm, "confirm", false, "ask before each object is exported")
	exportCmd.Flags().BoolVar(&exportFlags.journal, "journal", false, "record this run in the journal even if disabled in config")
	exportCmd.Flags().StringVar(&exportFlags.format, "format", "text", "report format: text, json, csv")

	_ = exportCmd.MarkFlagRequired("input")
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := config.Initialize(cfgFile); err != nil {
		return cli.NewConfigError("", fmt.Sprintf("failed to load config: %v", err))
	}
	cfg := config.GetConfig()
	setupLogging(cfg)

	return executeExport(cfg, os.Stdout)
}

// executeExport runs one export batch with the current flag values.
func executeExport(cfg *config.Config, out io.Writer) error {
	format, err := cli.ParseOutputFormat(exportFlags.format)
	if err != nil {
		return err
	}

	encName := exportFlags.encoding
	if encName == "" {
		encName = cfg.Export.Encoding
	}
	enc, err := export.ParseEncoding(encName)
	if err != nil {
		return cli.NewConfigError("encoding", err.Error())
	}
	if enc == export.EncodingUTF7 {
		return cli.NewConfigError("encoding", "utf7 has no supported encoder")
	}

	opts, err := resolveOptions(exportFlags.options, cfg)
	if err != nil {
		return err
	}

	objects, err := inventory.Load(exportFlags.input)
	if err != nil {
		return cli.NewCommandError("export", err)
	}

	outputDir := exportFlags.outputDir
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}

	runner := &export.Runner{
		Options:   opts,
		Path:      exportFlags.path,
		OutputDir: outputDir,
		Encoding:  enc,
		Append:    exportFlags.append,
		Passthru:  exportFlags.passthru,
		Silent:    exportFlags.silent,
	}

	if exportFlags.confirm {
		runner.Confirm = promptConfirm(os.Stdin, os.Stderr)
	}

	// Progress goes to stderr; it would corrupt passthru scripts on stdout
	// and interleave badly with the confirmation prompt.
	if !exportFlags.silent && !exportFlags.passthru && !exportFlags.confirm {
		progress := cli.NewProgressReporter(nil)
		progress.Start(int64(len(objects)))
		var done int64
		runner.OnItem = func(item *export.ItemResult) {
			done++
			progress.Update(done)
		}
		defer progress.Finish()
		// The bar owns stderr while it renders; per-item log lines would
		// tear it. Errors still reach the report and the final table.
		runner.Silent = true
	}

	if cfg.Journal.Enabled || exportFlags.journal {
		j, err := journal.NewSQLiteJournal(journalConfig(cfg))
		if err != nil {
			return cli.NewCommandError("export", err)
		}
		defer j.Close()
		runner.Journal = j
	}

	ctx, stop := cli.SignalContext()
	defer stop()

	report := runner.Run(ctx, objects)

	if exportFlags.passthru {
		for _, block := range report.Scripts() {
			fmt.Fprint(out, block)
		}
		return nil
	}

	// Item failures are reported, not fatal: the report carries them.
	return cli.NewFormatter(format).FormatTo(out, report)
}

// resolveOptions resolves the options file from the flag, then the config,
// then defaults.
func resolveOptions(flagPath string, cfg *config.Config) (*scripting.Options, error) {
	path := flagPath
	if path == "" {
		path = cfg.Export.OptionsFile
	}
	if path == "" {
		return scripting.DefaultOptions(), nil
	}
	opts, err := scripting.LoadOptions(path)
	if err != nil {
		return nil, cli.NewConfigError("options", err.Error())
	}
	return opts, nil
}

// promptConfirm asks on the terminal before each object is written. Anything
// other than y/yes declines.
func promptConfirm(in io.Reader, prompt io.Writer) func(scripting.Scriptable, *export.Target) bool {
	reader := bufio.NewReader(in)
	return func(obj scripting.Scriptable, target *export.Target) bool {
		fmt.Fprintf(prompt, "Export %s [%s] to %s? [y/N] ", obj.Name(), obj.Kind(), target)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	}
}

// journalConfig maps the journal section to the SQLite backend configuration.
func journalConfig(cfg *config.Config) *journal.SQLiteConfig {
	return &journal.SQLiteConfig{
		Path:         cfg.Journal.Path,
		MaxOpenConns: cfg.Journal.MaxOpenConns,
		WALMode:      cfg.Journal.WALMode,
		BusyTimeout:  cfg.Journal.BusyTimeout,
	}
}
