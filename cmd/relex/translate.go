package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relex/internal/config"
	"relex/internal/driver"
	"relex/internal/tokenfmt"
	"relex/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] file.rb",
	Short: "Translate a primitive token stream into parser tokens",
	Long:  `Translate consumes a source file plus its serialized tokenizer event stream and emits the translated token sequence`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().String("tokens", "", "path to the token stream (default: <file>.tokens.yaml)")
	translateCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	translateCmd.Flags().String("config", "", "path to a relex.toml manifest")
	translateCmd.Flags().String("dir", "", "translate every eligible source file under this directory")
	translateCmd.Flags().Int("jobs", 0, "parallel workers for --dir (0 = GOMAXPROCS)")
}

func runTranslate(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	if dir != "" {
		if len(args) > 0 {
			return fmt.Errorf("--dir and a file argument are mutually exclusive")
		}
		return runTranslateDir(cmd, dir, format, opts)
	}

	if len(args) != 1 {
		return fmt.Errorf("expected a source file argument (or --dir)")
	}
	srcPath := args[0]

	tokensPath, err := cmd.Flags().GetString("tokens")
	if err != nil {
		return fmt.Errorf("failed to get tokens flag: %w", err)
	}
	if tokensPath == "" {
		tokensPath = driver.TokensPathFor(srcPath)
	}

	result, err := driver.TranslateFile(srcPath, tokensPath, opts)
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	return emitResult(cmd, result, format)
}

func runTranslateDir(cmd *cobra.Command, dir, format string, opts translate.Options) error {
	if format == "msgpack" {
		return fmt.Errorf("msgpack output is per-file; use the single-file form")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	results, err := driver.TranslateDir(cmd.Context(), dir, opts, jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "== %s\n", res.Path)
		if err := emitResult(cmd, res.Result, format); err != nil {
			return err
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func loadOptions(cmd *cobra.Command) (translate.Options, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return translate.Options{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		return config.Default().Options(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return translate.Options{}, err
	}
	return cfg.Options(), nil
}

func emitResult(cmd *cobra.Command, result *driver.Result, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
		useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
		return tokenfmt.FormatPretty(out, result.Tokens, result.Buffer, useColor)
	case "json":
		return tokenfmt.FormatJSON(out, result.Tokens, result.Buffer)
	case "msgpack":
		return tokenfmt.WriteMsgpack(out, result.Tokens, result.Buffer)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
