package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"unify/internal/diag"
	"unify/internal/diagfmt"
	"unify/internal/driver"
	"unify/internal/project"
	"unify/internal/source"
	"unify/internal/strlit"
)

func init() {
	rootCmd.Flags().BoolP("in-place", "i", false, "rewrite files instead of printing diffs")
	rootCmd.Flags().BoolP("check-only", "c", false, "exit non-zero if any file would change, print nothing but the paths")
	rootCmd.Flags().BoolP("recursive", "r", false, "descend into directories")
	rootCmd.Flags().String("quote", "'", `preferred quote character (' or ")`)
	rootCmd.Flags().String("escape-simple", "opposite", "how to handle literals containing the preferred quote (opposite|backslash|ignore)")
	rootCmd.Flags().String("fstring-quote", "ignore", "quote style inside f-string expressions (single|double|depended|ignore)")
	rootCmd.Flags().IntP("jobs", "j", 0, "parallel workers (0 = one per CPU)")
	rootCmd.Flags().Bool("no-cache", false, "skip the clean-file cache")
	rootCmd.Flags().Bool("progress", false, "show a live progress display (requires a terminal)")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	useColor, err := resolveColor(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !useColor

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	checkOnly := opts.CheckOnly
	inPlace := opts.InPlace

	bag := diag.NewBag(256)
	opts.Reporter = diag.BagReporter{Bag: bag}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	if !noCache {
		if cachePath, cacheErr := driver.DefaultCachePath(); cacheErr == nil {
			opts.Cache = driver.OpenCache(cachePath)
		}
	}

	showProgress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return err
	}
	showProgress = showProgress && !quiet && isTerminal(os.Stdout)

	var results []driver.Result
	if showProgress {
		results, err = formatWithProgress(cmd.Context(), args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	if opts.Cache != nil {
		if saveErr := opts.Cache.Save(); saveErr != nil && !quiet {
			fmt.Fprintf(os.Stderr, "unify: cache: %v\n", saveErr)
		}
	}

	var hasErrors, hasChanges bool
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		switch {
		case checkOnly:
			if !quiet {
				fmt.Fprintln(os.Stdout, res.Path)
			}
		case inPlace:
			if !quiet && !showProgress {
				fmt.Fprintf(os.Stdout, "reformatted %s\n", res.Path)
			}
		default:
			renderDiff(os.Stdout, res.Diff, useColor)
		}
	}

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, source.NewFileSet(), diagfmt.PrettyOpts{
			Color: useColor && isTerminal(os.Stderr),
		})
	}

	if hasErrors {
		return fmt.Errorf("failed to process some files")
	}
	if checkOnly && hasChanges {
		return fmt.Errorf("files would be reformatted")
	}
	return nil
}

// buildOptions merges CLI flags over the nearest unify.toml, flags winning
// for everything set explicitly.
func buildOptions(cmd *cobra.Command) (driver.Options, error) {
	var opts driver.Options
	var err error

	if opts.InPlace, err = cmd.Flags().GetBool("in-place"); err != nil {
		return opts, err
	}
	if opts.CheckOnly, err = cmd.Flags().GetBool("check-only"); err != nil {
		return opts, err
	}
	if opts.Recursive, err = cmd.Flags().GetBool("recursive"); err != nil {
		return opts, err
	}
	if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return opts, err
	}
	if opts.InPlace && opts.CheckOnly {
		return opts, fmt.Errorf("--in-place cannot be combined with --check-only")
	}

	rules := strlit.DefaultRules()
	cfg := project.Config{}
	if wd, wdErr := os.Getwd(); wdErr == nil {
		found := false
		if cfg, found, err = project.Discover(wd); err != nil {
			return opts, err
		}
		if found {
			if rules, err = cfg.Rules(rules); err != nil {
				return opts, err
			}
		}
	}
	opts.Extensions = cfg.Extensions()

	if cmd.Flags().Changed("quote") {
		q, flagErr := cmd.Flags().GetString("quote")
		if flagErr != nil {
			return opts, flagErr
		}
		if q != "'" && q != `"` {
			return opts, fmt.Errorf(`--quote must be ' or ", got %q`, q)
		}
		rules.PreferredQuote = q[0]
	}
	if cmd.Flags().Changed("escape-simple") {
		s, flagErr := cmd.Flags().GetString("escape-simple")
		if flagErr != nil {
			return opts, flagErr
		}
		if rules.EscapeSimple, err = strlit.ParseEscapeStrategy(s); err != nil {
			return opts, err
		}
	}
	if cmd.Flags().Changed("fstring-quote") {
		s, flagErr := cmd.Flags().GetString("fstring-quote")
		if flagErr != nil {
			return opts, flagErr
		}
		if rules.FStringExprQuote, err = strlit.ParseExprQuote(s); err != nil {
			return opts, err
		}
	}

	opts.Rules = rules
	return opts, opts.Rules.Validate()
}

func resolveColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(strings.ToLower(mode)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

var (
	diffAddColor  = color.New(color.FgGreen)
	diffDelColor  = color.New(color.FgRed)
	diffHunkColor = color.New(color.FgCyan)
)

func renderDiff(w *os.File, diff []byte, useColor bool) {
	if !useColor {
		_, _ = w.Write(diff)
		return
	}
	for _, line := range bytes.SplitAfter(diff, []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		switch line[0] {
		case '+':
			diffAddColor.Fprint(w, string(line))
		case '-':
			diffDelColor.Fprint(w, string(line))
		case '@':
			diffHunkColor.Fprint(w, string(line))
		default:
			_, _ = w.Write(line)
		}
	}
}
