package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/format"
)

func extractCmd() *cobra.Command {
	var out string
	var outputFormat string
	var pretty bool

	cmd := &cobra.Command{
		Use:   "extract [path...]",
		Short: "Extract outlines from PDF files or directories of PDFs",
		Long: `Extract runs the outline-inference pipeline over one or more PDFs.
Each path may be a PDF file or a directory, in which case every *.pdf
inside it (non-recursive) is processed. Results are written to the output
directory as <name>.json (or .md / .html, per --format).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := slog.New(slog.NewTextHandler(os.Stderr, nil))

			if !format.Supported(outputFormat) {
				return fmt.Errorf("unsupported output format %q", outputFormat)
			}

			files, err := collectPDFs(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no PDF files found")
			}

			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			failed := 0
			for _, file := range files {
				if err := processFile(file, out, outputFormat, pretty); err != nil {
					log.Error("extraction failed", "file", file, "error", err)
					failed++
					continue
				}
				log.Info("outline written", "file", file)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "output_json", "output directory")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format: json, markdown or html")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}

// collectPDFs expands the argument list: files pass through, directories
// contribute every *.pdf directly inside them
func collectPDFs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// processFile runs the pipeline over one PDF and writes the result
func processFile(file, outDir, outputFormat string, pretty bool) error {
	outline, err := outliner.Open(file).Outline()
	if err != nil {
		return err
	}

	var body []byte
	if outputFormat == format.FormatJSON && pretty {
		body, err = format.JSON(outline, true)
	} else {
		body, err = format.Render(outline, outputFormat)
	}
	if err != nil {
		return err
	}

	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	target := filepath.Join(outDir, stem+extensionFor(outputFormat))
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

// extensionFor maps an output format to its file extension
func extensionFor(name string) string {
	switch name {
	case format.FormatMarkdown:
		return ".md"
	case format.FormatHTML:
		return ".html"
	default:
		return ".json"
	}
}
