// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/labelstack/internal/inspect"
	"github.com/pdiddy/labelstack/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.pdf>",
	Short: "Report page count and page box dimensions",
	Long: `Inspect parses a PDF and reports its page count and the MediaBox (and
CropBox, when present) dimensions of every page, in points and inches. Use it
to pick the page index and to predict the stacked output size before running
the duplication.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runInspect,
}

func init() {
	inspectCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	info, err := inspect.Report(data)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	return formatInfo(os.Stdout, info, format)
}

func formatInfo(w io.Writer, info *types.DocumentInfo, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		data, err := yaml.Marshal(info)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "text":
		fmt.Fprintf(w, "%-5s  %-20s  %-20s  %s\n", "Page", "MediaBox (in)", "CropBox (in)", "Rotate")
		fmt.Fprintln(w, strings.Repeat("-", 58))
		for _, p := range info.Pages {
			mb := fmt.Sprintf("%.3f x %.3f", p.MediaBox.WidthIn, p.MediaBox.HeightIn)
			cb := "-"
			if p.CropBox != nil {
				cb = fmt.Sprintf("%.3f x %.3f", p.CropBox.WidthIn, p.CropBox.HeightIn)
			}
			fmt.Fprintf(w, "%-5d  %-20s  %-20s  %d\n", p.Index, mb, cb, p.Rotate)
		}
		fmt.Fprintf(w, "\n%d page(s)\n", info.PageCount)
		return nil
	default:
		return fmt.Errorf("unknown format %q: want text, json, or yaml", format)
	}
}
