// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the labelstack CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/labelstack/internal/stack"
	"github.com/pdiddy/labelstack/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command: it runs the duplication itself, so the plain
// two-argument invocation stays the whole interface for label printing.
var rootCmd = &cobra.Command{
	Use:   "labelstack <input.pdf> <output.pdf>",
	Short: "Duplicate a PDF page vertically with a gap",
	Long: `labelstack duplicates one page of a PDF twice onto a single taller page,
stacked vertically with a configurable gap. The first copy sits at the bottom
of the output page, the second above it. Content is placed as-is: no scaling,
no rotation.

The output page is as wide as the source page and twice its height plus the
gap. Use inspect to look at page geometry first, or serve for the web UI.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         runStack,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./labelstack.yaml or ~/.config/labelstack/config.yaml)")

	rootCmd.Flags().Int("page", 0, "zero-based page index to duplicate")
	rootCmd.Flags().Float64("gap", types.DefaultGapInches, "gap in inches between the two copies")
	rootCmd.Flags().Bool("use-cropbox", false, "use the CropBox instead of the MediaBox for sizing/placement")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("labelstack")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "labelstack"))
		}
	}

	viper.SetEnvPrefix("LABELSTACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runStack(cmd *cobra.Command, args []string) error {
	opts := stackOptions(cmd)
	if err := stack.DuplicateFile(args[0], args[1], opts); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (page %d duplicated, %.2f in gap)\n", args[1], opts.Page, opts.GapInches)
	return nil
}

// stackOptions resolves duplication settings: flag beats config file beats
// built-in default.
func stackOptions(cmd *cobra.Command) stack.Options {
	opts := stack.DefaultOptions()

	if viper.IsSet("page") {
		opts.Page = viper.GetInt("page")
	}
	if viper.IsSet("gap") {
		opts.GapInches = viper.GetFloat64("gap")
	}
	if viper.IsSet("use_cropbox") {
		opts.UseCropBox = viper.GetBool("use_cropbox")
	}

	if cmd.Flags().Changed("page") {
		opts.Page, _ = cmd.Flags().GetInt("page")
	}
	if cmd.Flags().Changed("gap") {
		opts.GapInches, _ = cmd.Flags().GetFloat64("gap")
	}
	if cmd.Flags().Changed("use-cropbox") {
		opts.UseCropBox, _ = cmd.Flags().GetBool("use-cropbox")
	}
	return opts
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
