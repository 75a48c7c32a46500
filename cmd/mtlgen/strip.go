package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mtlgen/internal/driver"
)

var stripCmd = &cobra.Command{
	Use:   "strip file.metal",
	Short: "Print a shader source with comments removed",
	Long: `Strip runs only the comment-removal stage and prints the canonical text
the declaration extractor operates on. Marker comments are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runStrip,
}

func runStrip(cmd *cobra.Command, args []string) error {
	text, err := driver.Strip(args[0])
	if err != nil {
		return fmt.Errorf("strip failed: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
