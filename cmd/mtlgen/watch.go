package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mtlgen/internal/diag"
	"mtlgen/internal/driver"
	"mtlgen/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Regenerate whenever shader sources change",
	Long: `Watch monitors the manifest's input files and regenerates the output on
every change. A failing regeneration keeps the previous output file intact.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runWatch,
	SilenceErrors: true,
}

func runWatch(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}
	manifest, err := loadManifest(startDir)
	if err != nil {
		return reportError(cmd, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	colored := useColor(cmd, os.Stdout)
	okLabel := "ok"
	if colored {
		okLabel = color.New(color.FgGreen, color.Bold).Sprint("ok")
	}

	regenerate := func() {
		paths, err := manifest.InputFiles()
		if err != nil {
			diag.Pretty(os.Stderr, diag.FromError(err), useColor(cmd, os.Stderr))
			return
		}
		out, err := driver.RunFiles(ctx, paths, manifest.Package.Name, jobsFlag(cmd))
		if err != nil {
			diag.Pretty(os.Stderr, diag.FromError(err), useColor(cmd, os.Stderr))
			return
		}
		if err := os.WriteFile(manifest.OutputPath(), []byte(out), 0o644); err != nil {
			diag.Pretty(os.Stderr, diag.FromError(err), useColor(cmd, os.Stderr))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %s (%d shader files)\n", okLabel, manifest.Generate.Output, len(paths))
	}

	regenerate()

	w, err := watcher.New(manifest.Root, manifest.Matches)
	if err != nil {
		return reportError(cmd, err)
	}
	defer w.Close()

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s (Ctrl-C to stop)\n", manifest.Root)
	err = w.Run(ctx, func(paths []string) {
		for _, p := range paths {
			if rel, relErr := filepath.Rel(manifest.Root, p); relErr == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "changed: %s\n", rel)
			}
		}
		regenerate()
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
