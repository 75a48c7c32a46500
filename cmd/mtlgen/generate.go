package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"mtlgen/internal/diag"
	"mtlgen/internal/driver"
	"mtlgen/internal/gen"
	"mtlgen/internal/project"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [file.metal...]",
	Short: "Generate shader enumerations from Metal sources",
	Long: `Generate scans Metal shader sources for entry-point declarations and emits
a Swift file of enumerations grouped per MTLShaderGroup marker comment (or
per qualifier default). With no file arguments the inputs, module name and
output path come from mtlgen.toml.`,
	RunE:          runGenerate,
	SilenceErrors: true,
}

func init() {
	generateCmd.Flags().StringP("module", "m", "", "module name prefixing the generated container")
	generateCmd.Flags().StringP("output", "o", "", "output file (default: stdout, or the manifest [generate].output)")
}

var errGenerateFailed = errors.New("generate failed")

func runGenerate(cmd *cobra.Command, args []string) error {
	moduleName, err := cmd.Flags().GetString("module")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		manifest, err := loadManifest(".")
		if err != nil {
			return reportError(cmd, err)
		}
		if moduleName == "" {
			moduleName = manifest.Package.Name
		}
		if output == "" {
			output = manifest.OutputPath()
		}
		paths, err = manifest.InputFiles()
		if err != nil {
			return reportError(cmd, err)
		}
	}
	if moduleName == "" {
		return reportError(cmd, errors.New("no module name: pass --module or add [package].name to mtlgen.toml"))
	}

	out, err := driver.RunFiles(cmd.Context(), paths, moduleName, jobsFlag(cmd))
	if err != nil {
		return reportError(cmd, err)
	}

	if strings.TrimSpace(out) == gen.Sentinel {
		diag.Pretty(os.Stderr, diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.GenNoShaders,
			Message:  "no shader functions found in the inputs",
		}, useColor(cmd, os.Stderr))
	}

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
		return reportError(cmd, fmt.Errorf("writing output: %w", err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d shader files)\n", output, len(paths))
	return nil
}

// reportError renders err as a diagnostic on stderr and returns the sentinel
// that makes main exit nonzero without cobra printing the error again.
func reportError(cmd *cobra.Command, err error) error {
	diag.Pretty(os.Stderr, diag.FromError(err), useColor(cmd, os.Stderr))
	return errGenerateFailed
}

// loadManifest finds and parses the nearest mtlgen.toml at or above startDir.
func loadManifest(startDir string) (*project.Manifest, error) {
	path, ok, err := project.Find(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("no mtlgen.toml found; run 'mtlgen init' or pass input files explicitly")
	}
	return project.Load(path)
}
