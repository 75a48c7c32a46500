package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mtlgen/internal/gen"
	"mtlgen/internal/groups"
	"mtlgen/internal/source"
)

func docs(pairs ...string) []source.Document {
	ds := source.NewDocSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		ds.AddVirtual(pairs[i], []byte(pairs[i+1]))
	}
	return ds.Docs()
}

func TestRunDefaultGroups(t *testing.T) {
	out, err := Run(docs("a.metal", "vertex float4 v1(){}\nfragment float4 f1(){}\n"), "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, want := range []string{
		"enum ModShaders {",
		"enum MTLVertexShader: String",
		"case v1",
		"enum MTLFragmentShader: String",
		"case f1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunMarkerOverridesDefault(t *testing.T) {
	out, err := Run(docs("a.metal", "//MTLShaderGroup: Lighting\nkernel void k1(){}\n"), "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out, "enum Lighting: String") {
		t.Errorf("output missing Lighting group:\n%s", out)
	}
	if strings.Contains(out, "MTLComputeShader") {
		t.Errorf("marker did not override the compute default:\n%s", out)
	}
}

// A marker hidden in a comment or string must not create a group.
func TestRunMarkerInsideBlockCommentIgnored(t *testing.T) {
	out, err := Run(docs("a.metal", "/*\n//MTLShaderGroup: Hidden\n*/\nkernel void k1(){}\n"), "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.Contains(out, "Hidden") {
		t.Errorf("marker inside block comment leaked:\n%s", out)
	}
	if !strings.Contains(out, "MTLComputeShader") {
		t.Errorf("kernel did not fall back to the compute default:\n%s", out)
	}
}

func TestRunDeduplicatesAcrossDocuments(t *testing.T) {
	out, err := Run(docs(
		"a.metal", "vertex float4 f(){}\n",
		"b.metal", "vertex float4 f(){}\n",
	), "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out, "case f\n"); got != 1 {
		t.Errorf("member f emitted %d times, want 1:\n%s", got, out)
	}
}

func TestRunOrderIndependent(t *testing.T) {
	a := "vertex float4 v1(){}\n//MTLShaderGroup: Post\nfragment float4 blur(){}\n"
	b := "kernel void reduce(){}\nfragment float4 tonemap(){}\n"

	out1, err1 := Run(docs("a.metal", a, "b.metal", b), "Mod")
	out2, err2 := Run(docs("b.metal", b, "a.metal", a), "Mod")
	if err1 != nil || err2 != nil {
		t.Fatalf("Run: %v / %v", err1, err2)
	}
	if out1 != out2 {
		t.Errorf("output depends on document order:\n%s\nvs:\n%s", out1, out2)
	}
}

func TestRunNoDeclarationsYieldsSentinel(t *testing.T) {
	out, err := Run(docs("a.metal", "// nothing here\nstatic int x = 0;\n"), "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != gen.Sentinel+"\n" {
		t.Errorf("Run = %q, want the sentinel line", out)
	}
}

func TestRunEmptyDocumentSet(t *testing.T) {
	out, err := Run(nil, "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out != gen.Sentinel+"\n" {
		t.Errorf("Run = %q, want the sentinel line", out)
	}
}

func TestRunInvalidGroupNameAborts(t *testing.T) {
	out, err := Run(docs(
		"good.metal", "vertex float4 v1(){}\n",
		"bad.metal", "//MTLShaderGroup: Lighting_2\nkernel void k1(){}\n",
	), "Mod")
	if err == nil {
		t.Fatal("expected error for invalid group name")
	}
	if out != "" {
		t.Errorf("partial output produced on error: %q", out)
	}

	var nameErr *groups.NameError
	if !errors.As(err, &nameErr) {
		t.Fatalf("error %v is not a *NameError", err)
	}
	if nameErr.Doc != "bad.metal" || nameErr.Bad != '_' {
		t.Errorf("NameError = %+v, want doc bad.metal bad '_'", nameErr)
	}
}

func TestRunParallelMatchesRun(t *testing.T) {
	var pairs []string
	pairs = append(pairs,
		"a.metal", "vertex float4 v1(){}\n",
		"b.metal", "//MTLShaderGroup: Post\nfragment float4 blur(){}\n",
		"c.metal", "kernel void k(){}\ncompute void c(){}\n",
		"d.metal", "// only comments\n",
	)
	d := docs(pairs...)

	sequential, err := Run(d, "Mod")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, jobs := range []int{0, 1, 2, 8} {
		parallel, err := RunParallel(context.Background(), d, "Mod", jobs)
		if err != nil {
			t.Fatalf("RunParallel(jobs=%d): %v", jobs, err)
		}
		if parallel != sequential {
			t.Errorf("RunParallel(jobs=%d) diverged from Run:\n%s\nvs:\n%s", jobs, parallel, sequential)
		}
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	a := write("a.metal", "vertex float4 v1(){}\n")
	b := write("b.metal", "fragment float4 f1(){}\n")

	out, err := RunFiles(context.Background(), []string{a, b}, "Mod", 0)
	if err != nil {
		t.Fatalf("RunFiles: %v", err)
	}
	if !strings.Contains(out, "case v1") || !strings.Contains(out, "case f1") {
		t.Errorf("output missing members:\n%s", out)
	}
}

func TestRunFilesUnreadableAborts(t *testing.T) {
	out, err := RunFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.metal")}, "Mod", 0)
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if out != "" {
		t.Errorf("partial output produced on error: %q", out)
	}
}

func TestStrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.metal")
	if err := os.WriteFile(path, []byte("vertex float4 v1(){} // c\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := Strip(path)
	if err != nil {
		t.Fatalf("Strip: %v", err)
	}
	if out != "vertex float4 v1(){}\n" {
		t.Errorf("Strip = %q", out)
	}
}
