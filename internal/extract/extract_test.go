package extract

import (
	"testing"
)

func TestScanDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Decl
	}{
		{
			name:  "vertex and fragment",
			input: "vertex float4 v1(){}\nfragment float4 f1(){}\n",
			want: []Decl{
				{Qualifier: QualifierVertex, Name: "v1", Line: 0},
				{Qualifier: QualifierFragment, Name: "f1", Line: 1},
			},
		},
		{
			name:  "kernel and compute",
			input: "kernel void k1(device float* x){}\ncompute void c1(){}\n",
			want: []Decl{
				{Qualifier: QualifierKernel, Name: "k1", Line: 0},
				{Qualifier: QualifierCompute, Name: "c1", Line: 1},
			},
		},
		{
			name:  "multi-line signature",
			input: "kernel\nvoid\nk1(device float* x) {}\n",
			want: []Decl{
				{Qualifier: QualifierKernel, Name: "k1", Line: 0},
			},
		},
		{
			name:  "qualifier and type on one line name on next",
			input: "vertex VertexOut\nshadedVertex(uint id [[vertex_id]]) {}\n",
			want: []Decl{
				{Qualifier: QualifierVertex, Name: "shadedVertex", Line: 0},
			},
		},
		{
			name:  "templated return type",
			input: "kernel texture2d<float,access::write> blur(){}\n",
			want: []Decl{
				{Qualifier: QualifierKernel, Name: "blur", Line: 0},
			},
		},
		{
			name:  "leading whitespace before qualifier",
			input: "    vertex float4 v1(){}\n",
			want: []Decl{
				{Qualifier: QualifierVertex, Name: "v1", Line: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, _ := Scan(tt.input)
			assertDecls(t, decls, tt.want)
		})
	}
}

func TestScanRejectsNonDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "qualifier not at line start",
			input: "static vertex float4 v1(){}\n",
		},
		{
			name:  "no return type",
			input: "vertex v1(){}\n",
		},
		{
			name:  "parenthesis inside type run",
			input: "vertex float4(3) v1(){}\n",
		},
		{
			name:  "closing parenthesis before open",
			input: "vertex float4 x) v1(\n",
		},
		{
			name:  "qualifier used as variable",
			input: "int vertex = 3;\nfloat fragment;\n",
		},
		{
			name:  "name is not an identifier",
			input: "vertex float4 3d(){}\n",
		},
		{
			name:  "qualifier at end of input",
			input: "fragment\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decls, _ := Scan(tt.input)
			if len(decls) != 0 {
				t.Errorf("Scan(%q) found %d declarations, want 0: %v", tt.input, len(decls), decls)
			}
		})
	}
}

// "int vertex = 3;" must not match even though the keyword appears: the
// token is not at the start of the line. A qualifier starting a new line
// restarts matching instead of being swallowed by a broken declaration.
func TestScanQualifierRestart(t *testing.T) {
	input := "vertex\nfragment float4 f1(){}\n"
	decls, _ := Scan(input)
	want := []Decl{{Qualifier: QualifierFragment, Name: "f1", Line: 1}}
	assertDecls(t, decls, want)
}

func TestScanMarkers(t *testing.T) {
	input := "//MTLShaderGroup: Lighting\nkernel void k1(){}\n// MTLShaderGroup:Post\nfragment float4 f1(){}\n"
	_, markers := Scan(input)

	want := []Marker{
		{Line: 0, Name: " Lighting"},
		{Line: 2, Name: "Post"},
	}
	if len(markers) != len(want) {
		t.Fatalf("got %d markers, want %d: %v", len(markers), len(want), markers)
	}
	for i, m := range markers {
		if m != want[i] {
			t.Errorf("marker %d = %+v, want %+v", i, m, want[i])
		}
	}
}

func TestScanMixedContent(t *testing.T) {
	input := "#include <metal_stdlib>\nusing namespace metal;\n//MTLShaderGroup: Deferred\nvertex RasterizerData\nquadVertex(uint vid [[vertex_id]],\n           constant float4* positions [[buffer(0)]]) {}\nfragment half4 lightingFragment() {}\n"
	decls, markers := Scan(input)

	wantDecls := []Decl{
		{Qualifier: QualifierVertex, Name: "quadVertex", Line: 3},
		{Qualifier: QualifierFragment, Name: "lightingFragment", Line: 6},
	}
	assertDecls(t, decls, wantDecls)

	if len(markers) != 1 || markers[0].Line != 2 {
		t.Fatalf("markers = %v, want one marker at line 2", markers)
	}
}

func TestQualifierString(t *testing.T) {
	tests := []struct {
		q    Qualifier
		want string
	}{
		{QualifierVertex, "vertex"},
		{QualifierFragment, "fragment"},
		{QualifierKernel, "kernel"},
		{QualifierCompute, "compute"},
		{QualifierUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Qualifier(%d).String() = %q, want %q", tt.q, got, tt.want)
		}
	}
}

func assertDecls(t *testing.T, got, want []Decl) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d declarations, want %d: %v", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("declaration %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
