package glcore

import (
	"strings"
	"testing"

	"gldemo/quarkgl"
	"gldemo/quarkgl/mesh"
	"gldemo/render"
)

func TestSourcesDeclareWhatTheBackendBinds(t *testing.T) {
	tests := []struct {
		p       render.Program
		uniform bool
		sampler bool
	}{
		{render.StackShader, false, false},
		{render.UniformShader, true, false},
		{render.TexturedShader, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.p.String(), func(t *testing.T) {
			vs, fs, ok := Sources(tt.p)
			if !ok {
				t.Fatalf("Sources(%v) ok = false", tt.p)
			}
			for _, name := range []string{mesh.AttribPosition, mesh.AttribColor} {
				if !strings.Contains(vs, "attribute vec") || !strings.Contains(vs, name) {
					t.Fatalf("vertex source does not declare %s", name)
				}
			}
			if got := strings.Contains(vs, "uniform mat4 "+quarkgl.UniformMVP); got != tt.uniform {
				t.Fatalf("declares %s = %v, want %v", quarkgl.UniformMVP, got, tt.uniform)
			}
			if got := strings.Contains(fs, "sampler2D "+quarkgl.UniformSampler); got != tt.sampler {
				t.Fatalf("declares sampler = %v, want %v", got, tt.sampler)
			}
			if !strings.HasPrefix(vs, "#version 120") || !strings.HasPrefix(fs, "#version 120") {
				t.Fatalf("sources must target GLSL 1.20")
			}
		})
	}
	if _, _, ok := Sources(render.FixedFunction); ok {
		t.Fatalf("Sources(fixed) ok = true")
	}
}
