// Package demo is the catalog of the demo series: which shapes each demo
// uploads, how it places them per frame and which pipeline draws them.
package demo

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"time"

	"gldemo/anim"
	"gldemo/quarkgl/mesh"
	"gldemo/quarkgl/xform"
	"gldemo/render"
)

// View is an aspect-independent projection description.
type View struct {
	Kind         xform.ProjectionKind `yaml:"-"`
	CenterZ      float32              `yaml:"center_z"`
	DepthOfField float32              `yaml:"depth_of_field"`
}

// Projection resolves the view for a w x h viewport.
func (v View) Projection(w, h int) xform.Projection {
	switch v.Kind {
	case xform.Frustum:
		return xform.AspectFrustum(w, h, v.CenterZ, v.DepthOfField)
	case xform.Ortho:
		return xform.AspectOrtho(w, h)
	default:
		return xform.Projection{}
	}
}

// Demo is one entry of the series.
type Demo struct {
	ID    string
	Title string

	View    View
	Program render.Program
	Depth   bool

	// Frames bounds an animated run. Static demos set Linger instead and
	// show their single frame for that long.
	Frames int
	Linger time.Duration
	Hold   bool

	Texture    bool
	ClearColor color.RGBA

	Shapes []string
	Scene  anim.Scene
}

// Pipeline is the transform path the program reads.
func (d Demo) Pipeline() render.Pipeline {
	if d.Program == render.UniformShader || d.Program == render.TexturedShader {
		return render.Uniform
	}
	return render.Legacy
}

// FrameLimit is the number of frames to draw at hz ticks per second.
func (d Demo) FrameLimit(hz int) int {
	if d.Linger <= 0 {
		return d.Frames
	}
	if hz <= 0 {
		hz = 60
	}
	n := int(d.Linger.Seconds() * float64(hz))
	if n < 1 {
		n = 1
	}
	return n
}

// MeshShapes resolves the shape names.
func (d Demo) MeshShapes() ([]mesh.Shape, error) {
	out := make([]mesh.Shape, 0, len(d.Shapes))
	for _, name := range d.Shapes {
		s, ok := mesh.Builtin(name)
		if !ok {
			return nil, fmt.Errorf("demo %s: unknown shape %q", d.ID, name)
		}
		out = append(out, s)
	}
	return out, nil
}

// Validate checks the scene only references uploaded shapes and the view is
// a valid projection.
func (d Demo) Validate() error {
	if len(d.Shapes) == 0 {
		return fmt.Errorf("demo %s: no shapes", d.ID)
	}
	for i, o := range d.Scene {
		if o.Shape < 0 || o.Shape >= len(d.Shapes) {
			return fmt.Errorf("demo %s: instance %d uses shape %d of %d", d.ID, i, o.Shape, len(d.Shapes))
		}
	}
	if err := d.View.Projection(4, 3).Validate(); err != nil {
		return fmt.Errorf("demo %s: %w", d.ID, err)
	}
	return nil
}

// WithPipeline switches the demo to the given transform path, picking the
// matching color program. Textured demos only run on the uniform path.
func (d Demo) WithPipeline(p render.Pipeline) (Demo, error) {
	if d.Pipeline() == p {
		return d, nil
	}
	switch {
	case d.Program == render.TexturedShader:
		return d, fmt.Errorf("demo %s: textured program needs the uniform pipeline", d.ID)
	case p == render.Uniform:
		d.Program = render.UniformShader
	default:
		d.Program = render.StackShader
	}
	return d, nil
}

var (
	ortho = View{Kind: xform.Ortho}
	deep  = View{Kind: xform.Frustum, CenterZ: 6, DepthOfField: 5}
	black = color.RGBA{A: 0xFF}
)

func staticPair(id, title, square string, linger time.Duration) Demo {
	return Demo{
		ID: id, Title: title, View: ortho, Linger: linger, ClearColor: black,
		Shapes: []string{square},
		Scene:  anim.Scene{anim.Still(0, 0, 0, 1), anim.Still(0, .5, .5, 1)},
	}
}

func mixed(id, title, square, pentagon string, linger time.Duration) Demo {
	return Demo{
		ID: id, Title: title, View: ortho, Linger: linger, ClearColor: black,
		Shapes: []string{square, pentagon},
		Scene: anim.Scene{
			anim.Still(0, 0, 0, .5),
			anim.Still(0, .5, .5, .25),
			anim.Still(1, -.5, -.5, .5),
			anim.Still(1, -.5, .5, .5),
			anim.Still(1, .5, -.5, .5),
		},
	}
}

func spinning(id, title string, prog render.Program, shape string, hold bool) Demo {
	return Demo{
		ID: id, Title: title, View: deep, Program: prog, Depth: true,
		Frames: 400, Hold: hold, ClearColor: black,
		Shapes: []string{shape},
		Scene:  anim.Pyramids(0),
	}
}

var catalog = map[string]func() Demo{
	"1": func() Demo {
		return Demo{
			ID: "1", Title: "Triangle", Linger: 2 * time.Second, ClearColor: black,
			Shapes: []string{"triangle"}, Scene: anim.Scene{anim.Still(0, 0, 0, 1)},
		}
	},
	"2": func() Demo {
		return Demo{
			ID: "2", Title: "Square", View: ortho, Linger: 2 * time.Second, ClearColor: black,
			Shapes: []string{"square"}, Scene: anim.Scene{anim.Still(0, 0, 0, 1)},
		}
	},
	"3": func() Demo { return staticPair("3", "Two squares", "square", 5*time.Second) },
	"4": func() Demo { return staticPair("4", "Two squares, vertex arrays", "square", 3*time.Second) },
	"5": func() Demo { return mixed("5", "Squares and pentagons", "square", "pentagon", 3*time.Second) },
	"6": func() Demo {
		return mixed("6", "Indexed squares and pentagons", "square-indexed", "pentagon-indexed", 3*time.Second)
	},
	"7": func() Demo {
		return Demo{
			ID: "7", Title: "Orbiting shapes", View: ortho, Frames: 400, ClearColor: black,
			Shapes: []string{"square-indexed", "pentagon-indexed"},
			Scene:  anim.Orbit2D(0, 1),
		}
	},
	"8": func() Demo {
		v := View{Kind: xform.Frustum, CenterZ: 2, DepthOfField: 2}
		return Demo{
			ID: "8", Title: "Perspective pentagons", View: v, Frames: 400, ClearColor: black,
			Shapes: []string{"pentagon-indexed"},
			Scene:  anim.Approach(0),
		}
	},
	"9": func() Demo {
		d := spinning("9", "Spinning pyramids", render.FixedFunction, "pyramid", false)
		d.View.DepthOfField = 4
		return d
	},
	"11": func() Demo {
		return spinning("11", "Pyramids until a key", render.FixedFunction, "pyramid-indexed", true)
	},
	"12": func() Demo {
		return spinning("12", "Pyramids from a vertex buffer", render.FixedFunction, "pyramid", true)
	},
	"12.5": func() Demo {
		return spinning("12.5", "Minimal shaders", render.StackShader, "pyramid", true)
	},
	"13": func() Demo {
		return spinning("13", "Shader attributes", render.StackShader, "shaded-pyramid", true)
	},
	"14": func() Demo {
		return spinning("14", "Transform uniform", render.UniformShader, "shaded-pyramid", true)
	},
	"15": func() Demo {
		return spinning("15", "Attribute locations", render.UniformShader, "shaded-pyramid", true)
	},
	"16": func() Demo {
		d := spinning("16", "Textured pyramid", render.TexturedShader, "textured-pyramid", true)
		d.Texture = true
		d.Scene = d.Scene[:1]
		return d
	},
}

// Lookup returns the demo with the given id.
func Lookup(id string) (Demo, bool) {
	f, ok := catalog[id]
	if !ok {
		return Demo{}, false
	}
	return f(), true
}

// IDs returns every demo id in series order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.ParseFloat(ids[i], 64)
		b, _ := strconv.ParseFloat(ids[j], 64)
		return a < b
	})
	return ids
}
