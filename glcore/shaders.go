// Package glcore implements render.Backend on OpenGL 2.1 through go-gl.
//
// The caller owns the window and must make its context current on the
// calling goroutine, locked to its OS thread, before New.
package glcore

import (
	"errors"

	"gldemo/render"
)

var ErrUnavailable = errors.New("glcore: OpenGL backend requires cgo and the glfw build tag")

const stackVertex = `#version 120
attribute vec4 vPosition;
attribute vec3 vColor;
varying vec3 color;
void main() {
	gl_Position = gl_ModelViewProjectionMatrix * vPosition;
	color = vColor;
}
`

const uniformVertex = `#version 120
uniform mat4 ModelViewProject;
attribute vec4 vPosition;
attribute vec3 vColor;
attribute vec2 vTexture;
varying vec3 color;
varying vec2 texCoord;
void main() {
	gl_Position = ModelViewProject * vPosition;
	color = vColor;
	texCoord = vTexture;
}
`

const colorFragment = `#version 120
varying vec3 color;
void main() {
	gl_FragColor = vec4(color, 1.0);
}
`

const texturedFragment = `#version 120
uniform sampler2D tex;
varying vec3 color;
varying vec2 texCoord;
void main() {
	vec4 t = texture2D(tex, texCoord);
	gl_FragColor = vec4(color, 0.0) * (1.0 - t.a) + t;
}
`

// Sources returns the GLSL pair for a program. Fixed function has none.
func Sources(p render.Program) (vertex, fragment string, ok bool) {
	switch p {
	case render.StackShader:
		return stackVertex, colorFragment, true
	case render.UniformShader:
		return uniformVertex, colorFragment, true
	case render.TexturedShader:
		return uniformVertex, texturedFragment, true
	}
	return "", "", false
}
