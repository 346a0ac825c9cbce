//go:build !cgo || !glfw

package hal

import "errors"

// RunGL is unavailable without the glfw build tag.
func RunGL(Config, func(HAL) (func() error, error)) error {
	return errors.New("OpenGL mode requires cgo and the glfw build tag")
}
