//go:build !cgo || glfw

package hal

import "errors"

func RunWindow(Config, func(HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo and a build without the glfw tag")
}
