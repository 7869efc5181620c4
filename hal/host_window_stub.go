//go:build !tinygo && !cgo

package hal

import "errors"

// RunWindow needs ebiten, which needs cgo. Use -headless instead.
func RunWindow(_ func(HAL) (func() error, error)) error {
	return errors.New("window mode requires cgo (rebuild with CGO_ENABLED=1 or run with -headless)")
}
