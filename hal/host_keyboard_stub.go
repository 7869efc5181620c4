//go:build !tinygo && !cgo

package hal

// poll has nothing to read without ebiten; only headless scripts send keys.
func (k *hostKeyboard) poll() {}
