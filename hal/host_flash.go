//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	hostFlashDefaultPath      = "lcdmenu.flash"
	hostFlashDefaultSizeBytes = 64 * 1024
	HostFlashEraseBlockBytes  = 4096
)

// FileFlash is a Flash backed by a file. Like NOR flash, writes may only
// clear bits; setting a bit back to 1 requires an erase.
type FileFlash struct {
	mu      sync.Mutex
	f       *os.File
	size    uint32
	scratch [HostFlashEraseBlockBytes]byte
}

func newHostFlash() Flash {
	path := os.Getenv("LCDMENU_FLASH_PATH")
	if path == "" {
		path = hostFlashDefaultPath
	}
	f, err := OpenFileFlash(path, hostFlashDefaultSizeBytes)
	if err != nil {
		return stubFlash{}
	}
	return f
}

// OpenFileFlash opens or creates the image at path. New images are sized to
// size bytes and erased; existing images keep their size.
func OpenFileFlash(path string, size uint32) (*FileFlash, error) {
	if size == 0 || size%HostFlashEraseBlockBytes != 0 {
		return nil, fmt.Errorf("flash: size %d not multiple of erase size %d", size, HostFlashEraseBlockBytes)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open flash file %q: %w", path, err)
	}

	ff := &FileFlash{f: f, size: size}
	for i := range ff.scratch {
		ff.scratch[i] = 0xFF
	}

	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("stat flash file %q: %w", path, err)
	}
	if st.Size() > 0 {
		if st.Size() > int64(^uint32(0)) {
			_ = f.Close()
			return nil, fmt.Errorf("flash file %q too large", path)
		}
		ff.size = uint32(st.Size())
		return ff, nil
	}

	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("truncate flash file %q to %d: %w", path, size, err)
	}
	if err := ff.Erase(0, size); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("erase flash file %q: %w", path, err)
	}
	return ff, nil
}

func (f *FileFlash) Close() error { return f.f.Close() }

func (f *FileFlash) SizeBytes() uint32 { return f.size }
func (f *FileFlash) EraseBlockBytes() uint32 {
	return HostFlashEraseBlockBytes
}

func (f *FileFlash) ReadAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off >= f.size {
		return 0, fmt.Errorf("flash read at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}
	return f.f.ReadAt(p, int64(off))
}

func (f *FileFlash) WriteAt(p []byte, off uint32) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if off >= f.size {
		return 0, fmt.Errorf("flash write at %d: %w", off, os.ErrInvalid)
	}
	maxN := int(f.size - off)
	if len(p) > maxN {
		p = p[:maxN]
	}

	buf := make([]byte, len(p))
	if _, err := f.f.ReadAt(buf, int64(off)); err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("flash read before write at %d: %w", off, err)
	}
	for i := range p {
		if buf[i]&p[i] != p[i] {
			return 0, ErrFlashWriteRequiresErase
		}
	}
	return f.f.WriteAt(p, int64(off))
}

func (f *FileFlash) Erase(off, size uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if size == 0 {
		return nil
	}
	if off%HostFlashEraseBlockBytes != 0 || size%HostFlashEraseBlockBytes != 0 {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}
	if off >= f.size || off+size > f.size {
		return fmt.Errorf("flash erase off=%d size=%d: %w", off, size, os.ErrInvalid)
	}

	for size > 0 {
		if _, err := f.f.WriteAt(f.scratch[:], int64(off)); err != nil {
			return fmt.Errorf("flash erase block at %d: %w", off, err)
		}
		off += HostFlashEraseBlockBytes
		size -= HostFlashEraseBlockBytes
	}
	return nil
}
