// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/matcalc/matrix"
)

// LoadMapped is Load over a read-only memory mapping of the file instead of
// buffered reads. The whole matrix is still parsed before it is returned; the
// mapping is released before LoadMapped returns.
//
// Errors are the same as Load; an empty file is ErrParse.
func LoadMapped(path string) (m *matrix.Dense, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMapped(%q): %w: %w", path, ErrIO, err)
	}
	if info.Size() == 0 {
		// mmap rejects zero-length mappings; an empty file has no header anyway.
		return nil, fmt.Errorf("LoadMapped(%q): empty file: %w", path, ErrParse)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadMapped(%q): %w: %w", path, ErrIO, err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("LoadMapped(%q): map: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if uerr := data.Unmap(); uerr != nil && err == nil {
			m, err = nil, fmt.Errorf("LoadMapped(%q): unmap: %w: %w", path, ErrIO, uerr)
		}
	}()

	if m, err = Read(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("LoadMapped(%q): %w", path, err)
	}

	return m, nil
}
