package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// UniquePath returns dir/base+ext, appending _1, _2, ... before the
// extension until the name collides neither with a file on disk nor with a
// name already claimed during this run. The winning name is recorded in
// claimed, so two tracks resolving to the same title get distinct files even
// before anything is written (dry runs included).
func UniquePath(dir, base, ext string, claimed map[string]bool) string {
	name := base + ext
	for n := 1; claimed[name] || pathExists(filepath.Join(dir, name)); n++ {
		name = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
	claimed[name] = true
	return filepath.Join(dir, name)
}

func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CopyFile copies src to dst byte for byte and returns the number of bytes
// written. The source is never modified or removed; the device contents stay
// untouched so a bad run can always be repeated.
func CopyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dst)
		return n, fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return n, fmt.Errorf("closing %s: %w", dst, err)
	}
	return n, nil
}
