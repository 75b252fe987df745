package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/devops-template/devopstemplate/pkg/types"
)

// WriteFileAtomic writes data through a temporary file in the same directory
// and renames it over the target. Atomicity is best effort: rename is atomic
// on POSIX filesystems but not guaranteed everywhere (e.g. some network
// mounts). Callers must not rely on it beyond crash safety for a single file.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	tmp := filepath.Join(filepath.Dir(name), fmt.Sprintf(".%s.tmp", filepath.Base(name)))
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := fsys.Rename(tmp, name); err != nil {
		// Clean up the temp file; the rename error is the one worth reporting.
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}
