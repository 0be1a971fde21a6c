//go:build unix

package project

import (
	"github.com/heyjunin/yt/pkg/errors"
	"golang.org/x/sys/unix"
)

// CheckWritable reports whether the current user may create files in dir.
func CheckWritable(dir string) error {
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrVideoFolderReadOnly), errors.ErrVideoFolderReadOnly)
	}
	return nil
}
