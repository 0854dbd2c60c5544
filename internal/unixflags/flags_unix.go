//go:build unix

package unixflags

import (
	"os"

	"github.com/hexlocker/pswm/internal/pswmerr"
	"golang.org/x/sys/unix"
)

// immutable is the FS_IMMUTABLE_FL bit (0x10).
const immutable int32 = unix.FS_IMMUTABLE_FL

func getFlags(f *os.File) (*fileFlags, error) {
	value, err := unix.IoctlGetInt(int(f.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		return nil, pswmerr.Wrap(pswmerr.FileGetFlags, err)
	}
	return &fileFlags{value: int32(value)}, nil
}

func setFlags(f *os.File, flags *fileFlags) error {
	if err := unix.IoctlSetPointerInt(int(f.Fd()), unix.FS_IOC_SETFLAGS, int(flags.value)); err != nil {
		return pswmerr.Wrap(pswmerr.FileSetFlags, err)
	}
	return nil
}
