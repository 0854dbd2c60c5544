//go:build !unix

package unixflags

import "os"

// immutable has no effect on non-unix platforms; flags are always
// reported clear and setting them is a no-op.
const immutable int32 = 0x10

func getFlags(f *os.File) (*fileFlags, error) {
	return &fileFlags{}, nil
}

func setFlags(f *os.File, flags *fileFlags) error {
	return nil
}
