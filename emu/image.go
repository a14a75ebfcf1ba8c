package emu

import (
	"errors"
	"hash/crc32"
)

// ValidateImage checks that a disk image can be attached.
func ValidateImage(image []byte) error {
	if len(image) == 0 {
		return errors.New("disk image is empty")
	}
	return nil
}

// imageCRC returns the CRC32 used to tie save states to a disk image.
func imageCRC(image []byte) uint32 {
	return crc32.ChecksumIEEE(image)
}
