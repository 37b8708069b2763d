//go:build linux

package system

import (
	"fmt"

	"golang.org/x/sys/unix"
)

var filesystemNames = map[uint32]string{
	unix.TMPFS_MAGIC:           "tmpfs",
	unix.RAMFS_MAGIC:           "ramfs",
	unix.EXT4_SUPER_MAGIC:      "ext4",
	unix.XFS_SUPER_MAGIC:       "xfs",
	unix.BTRFS_SUPER_MAGIC:     "btrfs",
	unix.OVERLAYFS_SUPER_MAGIC: "overlay",
}

// GetFilesystemInfo identifies the filesystem at path from its statfs magic.
func GetFilesystemInfo(path string) (FilesystemInfo, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return FilesystemInfo{}, fmt.Errorf("statfs %s: %w", path, err)
	}
	magic := uint32(st.Type)
	name, ok := filesystemNames[magic]
	if !ok {
		name = fmt.Sprintf("0x%x", magic)
	}
	return FilesystemInfo{
		Type:      name,
		RAMBacked: magic == unix.TMPFS_MAGIC || magic == unix.RAMFS_MAGIC,
	}, nil
}
