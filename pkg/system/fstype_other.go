//go:build !linux

package system

func GetFilesystemInfo(path string) (FilesystemInfo, error) {
	return FilesystemInfo{}, ErrFilesystemTypeUnsupported
}
