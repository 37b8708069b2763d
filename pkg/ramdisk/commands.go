package ramdisk

import (
	"fmt"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/bacalhau-project/ramdisk/pkg/platform"
	"github.com/bacalhau-project/ramdisk/pkg/system"
)

// sectorsPerMB is the number of 512 byte sectors in a megabyte, as expected
// by hdiutil's ram:// device URLs.
const sectorsPerMB = 2048

const (
	varRoot     = "/var"
	volumesRoot = "/Volumes"
)

type commandBuilder func(name string, sizeMB float64) []string

type volumeFormat struct {
	build commandBuilder
	// the name is single-quoted in the command, so it may contain spaces
	quotesName bool
}

type volumeTemplate struct {
	mountRoot string
	// nil when creation is not available on the platform
	formats map[string]volumeFormat
}

var templates = map[platform.Platform]volumeTemplate{
	platform.Linux: {
		mountRoot: varRoot,
		formats: map[string]volumeFormat{
			"tmpfs": {build: linuxMount("tmpfs")},
			"ramfs": {build: linuxMount("ramfs")},
		},
	},
	platform.Mac: {
		mountRoot: volumesRoot,
		formats: map[string]volumeFormat{
			"apfs": {
				build: func(name string, sizeMB float64) []string {
					return []string{fmt.Sprintf(
						"diskutil partitionDisk $(hdiutil attach -nomount ram://%d) 1 GPTFormat APFS '%s' '100%%'",
						ramSectors(sizeMB), name)}
				},
				quotesName: true,
			},
			"hfs": {
				build: func(name string, sizeMB float64) []string {
					return []string{fmt.Sprintf(
						"diskutil erasevolume HFS+ %s $(hdiutil attach -nomount ram://%d)",
						name, ramSectors(sizeMB))}
				},
			},
		},
	},
	platform.Windows: {
		mountRoot: volumesRoot,
	},
}

func linuxMount(format string) commandBuilder {
	return func(name string, sizeMB float64) []string {
		mountPath := path.Join(varRoot, name)
		return []string{
			fmt.Sprintf("mkdir %s", mountPath),
			fmt.Sprintf("mount -t %s none %s -o size=%sm", format, mountPath, formatMB(sizeMB)),
		}
	}
}

func ramSectors(sizeMB float64) uint64 {
	return uint64(math.Ceil(sizeMB * sectorsPerMB))
}

func formatMB(sizeMB float64) string {
	return strconv.FormatFloat(sizeMB, 'f', -1, 64)
}

// MountPath returns where a volume called name is mounted on p.
func MountPath(p platform.Platform, name string) (string, error) {
	tmpl, ok := templates[p]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedPlatform, "no volume layout for %s", p)
	}
	return path.Join(tmpl.mountRoot, name), nil
}

// Commands returns the shell command lines that create a volume on p.
func Commands(p platform.Platform, name string, sizeMB float64, format string) ([]string, error) {
	tmpl, ok := templates[p]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedPlatform, "no volume layout for %s", p)
	}
	if tmpl.formats == nil {
		return nil, errors.Wrapf(ErrNotImplemented, "%s", p)
	}
	volume, ok := tmpl.formats[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q on %s, expected one of %s",
			format, p, strings.Join(Formats(p), ", "))
	}
	if !volume.quotesName && strings.ContainsAny(name, " \t") {
		return nil, errors.Wrapf(ErrInvalidName, "%q contains spaces, which %s on %s does not support", name, format, p)
	}
	commands := volume.build(name, sizeMB)
	if err := system.CheckShellSyntax(commands); err != nil {
		return nil, errors.Wrapf(ErrInvalidName, "%q produces an invalid shell command: %s", name, err)
	}
	return commands, nil
}

// Formats lists the volume formats p can create, sorted.
func Formats(p platform.Platform) []string {
	formats := lo.Keys(templates[p].formats)
	sort.Strings(formats)
	return formats
}
