package ramdisk

import (
	"context"
	"errors"

	"github.com/c2h5oh/datasize"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/bacalhau-project/ramdisk/pkg/platform"
	"github.com/bacalhau-project/ramdisk/pkg/system"
)

// VolumeInfo describes the configured volume as currently found on the host.
type VolumeInfo struct {
	Platform   platform.Platform `json:"Platform"`
	Name       string            `json:"Name"`
	MountPath  string            `json:"MountPath"`
	Format     string            `json:"Format"`
	Exists     bool              `json:"Exists"`
	Filesystem string            `json:"Filesystem,omitempty"`
	// nil when the filesystem type could not be determined
	RAMBacked  *bool             `json:"RAMBacked,omitempty"`
	Total      datasize.ByteSize `json:"Total"`
	Free       datasize.ByteSize `json:"Free"`
	Used       datasize.ByteSize `json:"Used"`
	HostMemory datasize.ByteSize `json:"HostMemory"`
}

// Inspect reports on the volume named by req without changing anything.
func (p *Provisioner) Inspect(ctx context.Context, req Request) (VolumeInfo, error) {
	info := VolumeInfo{
		Name:       req.VolumeName(),
		HostMemory: datasize.ByteSize(p.probe.TotalMemory()),
	}
	target := platform.Classify(p.osName)
	if !target.Supported() {
		return info, pkgerrors.Wrapf(ErrUnsupportedPlatform, "%q", p.osName)
	}
	info.Platform = target
	info.Format = req.Format(target)

	mountPath, err := MountPath(target, info.Name)
	if err != nil {
		return info, err
	}
	info.MountPath = mountPath

	info.Exists, err = afero.Exists(p.fs, mountPath)
	if err != nil {
		return info, pkgerrors.Wrapf(err, "checking %s", mountPath)
	}
	if !info.Exists {
		return info, nil
	}

	usage, err := p.probe.Usage(mountPath)
	if err != nil {
		return info, pkgerrors.Wrapf(err, "reading usage of %s", mountPath)
	}
	info.Total = datasize.ByteSize(usage.Total)
	info.Free = datasize.ByteSize(usage.Free)
	info.Used = datasize.ByteSize(usage.Used)

	fsInfo, err := p.probe.Filesystem(mountPath)
	switch {
	case errors.Is(err, system.ErrFilesystemTypeUnsupported):
		log.Ctx(ctx).Debug().Err(err).Msg("filesystem type unknown")
	case err != nil:
		return info, pkgerrors.Wrapf(err, "reading filesystem of %s", mountPath)
	default:
		info.Filesystem = fsInfo.Type
		info.RAMBacked = &fsInfo.RAMBacked
	}
	return info, nil
}
