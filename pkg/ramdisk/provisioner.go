package ramdisk

import (
	"context"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
	"github.com/bacalhau-project/ramdisk/pkg/platform"
	"github.com/bacalhau-project/ramdisk/pkg/project"
	"github.com/bacalhau-project/ramdisk/pkg/system"
)

// LogTag prefixes every user facing message of the provisioner.
const LogTag = "RAM-Disk-Plugin"

type Params struct {
	Runner Runner
	Probe  VolumeProbe
	Fs     afero.Fs
	// OSName is the host OS identifier, e.g. "Linux" or "Mac OS X".
	OSName string
}

// Provisioner creates RAM-backed volumes and points build output at them.
type Provisioner struct {
	runner Runner
	probe  VolumeProbe
	fs     afero.Fs
	osName string
}

func NewProvisioner(params Params) *Provisioner {
	p := &Provisioner{
		runner: params.Runner,
		probe:  params.Probe,
		fs:     params.Fs,
		osName: params.OSName,
	}
	if p.runner == nil {
		p.runner = system.NewShellRunner()
	}
	if p.probe == nil {
		p.probe = system.NewDiskProbe()
	}
	if p.fs == nil {
		p.fs = afero.NewOsFs()
	}
	if p.osName == "" {
		p.osName = platform.HostOSName()
	}
	return p
}

// Provision creates the requested volume unless its mount path already
// exists, then redirects every unit of proj onto it. A disabled request is a
// no-op. On error no redirection is made.
func (p *Provisioner) Provision(ctx context.Context, req Request, proj project.Project) (Outcome, error) {
	logger := log.Ctx(ctx)
	outcome := Outcome{Status: StatusDisabled, Name: req.VolumeName()}

	if !req.Enabled() {
		logger.Info().Msgf("%s RAMDisk plugin is disable", LogTag)
		return outcome, nil
	}

	sizeMB, err := types.ParseSizeMB(req.Size)
	if err != nil {
		if types.IsSizeMissing(err) {
			logger.Error().Msgf("%s -> Please input the RAMDisk Size!!!", LogTag)
		} else {
			logger.Error().Msgf("%s -> Please input the correct RamDisk Size!!!", LogTag)
		}
		return outcome, errors.Wrap(ErrInvalidSize, err.Error())
	}
	outcome.RequestedMB = sizeMB

	if err = types.ValidateName(outcome.Name); err != nil {
		return outcome, errors.Wrap(ErrInvalidName, err.Error())
	}

	target := platform.Classify(p.osName)
	if !target.Supported() {
		logger.Error().Msgf("%s -> Unsupported platform %q", LogTag, p.osName)
		return outcome, errors.Wrapf(ErrUnsupportedPlatform, "%q", p.osName)
	}
	outcome.Platform = target
	outcome.Format = req.Format(target)

	mountPath, err := MountPath(target, outcome.Name)
	if err != nil {
		return outcome, err
	}
	outcome.MountPath = mountPath

	exists, err := afero.Exists(p.fs, mountPath)
	if err != nil {
		return outcome, errors.Wrapf(err, "checking %s", mountPath)
	}

	if exists {
		logger.Debug().Str("MountPath", mountPath).Msg("volume already exists, skipping creation")
		outcome.Status = StatusExisting
		if req.Verify {
			if err = p.verify(ctx, mountPath); err != nil {
				return outcome, err
			}
		}
	} else {
		commands, err := Commands(target, outcome.Name, sizeMB, outcome.Format)
		if err != nil {
			logger.Error().Err(err).Msgf("%s -> Failed to create RAMDisk", LogTag)
			return outcome, err
		}
		outcome.Commands = commands
		p.checkMemory(ctx, sizeMB)

		if req.DryRun {
			outcome.Status = StatusPlanned
			outcome.Redirections = project.Redirect(mountPath, proj)
			return outcome, nil
		}

		for _, command := range commands {
			if err = p.run(ctx, command); err != nil {
				return outcome, err
			}
		}

		exists, err = afero.Exists(p.fs, mountPath)
		if err != nil {
			return outcome, errors.Wrapf(err, "checking %s", mountPath)
		}
		if !exists {
			return outcome, errors.Wrapf(ErrVolumeMissing, "%s", mountPath)
		}
		outcome.Status = StatusCreated
	}

	outcome.Redirections = project.Redirect(mountPath, proj)
	for _, r := range outcome.Redirections {
		logger.Debug().Str("Project", r.Path).Str("BuildDir", r.Target).Msg("redirected build directory")
	}

	outcome.ActualMB = p.actualSize(ctx, mountPath)
	logger.Log().Msgf("%s -> RAMDisk is enable: %s, ExpectationSize: %s MB, ActualSize: %.2f MB, format: %s",
		LogTag, outcome.Name, strings.TrimSpace(req.Size), outcome.ActualMB, outcome.Format)
	return outcome, nil
}

func (p *Provisioner) run(ctx context.Context, command string) error {
	logger := log.Ctx(ctx)
	logger.Debug().Str("Command", command).Msg("running")

	result, err := p.runner.Run(ctx, command)
	if err != nil {
		logger.Error().Err(err).Msgf("%s -> Failed to call shell's command\n%s", LogTag, command)
		return newLaunchError(command, err)
	}
	if !result.Succeeded() {
		logger.Error().Msgf("%s -> exitCode %d\nFailed to call shell's command\n%s\n%s",
			LogTag, result.ExitCode, command, result.Stderr)
		return newExitError(command, result.ExitCode, result.Stderr)
	}
	logger.Log().Msgf("%s -> Create RamDisk successful\nConsole Info:\n\n%s", LogTag, result.Stdout)
	return nil
}

func (p *Provisioner) verify(ctx context.Context, mountPath string) error {
	info, err := p.probe.Filesystem(mountPath)
	if errors.Is(err, system.ErrFilesystemTypeUnsupported) {
		log.Ctx(ctx).Warn().Str("MountPath", mountPath).
			Msg("cannot determine filesystem type on this host, assuming existing volume is RAM backed")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "verifying %s", mountPath)
	}
	if !info.RAMBacked {
		return errors.Wrapf(ErrNotRAMBacked, "%s is on a %s filesystem", mountPath, info.Type)
	}
	return nil
}

func (p *Provisioner) checkMemory(ctx context.Context, sizeMB float64) {
	total := p.probe.TotalMemory()
	requested := datasize.ByteSize(sizeMB * float64(datasize.MB))
	if total > 0 && requested.Bytes() > total {
		log.Ctx(ctx).Warn().
			Str("Requested", requested.HR()).
			Str("Memory", datasize.ByteSize(total).HR()).
			Msg("requested RAM disk is larger than physical memory")
	}
}

func (p *Provisioner) actualSize(ctx context.Context, mountPath string) float64 {
	usage, err := p.probe.Usage(mountPath)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("MountPath", mountPath).Msg("unable to read volume size")
		return 0
	}
	return Megabytes(usage.Total)
}
