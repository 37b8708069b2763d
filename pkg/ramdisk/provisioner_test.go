//go:build unit || !integration

package ramdisk

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/bacalhau-project/ramdisk/pkg/logger"
	"github.com/bacalhau-project/ramdisk/pkg/platform"
	"github.com/bacalhau-project/ramdisk/pkg/project"
	"github.com/bacalhau-project/ramdisk/pkg/system"
)

const mib = 1024 * 1024

type ProvisionerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	runner *MockRunner
	probe  *MockVolumeProbe
	fs     afero.Fs
	ctx    context.Context
	proj   project.Project
}

func TestProvisionerSuite(t *testing.T) {
	suite.Run(t, new(ProvisionerSuite))
}

func (s *ProvisionerSuite) SetupTest() {
	logger.ConfigureTestLogging(s.T())
	s.ctrl = gomock.NewController(s.T())
	s.runner = NewMockRunner(s.ctrl)
	s.probe = NewMockVolumeProbe(s.ctrl)
	s.fs = afero.NewMemMapFs()
	s.ctx = context.Background()
	s.proj = project.New("/src/app", "app", []string{"core", "ui"})
}

func (s *ProvisionerSuite) provisioner(osName string) *Provisioner {
	return NewProvisioner(Params{Runner: s.runner, Probe: s.probe, Fs: s.fs, OSName: osName})
}

func (s *ProvisionerSuite) enabled(size string) Request {
	return Request{Enable: "true", Name: "TestDisk", Size: size}
}

// succeed makes the runner create mountPath when it sees the last command.
func (s *ProvisionerSuite) succeed(mountPath string) func(context.Context, string) (system.CommandResult, error) {
	return func(_ context.Context, command string) (system.CommandResult, error) {
		if strings.HasPrefix(command, "mkdir") || strings.HasPrefix(command, "diskutil") {
			s.Require().NoError(s.fs.MkdirAll(mountPath, 0o755))
		}
		return system.CommandResult{Command: command, Stdout: "ok"}, nil
	}
}

func (s *ProvisionerSuite) expectSize(mountPath string, total uint64) {
	s.probe.EXPECT().Usage(mountPath).Return(system.DiskUsage{Total: total}, nil)
}

func (s *ProvisionerSuite) TestDisabled() {
	for _, enable := range []string{"", "false", "TRUE", "True", " true"} {
		outcome, err := s.provisioner("Linux").Provision(s.ctx, Request{Enable: enable, Size: "512"}, s.proj)
		s.Require().NoError(err)
		s.Equal(StatusDisabled, outcome.Status)
		s.False(outcome.Redirected())
	}
}

func (s *ProvisionerSuite) TestInvalidSize() {
	for _, size := range []string{"", "  ", "abc", "0", "-5", "NaN", "Inf"} {
		_, err := s.provisioner("Linux").Provision(s.ctx, s.enabled(size), s.proj)
		s.Require().ErrorIs(err, ErrInvalidSize, size)
		s.ErrorIs(err, ErrInvalidConfiguration, size)
	}
}

func (s *ProvisionerSuite) TestInvalidName() {
	req := s.enabled("512")
	req.Name = "disk; rm -rf /"
	_, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.ErrorIs(err, ErrInvalidName)
}

func (s *ProvisionerSuite) TestUnsupportedPlatform() {
	for _, osName := range []string{"SunOS", "FreeBSD", "linux", ""} {
		p := NewProvisioner(Params{Runner: s.runner, Probe: s.probe, Fs: s.fs})
		p.osName = osName
		outcome, err := p.Provision(s.ctx, s.enabled("512"), s.proj)
		s.Require().ErrorIs(err, ErrUnsupportedPlatform, osName)
		s.False(outcome.Redirected())
	}
}

func (s *ProvisionerSuite) TestMacAPFS() {
	s.probe.EXPECT().TotalMemory().Return(uint64(16 * 1024 * mib))
	s.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(s.succeed("/Volumes/TestDisk")).Times(1)
	s.expectSize("/Volumes/TestDisk", 512*mib)

	outcome, err := s.provisioner("Mac OS X").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().NoError(err)

	s.Equal(StatusCreated, outcome.Status)
	s.Equal(platform.Mac, outcome.Platform)
	s.Equal("apfs", outcome.Format)
	s.Equal(512.0, outcome.ActualMB)
	s.Require().Len(outcome.Commands, 1)
	s.Contains(outcome.Commands[0], "ram://1048576")
	s.Contains(outcome.Commands[0], "'TestDisk'")
	s.Contains(outcome.Commands[0], "GPTFormat APFS")

	s.Require().Len(outcome.Redirections, 3)
	for _, r := range outcome.Redirections {
		s.True(strings.HasPrefix(r.Target, "/Volumes/TestDisk/app/"), r.Target)
	}
	s.Equal("/Volumes/TestDisk/app/core", outcome.Redirections[1].Target)
}

func (s *ProvisionerSuite) TestMacHFS() {
	req := s.enabled("256")
	req.MacFormat = "hfs"
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	s.runner.EXPECT().
		Run(gomock.Any(), "diskutil erasevolume HFS+ TestDisk $(hdiutil attach -nomount ram://524288)").
		DoAndReturn(s.succeed("/Volumes/TestDisk"))
	s.expectSize("/Volumes/TestDisk", 256*mib)

	outcome, err := s.provisioner("Mac OS X").Provision(s.ctx, req, s.proj)
	s.Require().NoError(err)
	s.Equal(StatusCreated, outcome.Status)
	s.Equal(256.0, outcome.ActualMB)
}

func (s *ProvisionerSuite) TestUnsupportedFormat() {
	for _, format := range []string{"zfs", "APFS"} {
		req := s.enabled("512")
		req.MacFormat = format
		outcome, err := s.provisioner("Mac OS X").Provision(s.ctx, req, s.proj)
		s.Require().ErrorIs(err, ErrUnsupportedFormat, format)
		s.Empty(outcome.Commands)
		s.False(outcome.Redirected())
	}
}

func (s *ProvisionerSuite) TestLinuxCommandOrder() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	gomock.InOrder(
		s.runner.EXPECT().Run(gomock.Any(), "mkdir /var/TestDisk").DoAndReturn(s.succeed("/var/TestDisk")),
		s.runner.EXPECT().Run(gomock.Any(), "mount -t tmpfs none /var/TestDisk -o size=1024m").DoAndReturn(s.succeed("/var/TestDisk")),
	)
	s.expectSize("/var/TestDisk", 1024*mib)

	outcome, err := s.provisioner("Linux").Provision(s.ctx, s.enabled("1024"), s.proj)
	s.Require().NoError(err)
	s.Equal(StatusCreated, outcome.Status)
	s.Equal(platform.Linux, outcome.Platform)
	s.Equal("/var/TestDisk/app/app", outcome.Redirections[0].Target)
}

func (s *ProvisionerSuite) TestLinuxRamfs() {
	req := s.enabled("64")
	req.LinuxFormat = "ramfs"
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	s.runner.EXPECT().Run(gomock.Any(), "mkdir /var/TestDisk").DoAndReturn(s.succeed("/var/TestDisk"))
	s.runner.EXPECT().Run(gomock.Any(), "mount -t ramfs none /var/TestDisk -o size=64m").DoAndReturn(s.succeed("/var/TestDisk"))
	s.expectSize("/var/TestDisk", 64*mib)

	_, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.Require().NoError(err)
}

func (s *ProvisionerSuite) TestFailedCommandStopsRun() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	s.runner.EXPECT().Run(gomock.Any(), "mkdir /var/TestDisk").
		Return(system.CommandResult{Command: "mkdir /var/TestDisk", ExitCode: 1, Stderr: "permission denied"}, nil)

	outcome, err := s.provisioner("Linux").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().ErrorIs(err, ErrCommandFailed)

	var cmdErr *CommandError
	s.Require().True(errors.As(err, &cmdErr))
	s.Equal(1, cmdErr.ExitCode)
	s.Equal("mkdir /var/TestDisk", cmdErr.Command)
	s.Contains(err.Error(), "permission denied")
	s.False(outcome.Redirected())
}

func (s *ProvisionerSuite) TestLaunchFailure() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	s.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(system.CommandResult{ExitCode: -1}, errors.New("exec: \"sh\": executable file not found"))

	_, err := s.provisioner("Mac OS X").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().ErrorIs(err, ErrLaunchFailed)
	s.NotErrorIs(err, ErrCommandFailed)
}

func (s *ProvisionerSuite) TestVolumeMissingAfterCreation() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))
	s.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(system.CommandResult{}, nil)

	_, err := s.provisioner("Mac OS X").Provision(s.ctx, s.enabled("512"), s.proj)
	s.ErrorIs(err, ErrVolumeMissing)
}

func (s *ProvisionerSuite) TestExistingVolumeIsReused() {
	s.Require().NoError(s.fs.MkdirAll("/var/TestDisk", 0o755))
	s.expectSize("/var/TestDisk", 300*mib+5243)

	outcome, err := s.provisioner("Linux 5.15").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().NoError(err)
	s.Equal(StatusExisting, outcome.Status)
	s.Empty(outcome.Commands)
	s.Equal(300.01, outcome.ActualMB)
	s.Len(outcome.Redirections, 3)
}

func (s *ProvisionerSuite) TestWindows() {
	outcome, err := s.provisioner("Windows 10").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().ErrorIs(err, ErrNotImplemented)
	s.Equal("ntfs", outcome.Format)
	s.False(outcome.Redirected())
}

func (s *ProvisionerSuite) TestWindowsExistingVolume() {
	s.Require().NoError(s.fs.MkdirAll("/Volumes/TestDisk", 0o755))
	s.expectSize("/Volumes/TestDisk", 512*mib)

	outcome, err := s.provisioner("Windows 11").Provision(s.ctx, s.enabled("512"), s.proj)
	s.Require().NoError(err)
	s.Equal(StatusExisting, outcome.Status)
}

func (s *ProvisionerSuite) TestVerifyRejectsDiskBackedPath() {
	s.Require().NoError(s.fs.MkdirAll("/var/TestDisk", 0o755))
	s.probe.EXPECT().Filesystem("/var/TestDisk").Return(system.FilesystemInfo{Type: "ext4"}, nil)

	req := s.enabled("512")
	req.Verify = true
	outcome, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.Require().ErrorIs(err, ErrNotRAMBacked)
	s.False(outcome.Redirected())
}

func (s *ProvisionerSuite) TestVerifyAcceptsTmpfs() {
	s.Require().NoError(s.fs.MkdirAll("/var/TestDisk", 0o755))
	s.probe.EXPECT().Filesystem("/var/TestDisk").Return(system.FilesystemInfo{Type: "tmpfs", RAMBacked: true}, nil)
	s.expectSize("/var/TestDisk", 512*mib)

	req := s.enabled("512")
	req.Verify = true
	_, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.NoError(err)
}

func (s *ProvisionerSuite) TestVerifyUnsupportedProbeWarns() {
	s.Require().NoError(s.fs.MkdirAll("/Volumes/TestDisk", 0o755))
	s.probe.EXPECT().Filesystem("/Volumes/TestDisk").Return(system.FilesystemInfo{}, system.ErrFilesystemTypeUnsupported)
	s.expectSize("/Volumes/TestDisk", 512*mib)

	req := s.enabled("512")
	req.Verify = true
	_, err := s.provisioner("Mac OS X").Provision(s.ctx, req, s.proj)
	s.NoError(err)
}

func (s *ProvisionerSuite) TestDryRun() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))

	req := s.enabled("512")
	req.DryRun = true
	outcome, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.Require().NoError(err)
	s.Equal(StatusPlanned, outcome.Status)
	s.Len(outcome.Commands, 2)
	s.Len(outcome.Redirections, 3)

	exists, err := afero.Exists(s.fs, "/var/TestDisk")
	s.Require().NoError(err)
	s.False(exists)
}

func (s *ProvisionerSuite) TestDefaultName() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))

	req := Request{Enable: "true", Size: "8", DryRun: true}
	outcome, err := s.provisioner("Linux").Provision(s.ctx, req, s.proj)
	s.Require().NoError(err)
	s.Equal("/var/RAMDiskForGradle", outcome.MountPath)
}

func (s *ProvisionerSuite) TestInspect() {
	s.Require().NoError(s.fs.MkdirAll("/var/TestDisk", 0o755))
	s.probe.EXPECT().TotalMemory().Return(uint64(8 * 1024 * mib))
	s.probe.EXPECT().Usage("/var/TestDisk").Return(system.DiskUsage{Total: 512 * mib, Free: 500 * mib, Used: 12 * mib}, nil)
	s.probe.EXPECT().Filesystem("/var/TestDisk").Return(system.FilesystemInfo{Type: "tmpfs", RAMBacked: true}, nil)

	info, err := s.provisioner("Linux").Inspect(s.ctx, s.enabled("512"))
	s.Require().NoError(err)
	s.True(info.Exists)
	s.Equal("/var/TestDisk", info.MountPath)
	s.Equal("tmpfs", info.Filesystem)
	s.Require().NotNil(info.RAMBacked)
	s.True(*info.RAMBacked)
	s.Equal(uint64(512*mib), info.Total.Bytes())
}

func (s *ProvisionerSuite) TestInspectMissingVolume() {
	s.probe.EXPECT().TotalMemory().Return(uint64(0))

	info, err := s.provisioner("Mac OS X").Inspect(s.ctx, s.enabled("512"))
	s.Require().NoError(err)
	s.False(info.Exists)
	s.Equal("apfs", info.Format)
	s.Nil(info.RAMBacked)
}
