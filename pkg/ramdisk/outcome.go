package ramdisk

import (
	"github.com/bacalhau-project/ramdisk/pkg/platform"
	"github.com/bacalhau-project/ramdisk/pkg/project"
)

type Status string

const (
	StatusDisabled Status = "disabled"
	StatusCreated  Status = "created"
	StatusExisting Status = "existing"
	StatusPlanned  Status = "planned"
)

// Outcome reports what a provisioning run did.
type Outcome struct {
	Status       Status                `json:"Status"`
	Platform     platform.Platform     `json:"Platform,omitempty"`
	Name         string                `json:"Name"`
	MountPath    string                `json:"MountPath,omitempty"`
	Format       string                `json:"Format,omitempty"`
	RequestedMB  float64               `json:"RequestedMB,omitempty"`
	ActualMB     float64               `json:"ActualMB,omitempty"`
	Commands     []string              `json:"Commands,omitempty"`
	Redirections []project.Redirection `json:"Redirections,omitempty"`
}

// Redirected is true when build output was moved onto the volume.
func (o Outcome) Redirected() bool {
	return len(o.Redirections) > 0
}
