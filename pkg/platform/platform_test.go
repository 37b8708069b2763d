//go:build unit || !integration

package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		osName   string
		expected Platform
	}{
		{"Linux", Linux},
		{"Linux 6.1.0-amd64", Linux},
		{"Windows 10", Windows},
		{"Windows Server 2022", Windows},
		{"Mac OS X", Mac},
		{"MacOS", Mac},
		{"SunOS 5.11", Unknown},
		{"FreeBSD", Unknown},
		{"linux", Unknown},
		{"darwin", Unknown},
		{"", Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.osName, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.osName))
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Linux.Supported())
	assert.True(t, Windows.Supported())
	assert.True(t, Mac.Supported())
	assert.False(t, Unknown.Supported())
}

func TestOSName(t *testing.T) {
	assert.Equal(t, Linux, Classify(osName("linux")))
	assert.Equal(t, Mac, Classify(osName("darwin")))
	assert.Equal(t, Windows, Classify(osName("windows")))
	assert.Equal(t, Unknown, Classify(osName("solaris")))
	assert.Equal(t, "solaris", osName("solaris"))
}
