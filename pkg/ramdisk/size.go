package ramdisk

import (
	"github.com/c2h5oh/datasize"
)

// Megabytes converts bytes to binary megabytes rounded half-up to two
// decimal places.
func Megabytes(bytes uint64) float64 {
	mb := uint64(datasize.MB)
	return float64((bytes*100+mb/2)/mb) / 100
}
