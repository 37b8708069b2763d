package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/bacalhau-project/ramdisk/pkg/config/types"
)

const keyPrefix = "RAMDisk"

// CanonicalKey returns key in the RAMDisk.* spelling used in property files.
func CanonicalKey(key string) (string, error) {
	lower := strings.ToLower(key)
	if !lo.Contains(types.AllKeys, lower) {
		return "", fmt.Errorf("unknown config key %q (valid keys: %q)", key, types.AllKeys)
	}
	return keyPrefix + lower[len(keyPrefix):], nil
}

// SetProperty writes key=value into the property file, creating it if
// needed. An existing entry for the key is updated in place whatever its
// case, and comments are preserved.
func SetProperty(fs afero.Fs, file, key, value string) error {
	canonical, err := CanonicalKey(key)
	if err != nil {
		return err
	}

	props := properties.NewProperties()
	exists, err := afero.Exists(fs, file)
	if err != nil {
		return errors.Wrapf(err, "checking %s", file)
	}
	if exists {
		content, err := afero.ReadFile(fs, file)
		if err != nil {
			return errors.Wrapf(err, "reading %s", file)
		}
		if props, err = properties.Load(content, properties.ISO_8859_1); err != nil {
			return errors.Wrapf(err, "parsing %s", file)
		}
	}
	// values are written verbatim
	props.DisableExpansion = true

	if existing, found := lo.Find(props.Keys(), func(k string) bool {
		return strings.EqualFold(k, canonical)
	}); found {
		canonical = existing
	}
	if _, _, err = props.Set(canonical, value); err != nil {
		return errors.Wrapf(err, "setting %s", canonical)
	}

	var buf bytes.Buffer
	if _, err = props.WriteComment(&buf, "# ", properties.ISO_8859_1); err != nil {
		return errors.Wrapf(err, "encoding %s", file)
	}
	return afero.WriteFile(fs, file, buf.Bytes(), os.FileMode(0o644))
}
