package project

import (
	"bytes"
	"regexp"
	"strings"
	"text/template"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	EnvMountPath      = "RAMDISK_MOUNT_PATH"
	EnvBuildDirPrefix = "RAMDISK_BUILD_DIR"
)

var initScriptTemplate = template.Must(template.New("init.gradle").
	Funcs(template.FuncMap{"quote": groovyString}).
	Parse(`// Generated by ramdisk: build directories live on {{ quote .MountPath }}.
def ramdiskBuildDirs = [
{{- range .Redirections }}
    {{ quote .Path }}: {{ quote .Target }},
{{- end }}
]

allprojects { project ->
    def dir = ramdiskBuildDirs[project.path]
    if (dir != null) {
        project.layout.buildDirectory.set(new File(dir))
    }
}
`))

func groovyString(s string) string {
	return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s) + "'"
}

// RenderInitScript renders a Gradle init script that applies redirections
// when passed to gradle with --init-script.
func RenderInitScript(mountPath string, redirections []Redirection) ([]byte, error) {
	var buf bytes.Buffer
	err := initScriptTemplate.Execute(&buf, struct {
		MountPath    string
		Redirections []Redirection
	}{mountPath, redirections})
	if err != nil {
		return nil, errors.Wrap(err, "rendering init script")
	}
	return buf.Bytes(), nil
}

func WriteInitScript(fs afero.Fs, file, mountPath string, redirections []Redirection) error {
	content, err := RenderInitScript(mountPath, redirections)
	if err != nil {
		return err
	}
	return errors.Wrapf(afero.WriteFile(fs, file, content, 0o644), "writing %s", file) //nolint:gomnd
}

var nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]+`)

// EnvKey is the dotenv variable holding the build directory of the unit at
// projectPath: RAMDISK_BUILD_DIR for the root, RAMDISK_BUILD_DIR_APP_CORE
// for ":app:core".
func EnvKey(projectPath string) string {
	suffix := strings.Trim(nonAlphanumeric.ReplaceAllString(projectPath, "_"), "_")
	if suffix == "" {
		return EnvBuildDirPrefix
	}
	return EnvBuildDirPrefix + "_" + strings.ToUpper(suffix)
}

// EnvMap is the dotenv form of the redirections.
func EnvMap(mountPath string, redirections []Redirection) map[string]string {
	env := map[string]string{EnvMountPath: mountPath}
	for _, r := range redirections {
		env[EnvKey(r.Path)] = r.Target
	}
	return env
}

func WriteEnvFile(fs afero.Fs, file, mountPath string, redirections []Redirection) error {
	content, err := godotenv.Marshal(EnvMap(mountPath, redirections))
	if err != nil {
		return errors.Wrap(err, "encoding env file")
	}
	return errors.Wrapf(afero.WriteFile(fs, file, []byte(content+"\n"), 0o644), "writing %s", file) //nolint:gomnd
}
