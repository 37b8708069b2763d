// Package project describes the build units of a Gradle build and how their
// output directories are redirected onto a RAM disk.
package project

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

const (
	pathSeparator   = ":"
	defaultBuildDir = "build"
)

var settingsFiles = []string{"settings.gradle", "settings.gradle.kts"}

var (
	rootNamePattern = regexp.MustCompile(`rootProject\.name\s*=\s*["']([^"']+)["']`)
	// include ':a', ':b' (optionally parenthesised and continued over lines ending in a comma)
	includePattern = regexp.MustCompile(`(?m)^[ \t]*include\b((?:[^\n]*,[ \t]*\n)*[^\n]*)`)
	quotedPattern  = regexp.MustCompile(`["']([^"']+)["']`)
	lineComment    = regexp.MustCompile(`(?m)//[^\n]*$`)
)

// Unit is a single Gradle project. The root project has the path ":".
type Unit struct {
	Name string `json:"Name"`
	Path string `json:"Path"`
	Dir  string `json:"Dir"`
}

// BuildDir is the conventional output directory of the unit.
func (u Unit) BuildDir() string {
	return filepath.Join(u.Dir, defaultBuildDir)
}

// Project is a Gradle build: the root project followed by its subprojects.
type Project struct {
	RootName string `json:"RootName"`
	RootDir  string `json:"RootDir"`
	Units    []Unit `json:"Units"`
}

// New builds a project from explicit subproject paths such as "app" or
// ":lib:core".
func New(rootDir, rootName string, includes []string) Project {
	p := Project{
		RootName: rootName,
		RootDir:  rootDir,
		Units:    []Unit{{Name: rootName, Path: pathSeparator, Dir: rootDir}},
	}
	for _, include := range lo.Uniq(lo.Map(includes, func(s string, _ int) string { return normalizePath(s) })) {
		if include == pathSeparator {
			continue
		}
		segments := strings.Split(strings.TrimPrefix(include, pathSeparator), pathSeparator)
		p.Units = append(p.Units, Unit{
			Name: segments[len(segments)-1],
			Path: include,
			Dir:  filepath.Join(append([]string{rootDir}, segments...)...),
		})
	}
	return p
}

// Discover reads settings.gradle or settings.gradle.kts in dir. A directory
// without a settings file is a single-project build named after the directory.
func Discover(fs afero.Fs, dir string) (Project, error) {
	dir = filepath.Clean(dir)
	rootName := filepath.Base(dir)

	for _, name := range settingsFiles {
		file := filepath.Join(dir, name)
		exists, err := afero.Exists(fs, file)
		if err != nil {
			return Project{}, errors.Wrapf(err, "checking %s", file)
		}
		if !exists {
			continue
		}
		content, err := afero.ReadFile(fs, file)
		if err != nil {
			return Project{}, errors.Wrapf(err, "reading %s", file)
		}
		settings := lineComment.ReplaceAllString(string(content), "")
		if match := rootNamePattern.FindStringSubmatch(settings); match != nil {
			rootName = match[1]
		}
		return New(dir, rootName, parseIncludes(settings)), nil
	}
	return New(dir, rootName, nil), nil
}

func parseIncludes(settings string) []string {
	var includes []string
	for _, statement := range includePattern.FindAllStringSubmatch(settings, -1) {
		for _, quoted := range quotedPattern.FindAllStringSubmatch(statement[1], -1) {
			includes = append(includes, quoted[1])
		}
	}
	return includes
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if !strings.HasPrefix(p, pathSeparator) {
		p = pathSeparator + p
	}
	return p
}

// Redirection is the relocated output directory of one unit.
type Redirection struct {
	Unit     string `json:"Unit"`
	Path     string `json:"Path"`
	Original string `json:"Original"`
	Target   string `json:"Target"`
}

// Redirect maps every unit's output directory to
// <mountPath>/<rootName>/<unitName>. It performs no I/O.
func Redirect(mountPath string, p Project) []Redirection {
	return lo.Map(p.Units, func(u Unit, _ int) Redirection {
		return Redirection{
			Unit:     u.Name,
			Path:     u.Path,
			Original: u.BuildDir(),
			Target:   path.Join(mountPath, p.RootName, u.Name),
		}
	})
}
