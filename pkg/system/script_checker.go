package system

import (
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// CheckShellSyntax parses cmds as a POSIX shell script without running it.
func CheckShellSyntax(cmds []string) error {
	script := strings.NewReader(strings.Join(cmds, "\n"))
	_, err := syntax.NewParser(syntax.Variant(syntax.LangPOSIX)).Parse(script, "")
	return err
}
