package environment

import (
	"errors"
	"strings"
)

// Where a resolved descriptor came from.
const (
	SourceFile    = "file"
	SourceBuiltin = "builtin"
	SourceDefault = "default"
)

// Resolve picks the descriptor for a binary: the file at path when set,
// otherwise the built-in registered as name, otherwise Default.
func Resolve(path, name string) (Environment, string, error) {
	path = strings.TrimSpace(path)
	name = strings.TrimSpace(name)
	switch {
	case path != "" && name != "":
		return Environment{}, "", errors.New("config and env are mutually exclusive")
	case path != "":
		env, err := LoadConfig(path)
		return env, SourceFile, err
	case name != "":
		env, err := Select(name)
		return env, SourceBuiltin, err
	default:
		env, err := Default()
		return env, SourceDefault, err
	}
}
