package domain

import "strings"

// RootTargetName is the fixed target name of the workspace root package.
const RootTargetName = "root"

// Sanitize turns a manifest package name into a build-target identifier.
// It removes every '@', replaces every '/' with '-' and lowercases the result,
// so "@sample/api" becomes "sample-api". It is total and idempotent.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, "@", "")
	name = strings.ReplaceAll(name, "/", "-")
	return strings.ToLower(name)
}
