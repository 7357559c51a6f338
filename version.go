package main

import (
	"fmt"
	"strconv"
)

const hsetVersion = "0.1.0"

var (
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildDate string = "unknown"
)

// Version returns the release with the git commit and working tree status when
// they were set at link time.
func Version() string {
	version := hsetVersion
	if sha1Int, err := strconv.ParseUint(gitSHA1, 16, 64); err == nil && sha1Int != 0 {
		version = fmt.Sprintf("%s (git:%s", version, gitSHA1)
		if dirtyInt, err := strconv.ParseInt(gitDirty, 10, 64); err == nil && dirtyInt != 0 {
			version = fmt.Sprintf("%s-dirty", version)
		}
		version = fmt.Sprintf("%s)", version)
	}
	if buildDate != "unknown" {
		version = fmt.Sprintf("%s built %s", version, buildDate)
	}
	return version
}
