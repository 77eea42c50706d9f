// Package conf contains the version constants and the session configuration
// that the binary and the repl share.
package conf

import (
	"fmt"
	"time"
)

const (
	// VERSION is the version of the exprcheck application.
	VERSION = "exprcheck 0.1.0"
	// VERSIONMAJORN is the major version.
	VERSIONMAJORN = 0
	// VERSIONMINORN is the minor version.
	VERSIONMINORN = 1
	// VERSIONPATCHN is the patch version.
	VERSIONPATCHN = 0
	// DEFAULTDOMAIN is the domain used when none is configured.
	DEFAULTDOMAIN = "scalar"
	// DEFAULTTIMEFORMAT is the strftime pattern for diagnostic timestamps.
	DEFAULTTIMEFORMAT = "%H:%M:%S"
	// CONFIGFILENAME is the session file looked up in the working directory.
	CONFIGFILENAME = "exprcheck.yaml"
)

// FullVersion returns the version and copyright.
func FullVersion() string {
	return fmt.Sprintf("%v %v", VERSION, Copyright())
}

// Copyright is the copyright to be written out in the CLI.
func Copyright() string {
	return fmt.Sprintf("Copyright (C) %v", time.Now().Year())
}
