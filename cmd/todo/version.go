package main

import (
	"fmt"
	"runtime/debug"
)

var buildVersion = ""
var buildCommit = "unknown"

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func versionString() string {
	version := buildVersion
	if version == "" {
		version = "(devel)"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			version = info.Main.Version
		}
	}
	return fmt.Sprintf("version %s\ncommit %s", version, buildCommit)
}
