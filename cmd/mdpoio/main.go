// Package main is the entry point for mdpoio, a small command line front end
// to the mdpo file helpers.
//
// Every subcommand maps to one helper in pkg/fileops or internal/wrapwidth:
//
//	mdpoio filter [paths...] --ignore NAME   FilterPaths
//	mdpoio resolve VALUE                     ToFileContentIfIsFile
//	mdpoio glob VALUE                        ToGlobOrContent
//	mdpoio hash FILE...                      FileHash
//	mdpoio save FILE [VALUE]                 SaveFileCheckingFileChanged
//	mdpoio fixtures DIR                      wrapwidth.Cases
//
// Defaults for the encoding, ignore list and wrap widths come from the user
// config file (see internal/config).
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
