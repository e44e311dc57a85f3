// Package main hosts the tunesort CLI entrypoint and command graph.
//
// The Cobra-based root command runs the organize pipeline over the files
// given on the command line; subcommands cover configuration scaffolding and
// version reporting. Configuration resolution and structured logging setup
// happen here so the internal packages can focus on pipeline semantics.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through flags or dedicated commands here.
package main
