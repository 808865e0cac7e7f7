// Package main hosts the galerija CLI entrypoint and command graph.
//
// The Cobra command tree builds the gallery model from the folder tree,
// ranks gallery events for a piece of content, runs the interactive or
// unattended linking session, inspects the link file and exports a SQLite
// catalog. Configuration resolution and logger setup happen once in the
// command context so subcommands only wire internal packages together.
package main
