// Package cli implements the line-mode front end used by the register and
// search subcommands: prompts on a reader/writer pair and plain-text output
// of flow outcomes and result tables.
package cli
