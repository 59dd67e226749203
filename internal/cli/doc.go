// Package cli defines the Cobra command tree for the summon CLI. The surface
// uses single-dash options (-add, -remove, -show) and bare alias names, so the
// root command turns off Cobra flag parsing and routes the first argument
// through a table of operation commands, one per file. Operations only handle
// argument checks and output; the store and launcher packages do the work.
package cli
