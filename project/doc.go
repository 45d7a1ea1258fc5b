// Package project loads and saves stle.yml, the per-tree configuration
// holding the project name, license values and source layout used by the
// checker and the generators.
package project
