// Package cmd implements the zoomsize command-line interface.
package cmd
