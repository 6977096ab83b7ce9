// Package fsio provides whole-file string read/write helpers.
package fsio
