// Package data provides embedded presentation data and utilities for loading it.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing presentation data.
func FS() embed.FS {
	return dataFS
}
