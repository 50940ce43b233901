// Package templates holds the built-in page templates. A deployment can
// override them by pointing TEMPLATES_DIR at a directory with the same
// file names.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
