// Package views holds the embedded HTML templates.
package views

import "embed"

// FS contains the page templates and layouts.
//
//go:embed *.html layouts/*.html
var FS embed.FS
