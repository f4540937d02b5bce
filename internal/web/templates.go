package web

import "embed"

// Templates holds the server-rendered HTML pages.
//
//go:embed templates/*.tmpl
var Templates embed.FS
