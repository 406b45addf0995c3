// Package web holds the server-rendered page template and the client panel
// assets, embedded so the binary is self-contained.
package web

import "embed"

//go:embed templates
var Templates embed.FS

//go:embed static
var Static embed.FS
