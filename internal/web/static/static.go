// Package static exposes site static assets for HTTP serving.
package static

import "embed"

//go:embed *.css
var FS embed.FS
