// Package public holds the Tweeter page resources and embeds them into the
// binary so the server can run without a public directory on disk.
package public

import "embed"

// FS contains index.html, style.css, index.js and 404.html at its root.
//
//go:embed index.html style.css index.js 404.html
var FS embed.FS
