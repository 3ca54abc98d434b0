package folio

import "embed"

// EmbeddedAssets contains static assets shipped with the binary: site.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
