package trails

import "embed"

// EmbeddedAssets holds the files shipped with the binary: the site logo
// and the social icon sprite.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
