// Package web embeds the single-page client served alongside the API.
package web

import "embed"

//go:embed static
var Assets embed.FS
