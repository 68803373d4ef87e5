package assets

import (
	"embed"
	"io/fs"
)

// StaticFS holds the embedded browser assets (motion runtime).
//
//go:embed static/*
var StaticFS embed.FS

// Static returns the assets rooted at the static directory
func Static() fs.FS {
	sub, err := fs.Sub(StaticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return sub
}
