package web

import (
	"embed"
	"html/template"
	"io/fs"
	"sync"
)

//go:embed index.html app.css app.js manifest.webmanifest sw.js
var content embed.FS

var (
	tmpl *template.Template
	once sync.Once
)

// Templates returns the parsed HTML templates for the gallery shell,
// embedded at build time.
func Templates() *template.Template {
	once.Do(func() {
		tmpl = template.Must(template.ParseFS(content, "*.html"))
	})
	return tmpl
}

// StaticFS exposes embedded static assets such as CSS, the client
// script, the PWA manifest, and the service worker.
func StaticFS() fs.FS {
	return content
}
