package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// Page renders the map page from a dto.StateResponse.
var Page = template.Must(template.ParseFS(files, "index.html"))
