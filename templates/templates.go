// Package templates holds the server-rendered pages of the portal.
package templates

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed *.html
var files embed.FS

// Badge maps a record status to its bootstrap badge class.
func Badge(status string) string {
	switch strings.ToLower(status) {
	case "active", "completed", "confirmed":
		return "bg-success"
	case "pending", "scheduled":
		return "bg-warning text-dark"
	case "cancelled", "canceled":
		return "bg-danger"
	default:
		return "bg-secondary"
	}
}

func Load() (*template.Template, error) {
	funcMap := template.FuncMap{
		"badge": Badge,
	}
	return template.New("pages").Funcs(funcMap).ParseFS(files, "*.html")
}
