// Package web holds the public site's page templates.
package web

import (
	"embed"
	"html/template"
	"strconv"
	"time"

	"bowls-club-backend/internal/database/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is the data every public template renders from
type Page struct {
	Title    string
	Base     string // "/" or "/bowls_club/"
	ClubName string
	Club     *models.OwnClub
}

// FuncMap is available to every template
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("Mon 2 Jan 2006, 15:04")
		},
		"score": func(s *int) string {
			if s == nil {
				return "-"
			}
			return strconv.Itoa(*s)
		},
	}
}

// Templates parses the embedded page templates
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}
