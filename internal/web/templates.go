package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"double":  func(f float64) float64 { return f * 2 },
	"half":    func(f float64) float64 { return f / 2 },
	"seconds": func(f float64) string { return strconv.FormatFloat(f, 'f', 3, 64) + "s" },
	// A negative delay starts an animation part way through its cycle.
	"delay": func(f float64) string { return "-" + strconv.FormatFloat(f, 'f', 3, 64) + "s" },
	"tint":  func(color, alpha string) string { return color + alpha },
	"query": url.QueryEscape,
	"join":  strings.Join,
	"abbr": func(s string) string {
		if utf8.RuneCountInString(s) <= 2 {
			return s
		}
		return string([]rune(s)[:2])
	},
	"date": func(t time.Time) string { return t.Format("Jan 2, 2006 15:04") },
	"year": func() int { return time.Now().Year() },
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}
