package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Cada página se compila junto a su layout: las internas llevan el marco
// con barra lateral, las de autenticación el marco plano.
var pageFiles = map[string][]string{
	"login":            {"templates/auth_layout.html", "templates/login.html"},
	"register":         {"templates/auth_layout.html", "templates/register.html"},
	"register_confirm": {"templates/auth_layout.html", "templates/register_confirm.html"},
	"order_step1":      {"templates/layout.html", "templates/order_step1.html"},
	"order_step2":      {"templates/layout.html", "templates/order_step2.html"},
	"order_success":    {"templates/layout.html", "templates/order_success.html"},
	"dashboard":        {"templates/layout.html", "templates/dashboard.html"},
}

type Renderer struct {
	pages  map[string]*template.Template
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	pages := make(map[string]*template.Template, len(pageFiles))
	for name, files := range pageFiles {
		tmpl, err := template.ParseFS(templatesFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages, logger: logger}, nil
}

func (rd *Renderer) Render(w http.ResponseWriter, page string, data any) {
	tmpl, ok := rd.pages[page]
	if !ok {
		rd.logger.Error("unknown page template", zap.String("page", page))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		rd.logger.Error("failed to render page", zap.String("page", page), zap.Error(err))
	}
}
