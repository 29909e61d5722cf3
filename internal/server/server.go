package server

import (
	"html/template"
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tableorder/internal/config"
	"tableorder/internal/handler"
)

// TemplateRenderer はecho標準のRendererフック
type TemplateRenderer struct {
	templates *template.Template
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}

func New(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	// devのときだけechoのデバッグ出力（スタック付きエラー等）を有効にする
	e.Debug = cfg.GoEnv == "dev"

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Renderer = &TemplateRenderer{
		templates: template.Must(template.ParseGlob("web/templates/*.html")),
	}
	e.Static("/static", "web/static")

	return e
}

func Start(addr string, cfg config.Config, intakeH *handler.IntakeHandler, orderH *handler.OrderHandler, trackH *handler.TrackHandler) error {
	e := New(cfg)
	RegisterRoutes(e, intakeH, orderH, trackH)
	return e.Start(addr)
}
