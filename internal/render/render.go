package render

import (
	"io"

	"turforlag/internal/services"
	"turforlag/internal/tabs"
)

// Page: входные данные рендерера страницы курса.
type Page struct {
	View          *services.CourseView
	Editing       bool
	State         tabs.State
	SiteURL       string
	BackgroundURL string
}

// Renderer превращает структуру курса в разметку.
type Renderer interface {
	Render(w io.Writer, p Page) error
}
