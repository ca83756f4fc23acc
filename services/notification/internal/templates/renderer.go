// Package templates рендерит HTML-письма уведомлений
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

//go:embed html/*.html
var embedded embed.FS

// PaymentConfirmationData данные письма об оплате
type PaymentConfirmationData struct {
	CustomerName   string
	Amount         float64
	OrderReference string
}

// OrderConfirmationData данные письма о заказе
type OrderConfirmationData struct {
	CustomerName   string
	TotalAmount    float64
	OrderReference string
	Products       []ProductLine
}

// ProductLine строка таблицы товаров
type ProductLine struct {
	Name     string
	Quantity float64
	Price    float64
}

// Renderer держит разобранные шаблоны; имя шаблона = имя файла без .html
type Renderer struct {
	logger *zap.Logger
	set    *template.Template
}

// NewRenderer загружает шаблоны из dir, а при пустом dir из встроенных файлов
func NewRenderer(logger *zap.Logger, dir string) (*Renderer, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "html")
		if err != nil {
			return nil, err
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}

	set, err := template.New("").Funcs(template.FuncMap{
		"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	logger.Info("email templates loaded", zap.String("dir", dir), zap.String("templates", set.DefinedTemplates()))
	return &Renderer{logger: logger, set: set}, nil
}

// Render исполняет шаблон name с данными data
func (r *Renderer) Render(name string, data any) (string, error) {
	tmpl := r.set.Lookup(name + ".html")
	if tmpl == nil {
		return "", fmt.Errorf("email template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s template: %w", name, err)
	}
	return buf.String(), nil
}
