// Package views holds the server-rendered HTML pages.
package views

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var files embed.FS

// Page template names.
const (
	Home         = "index.tmpl"
	Register     = "register.tmpl"
	Login        = "login.tmpl"
	CatalogList  = "catalog.tmpl"
	CatalogEntry = "entry.tmpl"
	Cart         = "cart.tmpl"
	Buy          = "buy.tmpl"
	Confirmation = "purchase_confirmation.tmpl"
	Error        = "error.tmpl"
)

// Templates parses every page. It panics on a malformed template since the
// files are compiled into the binary.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs()).ParseFS(files, "templates/*.tmpl"))
}

func Funcs() template.FuncMap {
	return template.FuncMap{
		"money": Money,
	}
}

// Money formats a decimal price for display.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
