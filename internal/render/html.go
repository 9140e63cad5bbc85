package render

import (
	"html/template"
	"strings"

	"github.com/stagebill/stagebill/internal/currency"
	"github.com/stagebill/stagebill/internal/domain/statement"
	ierr "github.com/stagebill/stagebill/internal/errors"
)

const htmlStatementTemplate = `<h1>Statement for {{.Customer}}</h1>
<table>
<tr><th>play</th><th>seats</th><th>cost</th></tr>
{{- range .Performances}}
  <tr><td>{{.Play.Name}}</td><td>{{.Performance.Audience}}</td><td>{{usd .Amount}}</td></tr>
{{- end}}
</table>
<p>Amount owed is <em>{{usd .TotalAmount}}</em></p>
<p>You earned <em>{{.TotalVolumeCredits}}</em> credits</p>
`

// HTMLRenderer renders a statement as an HTML fragment with one table
// row per performance.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer(currency *currency.Formatter) *HTMLRenderer {
	tmpl := template.Must(template.New("statement").
		Funcs(template.FuncMap{
			"usd": currency.Format,
		}).
		Parse(htmlStatementTemplate))
	return &HTMLRenderer{tmpl: tmpl}
}

func (r *HTMLRenderer) Render(data *statement.StatementData) (string, error) {
	var sb strings.Builder
	if err := r.tmpl.Execute(&sb, data); err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to render HTML statement").
			Mark(ierr.ErrSystem)
	}
	return sb.String(), nil
}
