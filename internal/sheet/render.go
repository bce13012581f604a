// Package sheet renders one technical sheet as a standalone printable HTML
// document, the same document the tool has always exported.
package sheet

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/evertonjcd/sistema-fichas-tecnicas/internal/domain"
)

var sheetTmpl = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Ficha Técnica - {{.Name}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            line-height: 1.6;
        }
        .header {
            text-align: center;
            border-bottom: 3px solid #333;
            padding-bottom: 10px;
            margin-bottom: 20px;
        }
        .section {
            margin-bottom: 20px;
        }
        .ingredientes {
            border: 1px solid #ddd;
            padding: 15px;
            background-color: #f9f9f9;
        }
        .custo {
            background-color: #e8f5e8;
            padding: 10px;
            border-radius: 5px;
            font-weight: bold;
        }
        @media print {
            body { margin: 0; }
            .no-print { display: none; }
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>FICHA TÉCNICA</h1>
        <h2>{{.Name}}</h2>
    </div>

    <div class="section">
        <h3>INGREDIENTES</h3>
        <div class="ingredientes">
            {{range .IngredientLines}}{{.}}<br>{{end}}
        </div>
    </div>

    <div class="section">
        <h3>MODO DE PREPARO</h3>
        <p>{{range .PreparationLines}}{{.}}<br>{{end}}</p>
    </div>

    <div class="section">
        <h3>RENDIMENTO</h3>
        <p><strong>Peso:</strong> {{.YieldKg}} kg</p>
        <p><strong>Unidades:</strong> {{.YieldUnits}} unidades</p>
    </div>

    <div class="custo">
        <h3>CUSTO TOTAL: R$ {{.TotalCost}}</h3>
    </div>

    <div class="no-print" style="margin-top: 30px; text-align: center;">
        <button onclick="window.print()">Imprimir</button>
        <button onclick="window.close()">Fechar</button>
    </div>
</body>
</html>
`))

type sheetData struct {
	Name             string
	IngredientLines  []string
	PreparationLines []string
	YieldKg          float64
	YieldUnits       int
	TotalCost        string
}

// Render formats one recipe as a self-contained HTML document. Template
// escaping keeps arbitrary recipe text from breaking the markup; empty
// preparation text or an empty ingredient listing render as empty sections.
func Render(r domain.Recipe) (string, error) {
	data := sheetData{
		Name:             r.Name,
		IngredientLines:  splitListing(r.Ingredients),
		PreparationLines: strings.Split(r.Preparation, "\n"),
		YieldKg:          r.YieldKg,
		YieldUnits:       r.YieldUnits,
		TotalCost:        fmt.Sprintf("%.2f", r.TotalCost),
	}
	var b strings.Builder
	if err := sheetTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// splitListing breaks the stored "Name: qty; Name: qty" string into one
// line per ingredient.
func splitListing(listing string) []string {
	if listing == "" {
		return nil
	}
	parts := strings.Split(listing, ";")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
