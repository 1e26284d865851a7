// Package pdf genera la ficha de precios imprimible de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + estado        │  Tipo + fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRECIOS: base / descuento / so'm / cuota mensual / total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Variante | Precio | so'm | Total a plazos            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FICHA TÉCNICA: clave / descripción                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR al producto + calificación                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalog-api/internal/application/dto"
	"github.com/jhoicas/catalog-api/internal/application/ports"
	"github.com/jhoicas/catalog-api/pkg/money"
)

var (
	colorPrimary = &props.Color{Red: 120, Green: 72, Blue: 28}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ports.ProductSheetGenerator = (*MarotoSheetGenerator)(nil)

// MarotoSheetGenerator implementa ProductSheetGenerator usando Maroto v2.
type MarotoSheetGenerator struct {
	siteURL string // base del enlace del QR; vacío omite el QR
}

func NewMarotoSheetGenerator(siteURL string) *MarotoSheetGenerator {
	return &MarotoSheetGenerator{siteURL: siteURL}
}

// GenerateProductSheet genera el PDF y devuelve sus bytes.
func (g *MarotoSheetGenerator) GenerateProductSheet(_ context.Context, p dto.ProductDetailResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(p.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pricingRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(p.Images) > 0 {
		m.AddRows(tableHeaderRow())
		m.AddRows(variantRows(p.Images)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	}
	if len(p.AdditionalInfo) > 0 {
		m.AddRows(infoRows(p.AdditionalInfo)...)
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}
	m.AddRows(g.footerRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow título y estado (izq), tipo y fecha de emisión (der).
func headerRow(p dto.ProductDetailResponse) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New(p.Title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(nonEmpty(p.Status, "—"), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New(strings.ToUpper(p.ProductType), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(time.Now().Format("02.01.2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// pricingRow bloque de precios derivados.
func pricingRow(p dto.ProductDetailResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	pr := p.Pricing
	monthly := money.Sum(pr.MonthlyUZS)
	if p.Variant != nil {
		monthly = fmt.Sprintf("%s × %d", monthly, p.Variant.Duration)
	}
	labels := []core.Component{label("Narx:")}
	values := []core.Component{value(money.Sum(pr.PriceUZS))}
	if pr.DiscountUZS > 0 {
		labels = append(labels, label(fmt.Sprintf("Chegirma (%s%%):", p.Percentage.StringFixed(0))))
		values = append(values, value(money.Sum(pr.DiscountUZS)))
	}
	labels = append(labels, label("Oylik to'lov:"), label("Jami:"))
	values = append(values, value(monthly), value(money.Sum(pr.TotalUZS)))

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(labels...),
		col.New(4).Add(values...),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Variant", 4, align.Left),
		h("Narx", 2, align.Right),
		h("So'm", 3, align.Right),
		h("Muddatli", 3, align.Right),
	)
}

// variantRows una fila por imagen: color o muqova con su precio.
func variantRows(images []dto.ProductImageResponse) []core.Row {
	rows := make([]core.Row, 0, len(images))
	for _, img := range images {
		rows = append(rows, row.New(7).Add(
			col.New(4).Add(text.New(variantLabel(img), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(img.Price.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money.Sum(img.PriceUZS), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(money.Sum(img.TotalUZS), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func infoRows(infos []dto.AdditionalInfoResponse) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("XUSUSIYATLARI", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, info := range infos {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(info.Title, props.Text{Style: fontstyle.Bold, Size: 8, Top: 0.5})),
			col.New(8).Add(text.New(nonEmpty(info.Description, "—"), props.Text{Size: 8, Top: 0.5, Color: colorGray})),
		))
	}
	return rows
}

// footerRow QR con el enlace al producto y la calificación media.
func (g *MarotoSheetGenerator) footerRow(p dto.ProductDetailResponse) core.Row {
	rating := text.New(fmt.Sprintf("Reyting: %.1f / 5 (%d)", p.Rating, len(p.Rates)), props.Text{
		Size: 8, Top: 4, Left: 3, Color: colorGray,
	})
	if g.siteURL == "" {
		return row.New(10).Add(col.New(12).Add(rating))
	}
	link := strings.TrimRight(g.siteURL, "/") + "/products/" + p.ID
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(link, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			rating,
			text.New(link, props.Text{Size: 7, Top: 12, Left: 3, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func variantLabel(img dto.ProductImageResponse) string {
	switch {
	case img.Wrapper != nil && *img.Wrapper != "":
		return "Muqova: " + *img.Wrapper
	case img.ColorID != nil && *img.ColorID != "":
		return "Rang: " + *img.ColorID
	}
	return "—"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
