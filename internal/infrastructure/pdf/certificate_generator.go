// Package pdf implementa la generación del Certificado de Fumigación en PDF
// para fumigaciones FINISHED.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Certificado de Fumigación  │  N° lote + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EXPORTADOR: Razón social + RUC + contacto                  │
//	│  LOTE: tonelaje / sacos / calidad / puerto destino          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Insumos aplicados (nombre | cantidad | dosis)       │
//	│  CONDICIONES: temperatura / humedad / fosfina               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cuadrilla técnica + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 34, Green: 87, Blue: 46}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.CertificatePDFGenerator = (*MarotoCertificateGenerator)(nil)

// MarotoCertificateGenerator implementa usecase.CertificatePDFGenerator usando Maroto v2.
type MarotoCertificateGenerator struct{}

// NewMarotoCertificateGenerator construye el generador.
func NewMarotoCertificateGenerator() *MarotoCertificateGenerator { return &MarotoCertificateGenerator{} }

// GenerateCertificatePDF genera el PDF y devuelve sus bytes.
func (g *MarotoCertificateGenerator) GenerateCertificatePDF(_ context.Context, data usecase.CertificateData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Certificado de Fumigación", true).
		WithAuthor(data.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.Fumigation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(exporterRow(data.Company))
	m.AddRows(lotRow(data.Fumigation))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(suppliesHeaderRow())
	for _, r := range suppliesRows(data.Report.Supplies) {
		m.AddRows(r)
	}
	m.AddRows(environmentRow(data.Report))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(crewRow(data.Report.Technicians))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar certificado: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(f *entity.Fumigation) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("CERTIFICADO DE FUMIGACIÓN", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Control de plagas en cacao de exportación", props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Lote N° "+f.LotNumber, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
			text.New(f.DateTime.Format("2006-01-02 15:04"), props.Text{Size: 8, Top: 6, Align: align.Right, Color: colorGray}),
		),
	)
}

func exporterRow(c *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EXPORTADOR: "+c.Name, props.Text{Size: 9, Style: fontstyle.Bold}),
			text.New(fmt.Sprintf("RUC %s · %s · %s", c.RUC, c.Address, c.Phone), props.Text{Size: 8, Top: 5, Color: colorGray}),
		),
	)
}

func lotRow(f *entity.Fumigation) core.Row {
	detail := fmt.Sprintf("%s t · %d sacos · calidad %s · destino %s",
		f.Tonnage.String(), f.SackCount, f.QualityGrade, f.PortDestiny)
	return row.New(8).Add(
		col.New(12).Add(text.New("LOTE: "+detail, props.Text{Size: 9})),
	)
}

func suppliesHeaderRow() core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New("Insumo", props.Text{Size: 8, Style: fontstyle.Bold})),
		col.New(3).Add(text.New("Cantidad", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New("Dosis", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func suppliesRows(supplies []entity.Supply) []core.Row {
	rows := make([]core.Row, 0, len(supplies))
	for _, s := range supplies {
		rows = append(rows, row.New(6).Add(
			col.New(6).Add(text.New(s.Name, props.Text{Size: 8})),
			col.New(3).Add(text.New(s.Quantity.String(), props.Text{Size: 8, Align: align.Right})),
			col.New(3).Add(text.New(s.Dosage, props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

func environmentRow(r *entity.FumigationReport) core.Row {
	detail := fmt.Sprintf("Temperatura %s °C · Humedad %s %% · Fosfina %s ppm",
		r.Environmental.Temperature.String(), r.Environmental.Humidity.String(), r.Environmental.PhosphinePPM.String())
	return row.New(8).Add(
		col.New(12).Add(text.New("CONDICIONES: "+detail, props.Text{Size: 8, Top: 2})),
	)
}

func crewRow(technicians []entity.Technician) core.Row {
	names := ""
	for i, t := range technicians {
		if i > 0 {
			names += ", "
		}
		names += t.Name
	}
	return row.New(8).Add(
		col.New(12).Add(text.New("CUADRILLA TÉCNICA: "+names, props.Text{Size: 8})),
	)
}

func footerRow() core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			"Documento generado por PlagiSmart. La fumigación cumplió el protocolo sin peligros de seguridad industrial.",
			props.Text{Size: 7, Top: 3, Color: colorGray},
		)),
	)
}
