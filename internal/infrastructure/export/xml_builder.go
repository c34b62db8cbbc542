// Package export construye la rendición XML del certificado de fumigación en
// el formato que espera la agencia de control fitosanitario. Se usa etree en
// lugar de encoding/xml porque el formato exige orden estable de atributos y
// elementos al serializar.
package export

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
)

const (
	// Versión del esquema del certificado publicada por la agencia.
	schemaVersion = "1.0"
	nsCertificate = "urn:plagismart:certificado-fumigacion:v1"
)

var _ usecase.CertificateXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML del certificado.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// BuildCertificateXML genera el []byte del documento CertificadoFumigacion.
func (s *XMLBuilderService) BuildCertificateXML(data usecase.CertificateData) ([]byte, error) {
	if data.Fumigation == nil || data.Company == nil || data.Report == nil {
		return nil, fmt.Errorf("export: faltan fumigación, empresa o reporte en el contexto")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("CertificadoFumigacion")
	root.CreateAttr("xmlns", nsCertificate)
	root.CreateAttr("version", schemaVersion)
	root.CreateAttr("id", data.Fumigation.ID)

	exporter := root.CreateElement("Exportador")
	exporter.CreateElement("RazonSocial").SetText(data.Company.Name)
	exporter.CreateElement("RUC").SetText(data.Company.RUC)
	exporter.CreateElement("Direccion").SetText(data.Company.Address)

	lot := root.CreateElement("Lote")
	lot.CreateElement("Numero").SetText(data.Fumigation.LotNumber)
	lot.CreateElement("Toneladas").SetText(data.Fumigation.Tonnage.String())
	lot.CreateElement("Sacos").SetText(fmt.Sprintf("%d", data.Fumigation.SackCount))
	lot.CreateElement("Calidad").SetText(data.Fumigation.QualityGrade)
	lot.CreateElement("PuertoDestino").SetText(data.Fumigation.PortDestiny)
	lot.CreateElement("FechaProgramada").SetText(data.Fumigation.DateTime.Format("2006-01-02T15:04:05"))

	work := root.CreateElement("Trabajo")
	work.CreateElement("Inicio").SetText(data.Report.StartedAt.Format("2006-01-02T15:04:05"))
	work.CreateElement("Fin").SetText(data.Report.FinishedAt.Format("2006-01-02T15:04:05"))

	supplies := work.CreateElement("Insumos")
	for _, su := range data.Report.Supplies {
		el := supplies.CreateElement("Insumo")
		el.CreateAttr("nombre", su.Name)
		el.CreateAttr("cantidad", su.Quantity.String())
		if su.Dosage != "" {
			el.CreateAttr("dosis", su.Dosage)
		}
	}

	crew := work.CreateElement("Cuadrilla")
	for _, t := range data.Report.Technicians {
		el := crew.CreateElement("Tecnico")
		el.CreateAttr("nombre", t.Name)
		el.CreateAttr("cedula", t.Cedula)
	}

	env := work.CreateElement("CondicionesAmbientales")
	env.CreateElement("TemperaturaC").SetText(data.Report.Environmental.Temperature.String())
	env.CreateElement("HumedadPct").SetText(data.Report.Environmental.Humidity.String())
	env.CreateElement("FosfinaPPM").SetText(data.Report.Environmental.PhosphinePPM.String())

	root.CreateElement("Estado").SetText(data.Fumigation.Status)

	doc.Indent(2)
	return doc.WriteToBytes()
}
