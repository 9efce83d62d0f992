package infra

// pdf.go — dashboard report generation using go-pdf/fpdf.
// Produces a one-page A4 summary of a storefront: header with name and
// public link, metrics table, and the most recent leads.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/model"

	"github.com/go-pdf/fpdf"
)

// RelatorioData aggregates everything the report needs.
type RelatorioData struct {
	Vitrine         *model.Vitrine
	Dominio         string
	TotalProdutos   int64
	ProdutosAtivos  int64
	TotalLeads      int
	LeadsRecentes   []model.Lead
}

// GerarRelatorioPDF writes the report to storagePath and returns its path.
func GerarRelatorioPDF(data RelatorioData, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("relatorio_%s_%s.pdf", data.Vitrine.Slug, time.Now().Format("20060102"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(contentW, 10, data.Vitrine.Nome, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("https://%s/%s", data.Dominio, data.Vitrine.Slug), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Relatório gerado em "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Metrics ──────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, "Métricas", "", 1, "L", false, 0, "")

	metric := func(label string, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW*0.6, 7, label, "B", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(contentW*0.4, 7, value, "B", 1, "R", false, 0, "")
	}
	metric("Visualizações da vitrine", fmt.Sprintf("%d", data.Vitrine.Visualizacoes))
	metric("Cliques no WhatsApp", fmt.Sprintf("%d", data.Vitrine.CliquesWhatsapp))
	metric("Produtos cadastrados", fmt.Sprintf("%d", data.TotalProdutos))
	metric("Produtos ativos", fmt.Sprintf("%d", data.ProdutosAtivos))
	metric("Leads recebidos", fmt.Sprintf("%d", data.TotalLeads))
	pdf.Ln(6)

	// ── Recent leads ─────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(contentW, 8, "Últimos leads", "", 1, "L", false, 0, "")

	col1 := contentW * 0.30 // nome
	col2 := contentW * 0.28 // telefone
	col3 := contentW * 0.42 // data

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Nome", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Telefone", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Recebido em", "B", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if len(data.LeadsRecentes) == 0 {
		pdf.CellFormat(contentW, 6, "Nenhum lead recebido ainda.", "", 1, "L", false, 0, "")
	}
	for _, lead := range data.LeadsRecentes {
		nome := lead.Nome
		if len(nome) > 28 {
			nome = nome[:27] + "…"
		}
		tel := ""
		if lead.Telefone != nil {
			tel = *lead.Telefone
		}
		pdf.CellFormat(col1, 6, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, tel, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, lead.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
