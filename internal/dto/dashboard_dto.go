package dto

// DashboardResponse aggregates the seller panel numbers in one call.
type DashboardResponse struct {
	Success           bool   `json:"success"`
	VitrineNome       string `json:"vitrine_nome"`
	VitrineSlug       string `json:"vitrine_slug"`
	Visualizacoes     int    `json:"visualizacoes"`
	CliquesWhatsapp   int    `json:"cliques_whatsapp"`
	TotalProdutos     int64  `json:"total_produtos"`
	ProdutosAtivos    int64  `json:"produtos_ativos"`
	ProdutosDestaque  int64  `json:"produtos_destaque"`
	TotalLeads        int    `json:"total_leads"`
}
