// Package plano holds the static subscription plan catalog. Plans are not
// persisted; the user record stores only the selected plan id.
package plano

import "github.com/shopspring/decimal"

// Ilimitado marks a tier without a product ceiling.
const Ilimitado = -1

// Plano is a subscription tier. LimiteProdutos bounds how many products a
// storefront on this tier may list.
type Plano struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	PrecoMensal    decimal.Decimal `json:"preco_mensal"`
	PrecoAnual     decimal.Decimal `json:"preco_anual"`
	LimiteProdutos int             `json:"limite_produtos"`
	Recursos       []string        `json:"recursos"`
	Destaque       bool            `json:"destaque"`
}

// Base is the tier every new account starts on.
const Base = "basico"

var catalogo = []Plano{
	{
		ID:             "basico",
		Nome:           "Básico",
		PrecoMensal:    decimal.NewFromFloat(29.90),
		PrecoAnual:     decimal.NewFromFloat(299.00),
		LimiteProdutos: 10,
		Recursos: []string{
			"Vitrine personalizada",
			"Até 10 produtos",
			"Link personalizado",
			"Botão WhatsApp",
			"Suporte por email",
		},
	},
	{
		ID:             "profissional",
		Nome:           "Profissional",
		PrecoMensal:    decimal.NewFromFloat(49.90),
		PrecoAnual:     decimal.NewFromFloat(499.00),
		LimiteProdutos: Ilimitado,
		Recursos: []string{
			"Tudo do Básico",
			"Produtos ilimitados",
			"Dashboard com métricas",
			"Destaque nas buscas",
			"Suporte prioritário",
		},
		Destaque: true,
	},
	{
		ID:             "premium",
		Nome:           "Premium",
		PrecoMensal:    decimal.NewFromFloat(99.90),
		PrecoAnual:     decimal.NewFromFloat(999.00),
		LimiteProdutos: Ilimitado,
		Recursos: []string{
			"Tudo do Profissional",
			"Domínio personalizado",
			"Relatórios avançados",
			"Gerente de conta dedicado",
		},
	},
}

// Catalogo returns every tier in display order.
func Catalogo() []Plano { return catalogo }

// PorID looks a tier up by id.
func PorID(id string) (Plano, bool) {
	for _, p := range catalogo {
		if p.ID == id {
			return p, true
		}
	}
	return Plano{}, false
}
