package plano

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCatalogo_Tiers(t *testing.T) {
	tiers := Catalogo()
	assert.Len(t, tiers, 3)
	assert.Equal(t, "basico", tiers[0].ID)
	assert.Equal(t, "profissional", tiers[1].ID)
	assert.Equal(t, "premium", tiers[2].ID)
}

func TestPorID(t *testing.T) {
	basico, ok := PorID("basico")
	assert.True(t, ok)
	assert.Equal(t, 10, basico.LimiteProdutos)
	assert.True(t, basico.PrecoMensal.Equal(decimal.NewFromFloat(29.90)))

	prof, ok := PorID("profissional")
	assert.True(t, ok)
	assert.Equal(t, Ilimitado, prof.LimiteProdutos)

	premium, ok := PorID("premium")
	assert.True(t, ok)
	assert.Equal(t, Ilimitado, premium.LimiteProdutos)

	_, ok = PorID("enterprise")
	assert.False(t, ok)
}

func TestBase_ExistsInCatalogo(t *testing.T) {
	_, ok := PorID(Base)
	assert.True(t, ok)
}
