package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify_Basic(t *testing.T) {
	assert.Equal(t, "loja-do-joao", Slugify("Loja do João"))
	assert.Equal(t, "acai-e-cia", Slugify("Açaí & Cia"))
	assert.Equal(t, "ze-motos", Slugify("  Zé Motos  "))
}

func TestSlugify_Accents(t *testing.T) {
	assert.Equal(t, "oficina-goncalves", Slugify("Oficina Gonçalves"))
	assert.Equal(t, "movies-e-decoracao", Slugify("Móvies e Decoração"))
	assert.Equal(t, "nunez", Slugify("Núñez"))
}

func TestSlugify_SymbolsDropped(t *testing.T) {
	assert.Equal(t, "loja-10", Slugify("Loja #10!"))
	assert.Equal(t, "ab", Slugify("a@b"))
}

func TestSlugify_SeparatorsCollapse(t *testing.T) {
	assert.Equal(t, "a-b", Slugify("a   b"))
	assert.Equal(t, "a-b", Slugify("a _ b"))
	assert.Equal(t, "a-b", Slugify("a--b"))
	assert.Equal(t, "a-b", Slugify("-a-b-"))
}

func TestSlugify_Empty(t *testing.T) {
	assert.Equal(t, "", Slugify(""))
	assert.Equal(t, "", Slugify("!!!"))
	assert.Equal(t, "", Slugify("---"))
}

func TestAllocate_FreeBase(t *testing.T) {
	got := Allocate("loja-a", func(string) bool { return false })
	assert.Equal(t, "loja-a", got)
}

func TestAllocate_SuffixProbing(t *testing.T) {
	taken := map[string]bool{"loja-a": true}
	got := Allocate("loja-a", func(s string) bool { return taken[s] })
	assert.Equal(t, "loja-a-1", got)

	taken["loja-a-1"] = true
	taken["loja-a-2"] = true
	got = Allocate("loja-a", func(s string) bool { return taken[s] })
	assert.Equal(t, "loja-a-3", got)
}

func TestAllocate_EmptyBaseFallsBack(t *testing.T) {
	got := Allocate("", func(string) bool { return false })
	assert.Equal(t, DefaultBase, got)

	taken := map[string]bool{DefaultBase: true}
	got = Allocate("", func(s string) bool { return taken[s] })
	assert.Equal(t, DefaultBase+"-1", got)
}

func TestAllocate_Deterministic(t *testing.T) {
	taken := map[string]bool{"x": true, "x-1": true}
	a := Allocate("x", func(s string) bool { return taken[s] })
	b := Allocate("x", func(s string) bool { return taken[s] })
	assert.Equal(t, a, b)
}
