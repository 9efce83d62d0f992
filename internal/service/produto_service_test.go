package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type produtoFixture struct {
	svc    ProdutoService
	uRepo  *stubUsuarioRepo
	vRepo  *stubVitrineRepo
	pRepo  *stubProdutoRepo
	userID uuid.UUID
}

func newProdutoFixture(t *testing.T, planoID string) *produtoFixture {
	t.Helper()
	uRepo := newStubUsuarioRepo()
	vRepo := newStubVitrineRepo()
	pRepo := newStubProdutoRepo()

	user := &model.Usuario{
		ID: uuid.New(), Nome: "Vendedor", Email: "v@example.com",
		Role: model.RoleUser, Status: model.StatusActive, Plano: planoID,
	}
	uRepo.users[user.ID] = user

	require.NoError(t, vRepo.Create(context.Background(), &model.Vitrine{
		UsuarioID: user.ID, Nome: "Loja", Slug: "loja", Ativa: true,
	}))

	return &produtoFixture{
		svc:    NewProdutoService(pRepo, vRepo, uRepo),
		uRepo:  uRepo,
		vRepo:  vRepo,
		pRepo:  pRepo,
		userID: user.ID,
	}
}

func TestCriarProduto_Success(t *testing.T) {
	f := newProdutoFixture(t, "basico")
	preco := decimal.NewFromFloat(45900.00)

	resp, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
		Nome: "Fiat Uno 2015", Preco: &preco,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Fiat Uno 2015", resp.Produto.Nome)
	assert.True(t, resp.Produto.Ativo)
}

func TestCriarProduto_SemVitrine(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	_, err := f.svc.Criar(context.Background(), uuid.New(), dto.CriarProdutoRequest{Nome: "Qualquer"})
	assert.ErrorIs(t, err, ErrVitrineNaoEncontrada)
}

func TestCriarProduto_LimiteBasico(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	for i := 0; i < 10; i++ {
		_, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
			Nome: fmt.Sprintf("Produto %d", i+1),
		})
		require.NoError(t, err)
	}

	_, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Produto 11"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitePlano)
	assert.Contains(t, err.Error(), "10")
	assert.Contains(t, err.Error(), "upgrade")
}

func TestRegistrarVisualizacao(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	resp, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Celta 2010"})
	require.NoError(t, err)
	id, err := uuid.Parse(resp.Produto.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.RegistrarVisualizacao(context.Background(), id))
	}

	obtido, err := f.svc.Obter(context.Background(), f.userID, id)
	require.NoError(t, err)
	assert.Equal(t, 3, obtido.Produto.Visualizacoes)
}

func TestRegistrarVisualizacao_ProdutoInexistente(t *testing.T) {
	f := newProdutoFixture(t, "basico")
	assert.Error(t, f.svc.RegistrarVisualizacao(context.Background(), uuid.New()))
}

func TestCriarProduto_InativosContamNoLimite(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	var lastID uuid.UUID
	for i := 0; i < 10; i++ {
		resp, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
			Nome: fmt.Sprintf("Produto %d", i+1),
		})
		require.NoError(t, err)
		lastID, _ = uuid.Parse(resp.Produto.ID)
	}

	// Deactivating a listing does not free a slot
	_, err := f.svc.ToggleAtivo(context.Background(), f.userID, lastID)
	require.NoError(t, err)

	_, err = f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Produto 11"})
	assert.Error(t, err)
}

func TestCriarProduto_PlanoIlimitado(t *testing.T) {
	f := newProdutoFixture(t, "profissional")

	for i := 0; i < 25; i++ {
		_, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
			Nome: fmt.Sprintf("Produto %d", i+1),
		})
		require.NoError(t, err)
	}
}

func TestProduto_OwnershipAsNotFound(t *testing.T) {
	dono := newProdutoFixture(t, "basico")
	intruso := newProdutoFixture(t, "basico")

	resp, err := dono.svc.Criar(context.Background(), dono.userID, dto.CriarProdutoRequest{Nome: "Meu Produto"})
	require.NoError(t, err)
	produtoID, _ := uuid.Parse(resp.Produto.ID)

	// Another seller hitting the same id must see not-found, not forbidden
	_, err = intruso.svc.Obter(context.Background(), intruso.userID, produtoID)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
}

func TestAtualizarProduto_PartialFields(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	preco := decimal.NewFromFloat(1000)
	created, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
		Nome: "Original", Preco: &preco,
	})
	require.NoError(t, err)
	produtoID, _ := uuid.Parse(created.Produto.ID)

	novoNome := "Renomeado"
	resp, err := f.svc.Atualizar(context.Background(), f.userID, produtoID, dto.AtualizarProdutoRequest{
		Nome: &novoNome,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renomeado", resp.Produto.Nome)
	require.NotNil(t, resp.Produto.Preco)
	assert.True(t, resp.Produto.Preco.Equal(preco), "untouched fields must survive partial update")
}

func TestExcluirProduto(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	created, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Descartável"})
	require.NoError(t, err)
	produtoID, _ := uuid.Parse(created.Produto.ID)

	require.NoError(t, f.svc.Excluir(context.Background(), f.userID, produtoID))

	_, err = f.svc.Obter(context.Background(), f.userID, produtoID)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)

	// Hard delete frees a plan slot
	count, _ := f.pRepo.CountByVitrineID(context.Background(), f.vitrineID(t))
	assert.Equal(t, int64(0), count)
}

func TestToggleDestaque(t *testing.T) {
	f := newProdutoFixture(t, "basico")

	created, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Destacável"})
	require.NoError(t, err)
	produtoID, _ := uuid.Parse(created.Produto.ID)
	assert.False(t, created.Produto.Destaque)

	resp, err := f.svc.ToggleDestaque(context.Background(), f.userID, produtoID)
	require.NoError(t, err)
	assert.True(t, resp.Produto.Destaque)

	resp, err = f.svc.ToggleDestaque(context.Background(), f.userID, produtoID)
	require.NoError(t, err)
	assert.False(t, resp.Produto.Destaque)
}

func TestListarProdutos_Filtros(t *testing.T) {
	f := newProdutoFixture(t, "profissional")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{
			Nome: fmt.Sprintf("Ativo %d", i+1),
		})
		require.NoError(t, err)
	}
	created, err := f.svc.Criar(context.Background(), f.userID, dto.CriarProdutoRequest{Nome: "Desligado"})
	require.NoError(t, err)
	offID, _ := uuid.Parse(created.Produto.ID)
	_, err = f.svc.ToggleAtivo(context.Background(), f.userID, offID)
	require.NoError(t, err)

	ativos, err := f.svc.Listar(context.Background(), f.userID, dto.ProdutoFilter{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(3), ativos.Total)

	inativos, err := f.svc.Listar(context.Background(), f.userID, dto.ProdutoFilter{Ativo: "false", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), inativos.Total)

	todos, err := f.svc.Listar(context.Background(), f.userID, dto.ProdutoFilter{Ativo: "all", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(4), todos.Total)
}

func (f *produtoFixture) vitrineID(t *testing.T) uuid.UUID {
	t.Helper()
	v, err := f.vRepo.FindByUsuarioID(context.Background(), f.userID)
	require.NoError(t, err)
	return v.ID
}
