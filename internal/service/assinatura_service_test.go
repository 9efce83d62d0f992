package service

import (
	"context"
	"testing"

	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/plano"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssinaturaFixture(t *testing.T) (AssinaturaService, *stubUsuarioRepo, uuid.UUID) {
	t.Helper()
	uRepo := newStubUsuarioRepo()
	vRepo := newStubVitrineRepo()
	pRepo := newStubProdutoRepo()

	user := &model.Usuario{
		ID: uuid.New(), Nome: "Assinante", Email: "a@example.com",
		Role: model.RoleUser, Status: model.StatusActive, Plano: plano.Base,
	}
	uRepo.users[user.ID] = user

	return NewAssinaturaService(uRepo, vRepo, pRepo), uRepo, user.ID
}

func TestPlanos_Catalogo(t *testing.T) {
	svc, _, _ := newAssinaturaFixture(t)

	resp := svc.Planos(context.Background())
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 3)
}

func TestStatus_Default(t *testing.T) {
	svc, _, userID := newAssinaturaFixture(t)

	resp, err := svc.Status(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "basico", resp.PlanoID)
	assert.Equal(t, 10, resp.LimiteProdutos)
	assert.Equal(t, int64(0), resp.TotalProdutos)
}

func TestSelecionarPlano(t *testing.T) {
	svc, uRepo, userID := newAssinaturaFixture(t)

	resp, err := svc.SelecionarPlano(context.Background(), userID, "profissional")
	require.NoError(t, err)
	assert.Equal(t, "profissional", resp.PlanoID)
	assert.Equal(t, plano.Ilimitado, resp.LimiteProdutos)
	assert.Equal(t, "profissional", uRepo.users[userID].Plano)
}

func TestSelecionarPlano_Invalido(t *testing.T) {
	svc, _, userID := newAssinaturaFixture(t)

	_, err := svc.SelecionarPlano(context.Background(), userID, "enterprise")
	assert.ErrorIs(t, err, ErrPlanoInvalido)
}
