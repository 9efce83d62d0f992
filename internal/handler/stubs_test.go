package handler

import (
	"context"
	"strings"

	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// usuarioMemRepo is an in-memory UsuarioRepository for handler tests.
type usuarioMemRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func authStubRepo() repository.UsuarioRepository {
	return &usuarioMemRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *usuarioMemRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *usuarioMemRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *usuarioMemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *usuarioMemRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *usuarioMemRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *usuarioMemRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Status = status
	return nil
}

func (r *usuarioMemRepo) SetPlano(_ context.Context, id uuid.UUID, planoID string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Plano = planoID
	return nil
}
