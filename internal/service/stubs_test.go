package service

// In-memory repository stubs shared by the service tests. They return
// gorm.ErrRecordNotFound on misses, matching the GORM-backed implementations.

import (
	"context"
	"strings"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/config"
	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/worker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

// ── Usuario stub ─────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByEmail(_ context.Context, email string) (*model.Usuario, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) SetStatus(_ context.Context, id uuid.UUID, status string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Status = status
	return nil
}

func (r *stubUsuarioRepo) SetPlano(_ context.Context, id uuid.UUID, planoID string) error {
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Plano = planoID
	return nil
}

// ── Vitrine stub ─────────────────────────────────────────────────────────────

type stubVitrineRepo struct {
	vitrines map[uuid.UUID]*model.Vitrine
}

func newStubVitrineRepo() *stubVitrineRepo {
	return &stubVitrineRepo{vitrines: make(map[uuid.UUID]*model.Vitrine)}
}

func (r *stubVitrineRepo) Create(_ context.Context, v *model.Vitrine) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.vitrines[v.ID] = v
	return nil
}

func (r *stubVitrineRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vitrine, error) {
	v, ok := r.vitrines[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVitrineRepo) FindByUsuarioID(_ context.Context, usuarioID uuid.UUID) (*model.Vitrine, error) {
	for _, v := range r.vitrines {
		if v.UsuarioID == usuarioID {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVitrineRepo) FindPublicBySlug(_ context.Context, slug string) (*model.Vitrine, error) {
	for _, v := range r.vitrines {
		if v.Slug == slug && v.Ativa {
			return v, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubVitrineRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	for _, v := range r.vitrines {
		if v.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubVitrineRepo) Update(_ context.Context, v *model.Vitrine) error {
	r.vitrines[v.ID] = v
	return nil
}

func (r *stubVitrineRepo) IncrementVisualizacoes(_ context.Context, id uuid.UUID) error {
	v, ok := r.vitrines[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.Visualizacoes++
	return nil
}

func (r *stubVitrineRepo) IncrementCliquesWhatsapp(_ context.Context, id uuid.UUID) error {
	v, ok := r.vitrines[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	v.CliquesWhatsapp++
	return nil
}

// ── Produto stub ─────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos map[uuid.UUID]*model.Produto
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProdutoRepo) List(_ context.Context, vitrineID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.VitrineID != vitrineID {
			continue
		}
		switch filter.Ativo {
		case "false":
			if p.Ativo {
				continue
			}
		case "all":
		default:
			if !p.Ativo {
				continue
			}
		}
		if filter.Destaque == "true" && !p.Destaque {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProdutoRepo) ListPublic(_ context.Context, vitrineID uuid.UUID) ([]model.Produto, error) {
	var out []model.Produto
	for _, p := range r.produtos {
		if p.VitrineID == vitrineID && p.Ativo {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProdutoRepo) CountByVitrineID(_ context.Context, vitrineID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.VitrineID == vitrineID {
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) CountAtivos(_ context.Context, vitrineID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.VitrineID == vitrineID && p.Ativo {
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) CountDestaques(_ context.Context, vitrineID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.produtos {
		if p.VitrineID == vitrineID && p.Destaque {
			n++
		}
	}
	return n, nil
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) IncrementVisualizacoes(_ context.Context, id uuid.UUID) error {
	p, ok := r.produtos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Visualizacoes++
	return nil
}

// ── Lead stub ────────────────────────────────────────────────────────────────

type stubLeadRepo struct {
	leads map[uuid.UUID]*model.Lead
}

func newStubLeadRepo() *stubLeadRepo {
	return &stubLeadRepo{leads: make(map[uuid.UUID]*model.Lead)}
}

func (r *stubLeadRepo) Create(_ context.Context, l *model.Lead) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.CreatedAt = time.Now()
	r.leads[l.ID] = l
	return nil
}

func (r *stubLeadRepo) ListByVitrineID(_ context.Context, vitrineID uuid.UUID) ([]model.Lead, error) {
	var out []model.Lead
	for _, l := range r.leads {
		if l.VitrineID == vitrineID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubLeadRepo) CountByVitrineID(_ context.Context, vitrineID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.leads {
		if l.VitrineID == vitrineID {
			n++
		}
	}
	return n, nil
}

func (r *stubLeadRepo) MarkExportado(_ context.Context, id uuid.UUID) error {
	l, ok := r.leads[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	l.Exportado = true
	return nil
}

// ── Dispatcher stub ──────────────────────────────────────────────────────────

type stubDispatcher struct {
	emails    []worker.EmailJobPayload
	planilhas []worker.PlanilhaJobPayload
}

func (d *stubDispatcher) EnqueueEmail(_ context.Context, payload worker.EmailJobPayload) error {
	d.emails = append(d.emails, payload)
	return nil
}

func (d *stubDispatcher) EnqueuePlanilha(_ context.Context, payload worker.PlanilhaJobPayload) error {
	d.planilhas = append(d.planilhas, payload)
	return nil
}
