package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/config"
	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/plano"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"
	"github.com/isdev18/vitrine-do-vendedor/internal/worker"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error)
	AtualizarPerfil(ctx context.Context, userID uuid.UUID, req dto.AtualizarPerfilRequest) (*dto.MeResponse, error)
	AlterarSenha(ctx context.Context, userID uuid.UUID, req dto.AlterarSenhaRequest) error

	// Admin
	ListarUsuarios(ctx context.Context) (*dto.UsuarioListResponse, error)
	BloquearUsuario(ctx context.Context, id uuid.UUID) error
	DesbloquearUsuario(ctx context.Context, id uuid.UUID) error
}

type authService struct {
	repo       repository.UsuarioRepository
	cfg        *config.Config
	dispatcher Dispatcher
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config, dispatcher Dispatcher) AuthService {
	return &authService{repo: repo, cfg: cfg, dispatcher: dispatcher}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailJaCadastrado
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		Nome:         strings.TrimSpace(req.Nome),
		Email:        email,
		PasswordHash: string(hash),
		Telefone:     req.Telefone,
		Role:         model.RoleUser,
		Status:       model.StatusActive,
		Plano:        plano.Base,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Welcome mail is best-effort; registration already succeeded.
	if s.dispatcher != nil {
		mailErr := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
			ToEmail: user.Email,
			Subject: "Bem-vindo a Vitrine do Vendedor!",
			Body: fmt.Sprintf(
				"Ola %s,\n\nSua conta foi criada com sucesso. Acesse o painel para montar sua vitrine e comecar a divulgar seus produtos.\n\nEquipe Vitrine do Vendedor",
				user.Nome,
			),
		})
		if mailErr != nil {
			log.Warn().Err(mailErr).Str("email", user.Email).Msg("auth: failed to enqueue welcome email")
		}
	}

	return &dto.RegisterResponse{
		Success: true,
		Message: "Conta criada com sucesso",
		User:    usuarioToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	if user.Status == model.StatusBlocked {
		return nil, ErrContaBloqueada
	}

	return s.buildLoginResponse(user)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrTokenInvalido
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, ErrTokenInvalido
	}

	user, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, ErrTokenInvalido
	}
	if user.Status == model.StatusBlocked {
		return nil, ErrContaBloqueada
	}

	return s.buildLoginResponse(user)
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return &dto.MeResponse{Success: true, User: usuarioToResponse(user)}, nil
}

func (s *authService) AtualizarPerfil(ctx context.Context, userID uuid.UUID, req dto.AtualizarPerfilRequest) (*dto.MeResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	if req.Nome != nil {
		user.Nome = strings.TrimSpace(*req.Nome)
	}
	if req.Telefone != nil {
		user.Telefone = req.Telefone
	}
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return &dto.MeResponse{Success: true, User: usuarioToResponse(user)}, nil
}

func (s *authService) AlterarSenha(ctx context.Context, userID uuid.UUID, req dto.AlterarSenhaRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.SenhaAtual)); err != nil {
		return ErrSenhaAtualIncorreta
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NovaSenha), 12)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Update(ctx, user)
}

func (s *authService) ListarUsuarios(ctx context.Context) (*dto.UsuarioListResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.UsuarioResponse, len(users))
	for i, u := range users {
		data[i] = usuarioToResponse(&u)
	}
	return &dto.UsuarioListResponse{Success: true, Data: data, Total: len(data)}, nil
}

func (s *authService) BloquearUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.repo.SetStatus(ctx, id, model.StatusBlocked)
}

func (s *authService) DesbloquearUsuario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return ErrUsuarioNaoEncontrado
	}
	return s.repo.SetStatus(ctx, id, model.StatusActive)
}

func (s *authService) buildLoginResponse(user *model.Usuario) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(user, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         usuarioToResponse(user),
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioToResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:       u.ID.String(),
		Nome:     u.Nome,
		Email:    u.Email,
		Telefone: u.Telefone,
		Role:     u.Role,
		Status:   u.Status,
		Plano:    u.Plano,
	}
}
