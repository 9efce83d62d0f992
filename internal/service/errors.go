package service

import (
	"context"
	"errors"

	"github.com/isdev18/vitrine-do-vendedor/internal/worker"
)

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// statuses; the messages are the user-facing Portuguese strings.
var (
	ErrCredenciaisInvalidas = errors.New("email ou senha incorretos")
	ErrContaBloqueada       = errors.New("conta bloqueada, entre em contato com o suporte")
	ErrEmailJaCadastrado    = errors.New("este email ja esta cadastrado")
	ErrTokenInvalido        = errors.New("token invalido ou expirado")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")

	ErrUsuarioNaoEncontrado = errors.New("usuario nao encontrado")
	ErrVitrineJaExiste      = errors.New("voce ja possui uma vitrine")
	ErrVitrineNaoEncontrada = errors.New("vitrine nao encontrada")
	ErrSlugEmUso            = errors.New("este endereco ja esta em uso")
	ErrSlugInvalido         = errors.New("endereco invalido")

	ErrProdutoNaoEncontrado = errors.New("produto nao encontrado")
	ErrPlanoInvalido        = errors.New("plano invalido")

	// ErrLimitePlano is wrapped with the tier's ceiling and name so the
	// user-facing message carries the actual limit.
	ErrLimitePlano = errors.New("faca upgrade de plano para cadastrar mais produtos")
)

// Dispatcher is the async-job contract the services depend on. Satisfied by
// *worker.Dispatcher in production and by stubs in unit tests.
type Dispatcher interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJobPayload) error
	EnqueuePlanilha(ctx context.Context, payload worker.PlanilhaJobPayload) error
}
