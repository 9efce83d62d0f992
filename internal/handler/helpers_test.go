package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/isdev18/vitrine-do-vendedor/internal/middleware"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// errorRouter serves a single route that fails with err, behind the same
// ErrorHandler middleware the real engine uses.
func errorRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/falha", func(c *gin.Context) { respondError(c, err) })
	return r
}

func getFalha(r *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/falha", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestRespondError_ErroDeInfraNaoVaza(t *testing.T) {
	infraErr := errors.New(`pq: password authentication failed for user "vitrine" at 10.0.0.5`)
	w := getFalha(errorRouter(infraErr))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro interno do servidor")
	assert.NotContains(t, w.Body.String(), "pq:")
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestRespondError_LimitePlanoMantemMensagem(t *testing.T) {
	err := fmt.Errorf("limite de 10 produtos do plano Basico atingido: %w", service.ErrLimitePlano)
	w := getFalha(errorRouter(err))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "limite de 10")
	assert.Contains(t, w.Body.String(), "upgrade")
}

func TestRespondError_SentinelasMapeados(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrCredenciaisInvalidas, http.StatusUnauthorized},
		{service.ErrTokenInvalido, http.StatusUnauthorized},
		{service.ErrContaBloqueada, http.StatusForbidden},
		{service.ErrVitrineNaoEncontrada, http.StatusNotFound},
		{service.ErrProdutoNaoEncontrado, http.StatusNotFound},
		{service.ErrEmailJaCadastrado, http.StatusConflict},
		{service.ErrSlugEmUso, http.StatusConflict},
		{service.ErrSenhaAtualIncorreta, http.StatusBadRequest},
		{service.ErrPlanoInvalido, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := getFalha(errorRouter(tc.err))
		assert.Equal(t, tc.want, w.Code, tc.err.Error())
		assert.Contains(t, w.Body.String(), tc.err.Error())
	}
}
