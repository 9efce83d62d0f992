package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/isdev18/vitrine-do-vendedor/internal/apierror"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps service sentinel errors to HTTP statuses. Anything not
// recognized is handed to the ErrorHandler middleware, which logs the full
// error and answers 500 with the generic envelope — infrastructure failures
// never reach the client verbatim.
func respondError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, service.ErrCredenciaisInvalidas),
		errors.Is(err, service.ErrTokenInvalido):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrContaBloqueada):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrVitrineNaoEncontrada),
		errors.Is(err, service.ErrProdutoNaoEncontrado),
		errors.Is(err, service.ErrUsuarioNaoEncontrado):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrEmailJaCadastrado),
		errors.Is(err, service.ErrVitrineJaExiste),
		errors.Is(err, service.ErrSlugEmUso):
		status = http.StatusConflict
	case errors.Is(err, service.ErrLimitePlano),
		errors.Is(err, service.ErrSenhaAtualIncorreta),
		errors.Is(err, service.ErrSlugInvalido),
		errors.Is(err, service.ErrPlanoInvalido):
		status = http.StatusBadRequest
	default:
		_ = c.Error(err)
		c.Abort()
		return
	}
	c.JSON(status, apierror.New(err.Error()))
}
