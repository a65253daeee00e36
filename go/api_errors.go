package storefrontserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	customersapp "github.com/Apurer/go-gin-order-server/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
	ordersapp "github.com/Apurer/go-gin-order-server/internal/domains/orders/application"
	ordersdomain "github.com/Apurer/go-gin-order-server/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-order-server/internal/domains/orders/ports"
	apierrors "github.com/Apurer/go-gin-order-server/internal/shared/errors"
)

// responder maps application errors to RFC 7807 problems before falling
// back to a generic 500.
var responder = apierrors.NewChainedResponder("", mapDomainError)

func mapDomainError(err error) (apierrors.ProblemDetail, bool) {
	switch {
	case errors.Is(err, customersapp.ErrBadEmailSyntax):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, customersapp.ErrEmailTaken):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, customersports.ErrInvalidCredentials):
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrInvalidArticle):
		return apierrors.ErrUnprocessable.WithDetail(err.Error()), true
	case errors.Is(err, ordersapp.ErrIllegalTransition):
		return apierrors.ErrConflict.WithDetail(err.Error()), true
	case errors.Is(err, ordersdomain.ErrInvalidQuantity):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	case errors.Is(err, ordersports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

// respondError maps an application error through the chained responder.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

// respondBadRequest reports malformed payloads and parameters.
func respondBadRequest(c *gin.Context, err error) {
	if err == nil {
		c.Status(http.StatusBadRequest)
		return
	}
	responder.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}
