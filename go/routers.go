// Package storefrontserver exposes the storefront HTTP API on gin.
package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the per-section API handlers.
type ApiHandleFunctions struct {
	AuthAPI    AuthAPI
	CatalogAPI CatalogAPI
	OrdersAPI  OrdersAPI
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the API routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc returns 404 for unimplemented routes.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotFound, "404 page not found")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{
			Name:        "SignUp",
			Method:      http.MethodPost,
			Pattern:     "/v1/auth/signup",
			HandlerFunc: handleFunctions.AuthAPI.SignUp,
		},
		{
			Name:        "SignIn",
			Method:      http.MethodPost,
			Pattern:     "/v1/auth/signin",
			HandlerFunc: handleFunctions.AuthAPI.SignIn,
		},
		{
			Name:        "SearchArticles",
			Method:      http.MethodGet,
			Pattern:     "/v1/articles",
			HandlerFunc: handleFunctions.CatalogAPI.SearchArticles,
		},
		{
			Name:        "SubmitOrder",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders",
			HandlerFunc: handleFunctions.OrdersAPI.SubmitOrder,
		},
		{
			Name:        "ConfirmPayment",
			Method:      http.MethodPost,
			Pattern:     "/v1/orders/:orderId/payment",
			HandlerFunc: handleFunctions.OrdersAPI.ConfirmPayment,
		},
		{
			Name:        "QueryOrders",
			Method:      http.MethodGet,
			Pattern:     "/v1/customers/:customerId/orders",
			HandlerFunc: handleFunctions.OrdersAPI.QueryOrders,
		},
	}
}
