// Package rest
package rest

import (
	"net/http"

	"marketx/internal/config"
	"marketx/internal/domain"
	"marketx/internal/logger"
	"marketx/internal/transport/rest/middleware"
)

type RouterDeps struct {
	Auth    *AuthHandler
	Product *ProductHandler

	Tokens domain.TokenManager
	Log    logger.Logger
}

func NewRouter(cfg *config.Config, deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.RequestID())
	globalMw.Use(middleware.Logging(deps.Log))
	globalMw.Use(middleware.CORS(cfg))

	authStack := middleware.New()
	authStack.Use(middleware.JWT(deps.Tokens))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /register", deps.Auth.Register)
	mux.HandleFunc("POST /login", deps.Auth.Login)

	mux.Handle("GET /products", authStack.Then(http.HandlerFunc(deps.Product.Index)))
	mux.Handle("GET /products/{id}", authStack.Then(http.HandlerFunc(deps.Product.Show)))
	mux.Handle("POST /products", authStack.Then(http.HandlerFunc(deps.Product.Store)))
	mux.Handle("PUT /products/{id}", authStack.Then(http.HandlerFunc(deps.Product.Update)))
	mux.Handle("DELETE /products/{id}", authStack.Then(http.HandlerFunc(deps.Product.Destroy)))

	return globalMw.Apply(mux)
}
