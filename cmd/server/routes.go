package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/gorilla/mux"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/nucleus/village-api/internal/middleware"
)

const version = "0.1.0"

type pinger interface {
	Ping(ctx context.Context) error
}

// newRouter wires the GraphQL endpoint, the playground and the health check.
func newRouter(schema *graphql.Schema, db pinger, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger), middleware.Recovery(logger))

	r.Handle("/graphql", &relay.Handler{Schema: schema}).Methods(http.MethodPost)
	r.Handle("/graphql", playground.Handler("Village GraphQL Playground", "/graphql")).Methods(http.MethodGet)
	r.Handle("/", playground.Handler("Village GraphQL Playground", "/graphql")).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler(db)).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         86400,
	})
	return c.Handler(r)
}

type healthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	DBStatus string `json:"db_status"`
	Error    string `json:"error,omitempty"`
}

func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok", Version: version, DBStatus: "connected"}
		code := http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			resp.Status = "error"
			resp.DBStatus = "connection_error"
			resp.Error = err.Error()
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(resp)
	}
}
