package graph

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphqls
var schemaSDL string

// SDL returns the schema document served by the API.
func SDL() string {
	return schemaSDL
}

// NewSchema parses the schema and binds it to r.
func NewSchema(r *Resolver, opts ...graphql.SchemaOpt) (*graphql.Schema, error) {
	opts = append([]graphql.SchemaOpt{graphql.UseStringDescriptions()}, opts...)
	return graphql.ParseSchema(schemaSDL, r, opts...)
}
