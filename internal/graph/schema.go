// Package graph defines the deliberately over-exposed GraphQL schema.
//
// The schema has exactly two query fields. The interesting part is what is
// switched on around it: introspection, pretty-printed responses and the
// in-browser exploration UI, all reachable without credentials. Running an
// introspection query against /graphql is the exercise.
package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewSchema builds the two-field query schema. The secret field exists to
// show what unrestricted introspection hands to an attacker.
func NewSchema() (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type:        graphql.String,
				Description: "Harmless demo field.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello from GraphQL", nil
				},
			},
			"secret": &graphql.Field{
				Type:        graphql.String,
				Description: "Internal field left discoverable via introspection.",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "FLAG{graphql-introspection-left-open}", nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: queryType})
}

// NewHandler mounts the schema with introspection and the GraphiQL
// exploration UI enabled.
func NewHandler() (*handler.Handler, error) {
	schema, err := NewSchema()
	if err != nil {
		return nil, err
	}

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}
