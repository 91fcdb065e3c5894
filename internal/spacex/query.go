package spacex

import (
	"embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed graphql/*.graphql
var documents embed.FS

// Query is a GraphQL operation document that has been validated against the
// launch schema.
type Query struct {
	// Document is the raw operation text sent to the server.
	Document string
	// OperationName is the name of the single operation in Document.
	OperationName string
}

var (
	launchesPastQuery  = mustLoadQuery("graphql/launches_past.graphql")
	launchDetailsQuery = mustLoadQuery("graphql/launch_details.graphql")
)

// mustLoadQuery reads the document at path, validates it against the embedded
// schema, and extracts its operation name. Documents are compiled into the
// binary, so a failure here is a programming error and panics.
func mustLoadQuery(path string) Query {
	schema, err := loadSchema()
	if err != nil {
		panic(fmt.Sprintf("load schema; error: %s", err))
	}

	b, err := documents.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("read query; path: %s, error: %s", path, err))
	}

	doc, errs := gqlparser.LoadQuery(schema, string(b))
	if len(errs) > 0 {
		panic(fmt.Sprintf("validate query; path: %s, error: %s", path, errs))
	}
	if len(doc.Operations) != 1 {
		panic(fmt.Sprintf("query must define exactly one operation; path: %s", path))
	}

	return Query{
		Document:      string(b),
		OperationName: doc.Operations[0].Name,
	}
}

var schemaCache *ast.Schema

func loadSchema() (*ast.Schema, error) {
	if schemaCache != nil {
		return schemaCache, nil
	}

	b, err := documents.ReadFile("graphql/schema.graphql")
	if err != nil {
		return nil, err
	}

	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: string(b)})
	if err != nil {
		return nil, err
	}
	schemaCache = schema

	return schema, nil
}
