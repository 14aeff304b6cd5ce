package graph

import (
	"fmt"
	"strconv"

	"github.com/graph-gophers/graphql-go"
)

// ValidationError reports a request the resolvers refuse before reaching storage.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Extensions is reported in the GraphQL error's extensions object.
func (e *ValidationError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "VALIDATION_ERROR"}
}

var errNoFields = &ValidationError{Message: "No fields provided for update"}

func parseID(id graphql.ID) (int64, error) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, &ValidationError{Message: fmt.Sprintf("invalid village id %q", string(id))}
	}
	return n, nil
}
