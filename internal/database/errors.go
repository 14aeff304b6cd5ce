package database

import (
	"errors"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// ErrNoFields is returned when a partial update carries no set fields.
var ErrNoFields = errors.New("no fields provided for update")

// StorageError wraps a driver or SQL failure of a single operation.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return "failed to " + e.Op + ": " + e.Err.Error()
}

func (e *StorageError) Unwrap() error { return e.Err }

// Code returns the MySQL error number or PostgreSQL SQLSTATE of the
// underlying error, or "" when the driver did not supply one.
func (e *StorageError) Code() string {
	var myErr *mysql.MySQLError
	if errors.As(e.Err, &myErr) {
		return strconv.Itoa(int(myErr.Number))
	}
	var pqErr *pq.Error
	if errors.As(e.Err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// Extensions is reported in the GraphQL error's extensions object.
func (e *StorageError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": "STORAGE_ERROR"}
	if code := e.Code(); code != "" {
		ext["driverCode"] = code
	}
	return ext
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
