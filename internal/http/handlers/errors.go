package handlers

import (
	"context"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorDetail is the error object returned with 500 responses. Field names
// follow what MySQL clients usually report.
type ErrorDetail struct {
	Code       string `json:"code,omitempty"`
	Errno      int    `json:"errno,omitempty"`
	SQLState   string `json:"sqlState,omitempty"`
	SQLMessage string `json:"sqlMessage,omitempty"`
	Message    string `json:"message"`
}

func errorDetail(err error) *ErrorDetail {
	if err == nil {
		return nil
	}
	d := &ErrorDetail{Message: err.Error()}

	var myErr *mysql.MySQLError
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &myErr):
		d.Errno = int(myErr.Number)
		d.SQLState = strings.TrimRight(string(myErr.SQLState[:]), "\x00")
		d.SQLMessage = myErr.Message
	case errors.As(err, &pgErr):
		d.Code = pgErr.Code
		d.SQLState = pgErr.Code
		d.SQLMessage = pgErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		d.Code = "ETIMEDOUT"
	}
	return d
}
