package db

import (
	"strconv"
	"strings"

	"github.com/rogerio-castellano/products-api/internal/config"
)

// Dialect tells repositories which placeholder style the driver expects.
// Queries are always written with '?' placeholders.
type Dialect int

const (
	MySQL Dialect = iota
	Postgres
)

func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Postgres
	}
	return MySQL
}

// Rebind rewrites '?' placeholders into the dialect's form.
// Queries must not contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) String() string {
	if d == Postgres {
		return "postgres"
	}
	return "mysql"
}
