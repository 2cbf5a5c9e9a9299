package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/rogerio-castellano/products-api/internal/db"
	"github.com/rogerio-castellano/products-api/internal/models"
)

const (
	selectProducts    = `SELECT id, ProdName, price, discount, review_count, img_url FROM Products`
	selectProductByID = selectProducts + ` WHERE id = ?`
	insertProduct     = `INSERT INTO Products (ProdName, price, discount, review_count, img_url) VALUES (?, ?, ?, ?, ?)`
	updateProduct     = `UPDATE Products SET ProdName = ?, price = ?, discount = ?, review_count = ?, img_url = ? WHERE id = ?`
	deleteProduct     = `DELETE FROM Products WHERE id = ?`
)

// SQLProductRepository runs every operation as a single statement on a
// connection taken from the pool for that statement only.
type SQLProductRepository struct {
	db      *sql.DB
	dialect db.Dialect
	timeout time.Duration
}

// NewSQLProductRepository builds a repository over pool. A zero timeout
// leaves statements bounded by the caller's context only.
func NewSQLProductRepository(pool *sql.DB, dialect db.Dialect, timeout time.Duration) *SQLProductRepository {
	return &SQLProductRepository{db: pool, dialect: dialect, timeout: timeout}
}

// withConn acquires a pooled connection, runs fn and releases the connection.
func (r *SQLProductRepository) withConn(ctx context.Context, fn func(ctx context.Context, conn *sql.Conn) error) error {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

func (r *SQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	err := r.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, r.dialect.Rebind(selectProducts))
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			p, err := scanProduct(rows)
			if err != nil {
				return err
			}
			products = append(products, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLProductRepository) GetByID(ctx context.Context, id int64) (models.Product, error) {
	var p models.Product
	err := r.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		p, err = scanProduct(conn.QueryRowContext(ctx, r.dialect.Rebind(selectProductByID), id))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

func (r *SQLProductRepository) Create(ctx context.Context, p models.Product) error {
	return r.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, r.dialect.Rebind(insertProduct),
			p.ProdName, p.Price, p.Discount, p.ReviewCount, p.ImgURL)
		return err
	})
}

func (r *SQLProductRepository) Update(ctx context.Context, p models.Product) error {
	return r.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, r.dialect.Rebind(updateProduct),
			p.ProdName, p.Price, p.Discount, p.ReviewCount, p.ImgURL, p.ID)
		return err
	})
}

func (r *SQLProductRepository) Delete(ctx context.Context, id int64) error {
	return r.withConn(ctx, func(ctx context.Context, conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, r.dialect.Rebind(deleteProduct), id)
		return err
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p           models.Product
		name        sql.NullString
		price       sql.NullFloat64
		discount    sql.NullFloat64
		reviewCount sql.NullInt64
		imgURL      sql.NullString
	)
	if err := row.Scan(&p.ID, &name, &price, &discount, &reviewCount, &imgURL); err != nil {
		return models.Product{}, err
	}

	if name.Valid {
		p.ProdName = &name.String
	}
	if price.Valid {
		p.Price = &price.Float64
	}
	if discount.Valid {
		p.Discount = &discount.Float64
	}
	if reviewCount.Valid {
		p.ReviewCount = &reviewCount.Int64
	}
	if imgURL.Valid {
		p.ImgURL = &imgURL.String
	}
	return p, nil
}
