//go:build integration

package handlers_integrated_test_suite

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/rogerio-castellano/products-api/internal/config"
	"github.com/rogerio-castellano/products-api/internal/db"
	handler "github.com/rogerio-castellano/products-api/internal/http/handlers"
	"github.com/rogerio-castellano/products-api/internal/http/router"
	"github.com/rogerio-castellano/products-api/internal/repo"
	"github.com/rs/zerolog"
)

var (
	cfg         *config.Config
	database    *sql.DB
	productRepo *repo.SQLProductRepository
)

var createTable = map[string]string{
	config.DriverMySQL: `CREATE TABLE IF NOT EXISTS Products (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		ProdName VARCHAR(255),
		price DOUBLE,
		discount DOUBLE,
		review_count BIGINT,
		img_url VARCHAR(1024)
	)`,
	config.DriverPostgres: `CREATE TABLE IF NOT EXISTS Products (
		id BIGSERIAL PRIMARY KEY,
		ProdName TEXT,
		price DOUBLE PRECISION,
		discount DOUBLE PRECISION,
		review_count BIGINT,
		img_url TEXT
	)`,
}

var truncateTable = map[string]string{
	config.DriverMySQL:    "TRUNCATE TABLE Products",
	config.DriverPostgres: "TRUNCATE TABLE Products RESTART IDENTITY",
}

// init connects with the same environment the server uses (DB_DRIVER,
// DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_DATABASE).
func init() {
	var err error
	cfg, err = config.Load("../../../.env")
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	database, err = db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}

	if _, err := database.ExecContext(ctx, createTable[cfg.DB.Driver]); err != nil {
		log.Fatal("❌ Could not create Products table:", err)
	}

	productRepo = repo.NewSQLProductRepository(database, db.DialectFor(cfg.DB.Driver), 5*time.Second)
}

func newRouter() http.Handler {
	return router.NewRouter(router.Deps{
		Products: productRepo,
		DB:       database,
		Logger:   zerolog.Nop(),
	})
}

func clearAllProducts() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := database.ExecContext(ctx, truncateTable[cfg.DB.Driver])
	if err != nil {
		fmt.Println(fmt.Errorf("failed to truncate Products table: %w", err))
	}
}

func ptr[T any](v T) *T { return &v }

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return do(r, http.MethodPost, "/products", p)
}

func getProduct(r http.Handler, id int64) *httptest.ResponseRecorder {
	return do(r, http.MethodGet, fmt.Sprintf("/products/%d", id), nil)
}

func decodeProducts(w *httptest.ResponseRecorder) (handler.ProductsResponse, error) {
	var resp handler.ProductsResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
