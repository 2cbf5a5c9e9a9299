package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/products-api/internal/http/handlers"
	"github.com/rogerio-castellano/products-api/internal/http/router"
	"github.com/rogerio-castellano/products-api/internal/models"
	"github.com/rogerio-castellano/products-api/internal/repo"
	"github.com/rs/zerolog"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
}

func newRouter() http.Handler {
	return router.NewRouter(router.Deps{Products: productRepo, Logger: zerolog.Nop()})
}

func clearAllProducts() {
	productRepo.Clear()
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

var errDBDown = errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

// failingProductRepository fails every call, like a database that went away.
type failingProductRepository struct{ err error }

func (f failingProductRepository) GetAll(context.Context) ([]models.Product, error) {
	return nil, f.err
}

func (f failingProductRepository) GetByID(context.Context, int64) (models.Product, error) {
	return models.Product{}, f.err
}

func (f failingProductRepository) Create(context.Context, models.Product) error { return f.err }

func (f failingProductRepository) Update(context.Context, models.Product) error { return f.err }

func (f failingProductRepository) Delete(context.Context, int64) error { return f.err }

// panickingProductRepository panics on every read.
type panickingProductRepository struct{ failingProductRepository }

func (panickingProductRepository) GetAll(context.Context) ([]models.Product, error) {
	panic("driver bug")
}

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }
