package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/products-api/internal/models"
	repo "github.com/rogerio-castellano/products-api/internal/repo"
	"github.com/rs/zerolog/hlog"
)

// The swag annotations below document the handlers; the served OpenAPI 3.0
// document lives in docs/docs.go and is edited by hand, so do not regenerate
// it with swag init. Route changes must be mirrored there.
type ProductHandler struct {
	products repo.ProductRepository
}

func NewProductHandler(products repo.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

// GetProducts godoc
// @Summary Get all products
// @Description Get all products
// @Tags products
// @Produce json
// @Success 200 {object} ProductsResponse
// @Failure 404 {object} ErrorResponse "No products"
// @Failure 500 {object} ErrorResponse "Some error happened"
// @Router /products [get]
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll(r.Context())
	if err != nil {
		h.serverError(w, r, "Error occured while fetching products", err)
		return
	}
	if len(products) == 0 {
		respond(w, r, http.StatusNotFound, ErrorResponse{Message: "Product not found"})
		return
	}
	respond(w, r, http.StatusOK, ProductsResponse{Message: "Product retrieved successfully.", Data: products})
}

// GetProductByID godoc
// @Summary Get a product by id
// @Description Get a product by id
// @Tags products
// @Produce json
// @Param id path int true "Numeric ID of the product to get"
// @Success 200 {object} ProductsResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "The product was not found"
// @Failure 500 {object} ErrorResponse "Some error happened"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			respond(w, r, http.StatusNotFound, ErrorResponse{Message: "Product not found"})
			return
		}
		h.serverError(w, r, "Error occurred while retrieving product.", err)
		return
	}
	respond(w, r, http.StatusOK, ProductsResponse{
		Message: "Product retrieved successfully.",
		Data:    []models.Product{product},
	})
}

// CreateProduct godoc
// @Summary Post a product
// @Description Inserts a product. The assigned id is not returned.
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid body"
// @Failure 500 {object} ErrorResponse "Error occurred while inserting product"
// @Router /products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.products.Create(r.Context(), req.toModel(0)); err != nil {
		h.serverError(w, r, "Error occurred while inserting product", err)
		return
	}
	respond(w, r, http.StatusCreated, MessageResponse{Message: "Product created successfully"})
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replaces all fields of a product. Succeeds even when no row has the id.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid id or body"
// @Failure 500 {object} ErrorResponse "Error occurred"
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := h.products.Update(r.Context(), req.toModel(id)); err != nil {
		h.serverError(w, r, "Error occurred while updating product.", err)
		return
	}
	respond(w, r, http.StatusOK, MessageResponse{Message: "Product updated successfully."})
}

// DeleteProduct godoc
// @Summary Delete a product
// @Description Deletes a product. Succeeds even when no row has the id.
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Error occurred"
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, "Error occurred while deleting product.", err)
		return
	}
	respond(w, r, http.StatusOK, MessageResponse{Message: "Product deleted successfully."})
}

func (h *ProductHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := productID(r)
	if err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{Message: "Invalid product id"})
		return 0, false
	}
	return id, true
}

func (h *ProductHandler) decode(w http.ResponseWriter, r *http.Request, dst *ProductRequest) bool {
	if err := readJSON(w, r, dst); err != nil {
		respond(w, r, http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Error:   &ErrorDetail{Message: err.Error()},
		})
		return false
	}
	return true
}

func (h *ProductHandler) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	hlog.FromRequest(r).Error().Err(err).Str("path", r.URL.Path).Msg(message)
	respond(w, r, http.StatusInternalServerError, ErrorResponse{Message: message, Error: errorDetail(err)})
}
