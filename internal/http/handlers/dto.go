package handlers

import "github.com/rogerio-castellano/products-api/internal/models"

// ProductRequest is the body of create and update requests. Absent fields
// are stored as NULL.
type ProductRequest struct {
	Name        *string  `json:"name" example:"Wireless Mouse"`
	Price       *float64 `json:"price" example:"19.99"`
	Discount    *float64 `json:"discount" example:"0.1"`
	ReviewCount *int64   `json:"review_count" example:"42"`
	ImgURL      *string  `json:"img_url" example:"https://example.com/mouse.png"`
	// ImageURL is the legacy spelling of img_url, used when img_url is absent.
	ImageURL *string `json:"image_url,omitempty"`
}

func (p ProductRequest) toModel(id int64) models.Product {
	img := p.ImgURL
	if img == nil {
		img = p.ImageURL
	}
	return models.Product{
		ID:          id,
		ProdName:    p.Name,
		Price:       p.Price,
		Discount:    p.Discount,
		ReviewCount: p.ReviewCount,
		ImgURL:      img,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ProductsResponse struct {
	Message string           `json:"message"`
	Data    []models.Product `json:"data"`
}

type ErrorResponse struct {
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
