package models

// Product represents a row of the Products table.
// JSON keys follow the column names; nullable columns are pointers so that
// NULL is rendered as null.
type Product struct {
	ID          int64    `json:"id"`
	ProdName    *string  `json:"ProdName"`
	Price       *float64 `json:"price"`
	Discount    *float64 `json:"discount"`
	ReviewCount *int64   `json:"review_count"`
	ImgURL      *string  `json:"img_url"`
}
