// Package docs registers the OpenAPI 3.0 document of the Products API with
// swag so that http-swagger can serve it under /api-docs.
//
// The document is maintained by hand: swag's generator only emits Swagger
// 2.0, while the API is published as OpenAPI 3.0. Keep it in sync with the
// godoc annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "openapi": "3.0.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "servers": [
        {
            "url": "http://{{.Host}}{{.BasePath}}",
            "description": "Development server"
        }
    ],
    "tags": [
        {"name": "products"},
        {"name": "health"}
    ],
    "paths": {
        "/products": {
            "get": {
                "tags": ["products"],
                "summary": "Get all products",
                "description": "Get all products",
                "responses": {
                    "200": {
                        "description": "A list of products",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductsResponse"}}}
                    },
                    "404": {
                        "description": "The table is empty",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Some error happened",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            },
            "post": {
                "tags": ["products"],
                "summary": "Post a product",
                "description": "Inserts a product. The assigned id is not returned.",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductRequest"}}}
                },
                "responses": {
                    "201": {
                        "description": "Product created",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/MessageResponse"}}}
                    },
                    "400": {
                        "description": "Invalid body",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Error occurred while inserting product",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/products/{id}": {
            "parameters": [
                {
                    "in": "path",
                    "name": "id",
                    "required": true,
                    "description": "Numeric ID of the product",
                    "schema": {"type": "integer", "format": "int64"}
                }
            ],
            "get": {
                "tags": ["products"],
                "summary": "Get a product by id",
                "description": "Get a product by id",
                "responses": {
                    "200": {
                        "description": "A single-element list with the product",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductsResponse"}}}
                    },
                    "400": {
                        "description": "Invalid id",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "404": {
                        "description": "The product was not found",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Some error happened",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            },
            "put": {
                "tags": ["products"],
                "summary": "Update a product",
                "description": "Replaces all fields of a product. Succeeds even when no row has the id.",
                "requestBody": {
                    "required": true,
                    "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductRequest"}}}
                },
                "responses": {
                    "200": {
                        "description": "Product updated",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/MessageResponse"}}}
                    },
                    "400": {
                        "description": "Invalid id or body",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Error occurred",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Delete a product",
                "description": "Deletes a product. Succeeds even when no row has the id.",
                "responses": {
                    "200": {
                        "description": "Product deleted",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/MessageResponse"}}}
                    },
                    "400": {
                        "description": "Invalid id",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    },
                    "500": {
                        "description": "Error occurred",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Database health check",
                "responses": {
                    "200": {
                        "description": "Database reachable",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthResponse"}}}
                    },
                    "503": {
                        "description": "Database unreachable",
                        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthResponse"}}}
                    }
                }
            }
        }
    },
    "components": {
        "schemas": {
            "Product": {
                "type": "object",
                "properties": {
                    "id": {"type": "integer", "format": "int64"},
                    "ProdName": {"type": "string", "nullable": true},
                    "price": {"type": "number", "nullable": true},
                    "discount": {"type": "number", "nullable": true},
                    "review_count": {"type": "integer", "format": "int64", "nullable": true},
                    "img_url": {"type": "string", "nullable": true}
                }
            },
            "ProductRequest": {
                "type": "object",
                "properties": {
                    "name": {"type": "string", "example": "Wireless Mouse"},
                    "price": {"type": "number", "example": 19.99},
                    "discount": {"type": "number", "example": 0.1},
                    "review_count": {"type": "integer", "format": "int64", "example": 42},
                    "img_url": {"type": "string", "example": "https://example.com/mouse.png"},
                    "image_url": {"type": "string", "deprecated": true, "description": "Legacy spelling of img_url, used when img_url is absent"}
                }
            },
            "ProductsResponse": {
                "type": "object",
                "properties": {
                    "message": {"type": "string", "example": "Product retrieved successfully."},
                    "data": {"type": "array", "items": {"$ref": "#/components/schemas/Product"}}
                }
            },
            "MessageResponse": {
                "type": "object",
                "properties": {
                    "message": {"type": "string"}
                }
            },
            "ErrorDetail": {
                "type": "object",
                "properties": {
                    "code": {"type": "string"},
                    "errno": {"type": "integer"},
                    "sqlState": {"type": "string"},
                    "sqlMessage": {"type": "string"},
                    "message": {"type": "string"}
                }
            },
            "ErrorResponse": {
                "type": "object",
                "properties": {
                    "message": {"type": "string"},
                    "error": {"$ref": "#/components/schemas/ErrorDetail"}
                }
            },
            "HealthResponse": {
                "type": "object",
                "properties": {
                    "status": {"type": "string", "example": "ok"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3000",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "Products API",
	Description:      "CRUD API over the Products table.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
