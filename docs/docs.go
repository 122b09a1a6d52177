// Package docs registers the OpenAPI 2.0 document served at /swagger.
// It follows the layout swag init produces and is kept in sync by hand.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Health check of database, redis and graph store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/v1/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a supplier account",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.RegisterRequest"
					}
				]
			}
		},
		"/v1/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Exchange credentials for tokens",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.LoginRequest"
					}
				]
			}
		},
		"/v1/auth/refresh": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Exchange a refresh token for new tokens",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.RefreshRequest"
					}
				]
			}
		},
		"/v1/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user with profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a user (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.CreateUserRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"get": {
				"tags": [
					"users"
				],
				"summary": "List users (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "role",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "include_inactive",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users/suppliers": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a supplier (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.CreateUserRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users/{id}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Get a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"summary": "Update a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.UpdateUserRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Deactivate a user (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users/{id}/reactivate": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Reactivate a user (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/users/{id}/assign-store": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Assign a supplier to a store (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.AssignStoreRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "List stores",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"name": "location",
						"in": "query"
					},
					{
						"type": "string",
						"name": "ordering",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "include_deleted",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"stores"
				],
				"summary": "Create a store (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.CreateStoreRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/mine": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "Store assigned to the calling supplier",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/{id}": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "Get a store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"name": "include_deleted",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"stores"
				],
				"summary": "Update a store (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.UpdateStoreRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"stores"
				],
				"summary": "Soft delete a store (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/{id}/restore": {
			"post": {
				"tags": [
					"stores"
				],
				"summary": "Restore a soft-deleted store (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/{id}/suppliers": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "Suppliers assigned to a store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/{id}/items": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "Active items of a store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/stores/{id}/analytics": {
			"get": {
				"tags": [
					"stores"
				],
				"summary": "Graph analytics for a store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/item-types": {
			"get": {
				"tags": [
					"item-types"
				],
				"summary": "List item types",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "search",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"item-types"
				],
				"summary": "Create an item type (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.CreateItemTypeRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/item-types/{id}": {
			"get": {
				"tags": [
					"item-types"
				],
				"summary": "Get an item type",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"item-types"
				],
				"summary": "Update an item type (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.UpdateItemTypeRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"item-types"
				],
				"summary": "Delete an unreferenced item type (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/item-types/{id}/items": {
			"get": {
				"tags": [
					"item-types"
				],
				"summary": "Active items of a type",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "List items",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "store_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "item_type_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "location",
						"in": "query"
					},
					{
						"type": "string",
						"name": "search",
						"in": "query"
					},
					{
						"type": "string",
						"name": "ordering",
						"in": "query"
					},
					{
						"type": "boolean",
						"name": "include_deleted",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"items"
				],
				"summary": "Create an item",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.CreateItemRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/mine": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "Items of the calling supplier's store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/low-stock": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "Items at or below their reorder level",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/summary": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "Inventory summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/{id}": {
			"get": {
				"tags": [
					"items"
				],
				"summary": "Get an item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"name": "include_deleted",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"items"
				],
				"summary": "Update an item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.UpdateItemRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"items"
				],
				"summary": "Soft delete an item",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/{id}/restore": {
			"post": {
				"tags": [
					"items"
				],
				"summary": "Restore a soft-deleted item",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/items/{id}/stock": {
			"patch": {
				"tags": [
					"items"
				],
				"summary": "Set quantity in stock",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.SetStockRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "List income records",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "store_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "start_date",
						"in": "query"
					},
					{
						"type": "string",
						"name": "end_date",
						"in": "query"
					},
					{
						"type": "string",
						"name": "recorded_by",
						"in": "query"
					},
					{
						"type": "string",
						"name": "ordering",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"income"
				],
				"summary": "Record daily income",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.RecordIncomeRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/analytics": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Aggregate income over a range",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "store_id",
						"in": "query"
					},
					{
						"type": "string",
						"name": "start_date",
						"in": "query"
					},
					{
						"type": "string",
						"name": "end_date",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/monthly-report": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Monthly income report",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "year",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "month",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/monthly-report/pdf": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Monthly income report as PDF",
				"produces": [
					"application/pdf"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "year",
						"in": "query"
					},
					{
						"type": "integer",
						"name": "month",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/weekly-trends": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Weekly income totals",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "integer",
						"name": "weeks_back",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "alias of weeks_back",
						"name": "weeks",
						"in": "query"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/my-summary": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Last 30 days for the calling supplier's store",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/v1/income/{id}": {
			"get": {
				"tags": [
					"income"
				],
				"summary": "Get an income record",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"put": {
				"tags": [
					"income"
				],
				"summary": "Update an income record (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						},
						"description": "dto.UpdateIncomeRequest"
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"delete": {
				"tags": [
					"income"
				],
				"summary": "Delete an income record (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"401": {
						"description": "unauthorized",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"403": {
						"description": "forbidden",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"404": {
						"description": "not found",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"409": {
						"description": "duplicate or referential conflict",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					},
					"422": {
						"description": "validation error",
						"schema": {
							"$ref": "#/definitions/apierror.APIError"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"format": "uuid",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"apierror.APIError": {
			"type": "object",
			"properties": {
				"detail": {
					"type": "string"
				},
				"kind": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"field": {
					"type": "string"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "groceryhub API",
	Description:      "Multi-store grocery inventory and income ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
