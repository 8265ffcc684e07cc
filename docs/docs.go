// Package docs registers the OpenAPI document served at /swagger/*. Keep it
// in step with the handler annotations.
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
        "/auth/admin/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Admin login",
                "parameters": [
                    {"description": "Admin credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/auth/restaurant/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Restaurant login",
                "parameters": [
                    {"description": "Restaurant credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/session": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Check session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Category"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Create a category",
                "parameters": [
                    {"description": "Category name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.categoryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/categories/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Get a category",
                "parameters": [{"type": "string", "description": "Category id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Category"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "Rename a category",
                "parameters": [
                    {"type": "string", "description": "Category id", "name": "id", "in": "path", "required": true},
                    {"description": "New name", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.categoryRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Category"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["categories"],
                "summary": "Delete a category",
                "parameters": [{"type": "string", "description": "Category id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "List restaurants",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Restaurant"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Register a restaurant",
                "parameters": [
                    {"description": "Restaurant details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRestaurantRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.registerResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/status/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Set restaurant status",
                "parameters": [
                    {"type": "string", "description": "Restaurant id", "name": "id", "in": "path", "required": true},
                    {"description": "active or inactive", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.statusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/{key}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Get a restaurant",
                "parameters": [{"type": "string", "description": "Restaurant id or username", "name": "key", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/{id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Delete a restaurant",
                "parameters": [{"type": "string", "description": "Restaurant id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/{username}/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["restaurants"],
                "summary": "Categories on a restaurant menu",
                "parameters": [{"type": "string", "description": "Restaurant username", "name": "username", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/{username}/menu": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Add a menu item",
                "parameters": [
                    {"type": "string", "description": "Restaurant username or id", "name": "username", "in": "path", "required": true},
                    {"description": "Menu item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.menuItemRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/restaurants/{id}/menu/{itemId}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Update a menu item",
                "parameters": [
                    {"type": "string", "description": "Restaurant id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Menu item id", "name": "itemId", "in": "path", "required": true},
                    {"description": "Menu item", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.menuItemRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["menu"],
                "summary": "Remove a menu item",
                "parameters": [
                    {"type": "string", "description": "Restaurant id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Menu item id", "name": "itemId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Restaurant"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/apierr.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/images/{id}": {
            "get": {
                "produces": ["image/png", "image/jpeg", "image/webp", "image/gif"],
                "tags": ["images"],
                "summary": "Download a menu image",
                "parameters": [{"type": "string", "description": "Image id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierr.Response"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        }
    },
    "definitions": {
        "apierr.Response": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "error": {"type": "string"}
            }
        },
        "domain.Category": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"}
            }
        },
        "domain.Principal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "restaurant"]}
            }
        },
        "domain.Size": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "domain.MenuItem": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "sizes": {"type": "array", "items": {"$ref": "#/definitions/domain.Size"}}
            }
        },
        "domain.Restaurant": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "menu": {"type": "array", "items": {"$ref": "#/definitions/domain.MenuItem"}},
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "inactive"]},
                "updated_at": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handler.categoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.menuItemRequest": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "name": {"type": "string"},
                "sizes": {"type": "array", "items": {"$ref": "#/definitions/handler.sizeRequest"}}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.registerResponse": {
            "type": "object",
            "properties": {
                "restaurant": {"$ref": "#/definitions/domain.Restaurant"},
                "token": {"type": "string"}
            }
        },
        "handler.registerRestaurantRequest": {
            "type": "object",
            "required": ["email", "location", "name", "password"],
            "properties": {
                "email": {"type": "string"},
                "location": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "principal": {"$ref": "#/definitions/domain.Principal"}
            }
        },
        "handler.sizeRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "number"}
            }
        },
        "handler.statusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {
                "status": {"type": "string"}
            }
        },
        "handler.tokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Raw token or \"Bearer <token>\".",
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
	Title:            "Menu Server API",
	Description:      "Restaurants, categories and menus with admin and restaurant-owner authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
