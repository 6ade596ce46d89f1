// Package docs registers the OpenAPI description served at /swagger/*any.
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
        "/": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["system"],
                "summary": "Greeting",
                "responses": {
                    "200": {"description": "Hello, world!", "schema": {"type": "string"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/todo": {
            "get": {
                "produces": ["application/json"],
                "tags": ["todo"],
                "summary": "List todo items",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/todo_api.TodoList"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}}
                }
            },
            "post": {
                "description": "The body is a bare JSON string, e.g. \"Buy milk\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["todo"],
                "summary": "Create a todo item",
                "parameters": [
                    {"description": "Item text", "name": "body", "in": "body", "required": true, "schema": {"type": "string"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/todo_api.StatusMessage"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}}
                }
            }
        },
        "/todo/ws": {
            "get": {
                "description": "Upgrades to a WebSocket and pushes the full item list now and every interval.",
                "tags": ["todo"],
                "summary": "Stream todo items",
                "parameters": [
                    {"type": "string", "example": "2s", "description": "Go duration, up to 10s", "name": "interval", "in": "query"},
                    {"type": "integer", "description": "Milliseconds, up to 10000", "name": "interval_ms", "in": "query"}
                ],
                "responses": {}
            }
        },
        "/todo/{id}": {
            "delete": {
                "description": "A missing id is not an error: the response reports 0 rows.",
                "produces": ["application/json"],
                "tags": ["todo"],
                "summary": "Delete a todo item",
                "parameters": [
                    {"type": "integer", "description": "Item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/todo_api.StatusMessage"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/todo_api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.TodoItem": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "item": {"type": "string"}
            }
        },
        "todo_api.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "todo_api.StatusMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "todo_api.TodoList": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.TodoItem"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Todo API",
	Description:      "Create, list and delete todo items stored in an embedded SQLite file.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
