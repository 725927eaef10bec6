// Package docs holds the OpenAPI 2.0 description served at /swagger in
// debug mode. Keep it in step with the routes package.
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
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register an employee account",
				"produces": [
					"application/json"
				],
				"responses": {
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Sign in with email and password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/LoginRequest"
						}
					}
				]
			}
		},
		"/auth/forgot-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Email a password reset link",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ForgotPasswordRequest"
						}
					}
				]
			}
		},
		"/auth/reset-password": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Set a new password with a reset token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ResetPasswordRequest"
						}
					}
				]
			}
		},
		"/auth/logout": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Clear the session cookie",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				}
			}
		},
		"/auth/me": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Current user profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/auth/password": {
			"put": {
				"tags": [
					"auth"
				],
				"summary": "Change own password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ChangePasswordRequest"
						}
					}
				]
			}
		},
		"/tickets": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Create a ticket",
				"produces": [
					"application/json"
				],
				"responses": {
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateTicketRequest"
						}
					}
				]
			}
		},
		"/tickets/mine": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "Tickets created by the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
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
				]
			}
		},
		"/tickets/assigned": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "Tickets assigned to the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
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
				]
			}
		},
		"/tickets/queue": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "All tickets (staff queue)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "status",
						"in": "query"
					},
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
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
					},
					{
						"type": "string",
						"name": "unassigned",
						"in": "query"
					}
				]
			}
		},
		"/tickets/lookups": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "Ticket categories and priorities",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/tickets/{id}": {
			"get": {
				"tags": [
					"tickets"
				],
				"summary": "Get a ticket",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"tickets"
				],
				"summary": "Edit a ticket (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateTicketRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"tickets"
				],
				"summary": "Delete a ticket (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tickets/{id}/self-assign": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Assign a ticket to the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/tickets/{id}/assign": {
			"post": {
				"tags": [
					"tickets"
				],
				"summary": "Assign a ticket to a staff member",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AssignTicketRequest"
						}
					}
				]
			}
		},
		"/tickets/{id}/status": {
			"patch": {
				"tags": [
					"tickets"
				],
				"summary": "Change ticket status",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateStatusRequest"
						}
					}
				]
			}
		},
		"/assets": {
			"get": {
				"tags": [
					"assets"
				],
				"summary": "List assets",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"name": "assigned",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
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
				]
			},
			"post": {
				"tags": [
					"assets"
				],
				"summary": "Create an asset",
				"produces": [
					"application/json"
				],
				"responses": {
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AssetRequest"
						}
					}
				]
			}
		},
		"/assets/mine": {
			"get": {
				"tags": [
					"assets"
				],
				"summary": "Assets held by the caller",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/assets/{id}": {
			"get": {
				"tags": [
					"assets"
				],
				"summary": "Get an asset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"assets"
				],
				"summary": "Update an asset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AssetRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"assets"
				],
				"summary": "Delete an asset (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/assets/{id}/history": {
			"get": {
				"tags": [
					"assets"
				],
				"summary": "Assignment history of an asset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/assets/{id}/assign": {
			"post": {
				"tags": [
					"assets"
				],
				"summary": "Assign an asset to a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/AssignAssetRequest"
						}
					}
				]
			}
		},
		"/assets/{id}/unassign": {
			"post": {
				"tags": [
					"assets"
				],
				"summary": "Return an asset",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/kb/categories": {
			"get": {
				"tags": [
					"knowledge"
				],
				"summary": "List knowledge base categories",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/kb/categories/{slug}": {
			"get": {
				"tags": [
					"knowledge"
				],
				"summary": "Category with its articles",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "slug",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/kb/categories/{slug}/articles/{articleSlug}": {
			"get": {
				"tags": [
					"knowledge"
				],
				"summary": "Read an article",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "slug",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "articleSlug",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/kb/articles": {
			"get": {
				"tags": [
					"knowledge"
				],
				"summary": "Recent articles or search",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query"
					}
				]
			},
			"post": {
				"tags": [
					"knowledge"
				],
				"summary": "Create an article",
				"produces": [
					"application/json"
				],
				"responses": {
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ArticleRequest"
						}
					}
				]
			}
		},
		"/kb/articles/{id}": {
			"put": {
				"tags": [
					"knowledge"
				],
				"summary": "Update an article",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ArticleRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"knowledge"
				],
				"summary": "Delete an article (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users": {
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
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "q",
						"in": "query"
					},
					{
						"type": "string",
						"name": "role",
						"in": "query"
					},
					{
						"type": "string",
						"name": "sort",
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
				]
			},
			"post": {
				"tags": [
					"users"
				],
				"summary": "Create a user (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/CreateUserRequest"
						}
					}
				]
			}
		},
		"/users/staff": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List IT staff and admins",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/users/{id}": {
			"put": {
				"tags": [
					"users"
				],
				"summary": "Update a user profile (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateUserProfileRequest"
						}
					}
				]
			}
		},
		"/users/{id}/role": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Change a user's role (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/ChangeUserRoleRequest"
						}
					}
				]
			}
		},
		"/users/{id}/active": {
			"patch": {
				"tags": [
					"users"
				],
				"summary": "Activate or deactivate a user (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/SetUserActiveRequest"
						}
					}
				]
			}
		},
		"/profile": {
			"put": {
				"tags": [
					"profile"
				],
				"summary": "Update own contact details",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/UpdateOwnProfileRequest"
						}
					}
				]
			}
		},
		"/profile/avatar": {
			"post": {
				"tags": [
					"profile"
				],
				"summary": "Upload own avatar",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "file",
						"name": "avatar",
						"in": "formData",
						"required": true
					}
				]
			}
		},
		"/notifications": {
			"get": {
				"tags": [
					"notifications"
				],
				"summary": "Latest notifications",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				],
				"parameters": [
					{
						"type": "integer",
						"name": "limit",
						"in": "query"
					}
				]
			}
		},
		"/notifications/unread-count": {
			"get": {
				"tags": [
					"notifications"
				],
				"summary": "Unread notification count",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/notifications/read-all": {
			"post": {
				"tags": [
					"notifications"
				],
				"summary": "Mark all notifications read",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/dashboard/stats": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Helpdesk statistics (admin)",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		},
		"/dashboard/me": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Personal ticket and asset summary",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/APIResponse"
						}
					}
				},
				"security": [
					{
						"Bearer": []
					}
				]
			}
		}
	},
	"definitions": {
		"APIResponse": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"data": {},
				"message": {
					"type": "string"
				},
				"error": {
					"type": "object",
					"properties": {
						"type": {
							"type": "string"
						},
						"message": {
							"type": "string"
						},
						"details": {
							"type": "string"
						}
					}
				}
			}
		},
		"RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"full_name",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"ForgotPasswordRequest": {
			"type": "object",
			"required": [
				"email"
			],
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"ResetPasswordRequest": {
			"type": "object",
			"required": [
				"token",
				"new_password"
			],
			"properties": {
				"token": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				},
				"confirm_password": {
					"type": "string"
				}
			}
		},
		"ChangePasswordRequest": {
			"type": "object",
			"required": [
				"current_password",
				"new_password"
			],
			"properties": {
				"current_password": {
					"type": "string"
				},
				"new_password": {
					"type": "string"
				}
			}
		},
		"CreateTicketRequest": {
			"type": "object",
			"required": [
				"title",
				"description",
				"category",
				"priority"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				}
			}
		},
		"UpdateTicketRequest": {
			"type": "object",
			"required": [
				"title",
				"description",
				"category",
				"priority"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"priority": {
					"type": "string"
				}
			}
		},
		"AssignTicketRequest": {
			"type": "object",
			"required": [
				"assignee_id"
			],
			"properties": {
				"assignee_id": {
					"type": "integer"
				}
			}
		},
		"UpdateStatusRequest": {
			"type": "object",
			"required": [
				"status"
			],
			"properties": {
				"status": {
					"type": "string"
				}
			}
		},
		"AssetRequest": {
			"type": "object",
			"required": [
				"asset_type"
			],
			"properties": {
				"asset_tag": {
					"type": "string"
				},
				"asset_type": {
					"type": "string"
				},
				"manufacturer": {
					"type": "string"
				},
				"model": {
					"type": "string"
				},
				"serial_number": {
					"type": "string"
				},
				"purchase_date": {
					"type": "string"
				},
				"warranty_expiry_date": {
					"type": "string"
				}
			}
		},
		"AssignAssetRequest": {
			"type": "object",
			"required": [
				"user_id"
			],
			"properties": {
				"user_id": {
					"type": "integer"
				},
				"notes": {
					"type": "string"
				}
			}
		},
		"ArticleRequest": {
			"type": "object",
			"required": [
				"title",
				"content",
				"excerpt",
				"category_id"
			],
			"properties": {
				"title": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"excerpt": {
					"type": "string"
				},
				"image_url": {
					"type": "string"
				},
				"category_id": {
					"type": "integer"
				}
			}
		},
		"CreateUserRequest": {
			"type": "object",
			"required": [
				"email",
				"password",
				"full_name",
				"role"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"job_title": {
					"type": "string"
				},
				"department": {
					"type": "string"
				}
			}
		},
		"UpdateUserProfileRequest": {
			"type": "object",
			"required": [
				"full_name"
			],
			"properties": {
				"full_name": {
					"type": "string"
				},
				"job_title": {
					"type": "string"
				},
				"department": {
					"type": "string"
				}
			}
		},
		"ChangeUserRoleRequest": {
			"type": "object",
			"required": [
				"role"
			],
			"properties": {
				"role": {
					"type": "string"
				}
			}
		},
		"SetUserActiveRequest": {
			"type": "object",
			"required": [
				"is_active"
			],
			"properties": {
				"is_active": {
					"type": "boolean"
				}
			}
		},
		"UpdateOwnProfileRequest": {
			"type": "object",
			"required": [],
			"properties": {
				"phone_number": {
					"type": "string"
				},
				"office_location": {
					"type": "string"
				},
				"receive_notifications": {
					"type": "boolean"
				}
			}
		}
	},
	"securityDefinitions": {
		"Bearer": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "DeskHub API",
	Description:      "IT helpdesk: tickets, assets, knowledge base and user administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
