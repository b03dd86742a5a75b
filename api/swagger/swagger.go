package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "SMA ADP Dashboard",
        "description": "School and school-admin management dashboard",
        "version": "0.1.0"
    },
    "basePath": "/dashboard",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Sign in and session"},
        {"name": "Dashboard", "description": "Overview and data reset"},
        {"name": "Entities", "description": "Schools and school admins"},
        {"name": "Editor", "description": "Create/edit dialog session"}
    ],
    "parameters": {
        "entity": {"name": "entity", "in": "path", "required": true, "type": "string", "enum": ["schools", "admins"]},
        "id": {"name": "id", "in": "path", "required": true, "type": "string"},
        "search": {"name": "search", "in": "query", "type": "string", "description": "Case-insensitive substring"}
    },
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign in",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid form", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Sign out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/auth/session": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Not signed in", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Totals and recent records",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/reset": {
            "post": {
                "tags": ["Dashboard"],
                "summary": "Restore the seed dataset",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/{entity}": {
            "get": {
                "tags": ["Entities"],
                "summary": "List records matching a search term",
                "parameters": [{"$ref": "#/parameters/entity"}, {"$ref": "#/parameters/search"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/{entity}/export": {
            "get": {
                "tags": ["Entities"],
                "summary": "Export the list view",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"$ref": "#/parameters/entity"},
                    {"$ref": "#/parameters/search"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "File"}}
            }
        },
        "/{entity}/{id}": {
            "get": {
                "tags": ["Entities"],
                "summary": "Get one record",
                "parameters": [{"$ref": "#/parameters/entity"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Entities"],
                "summary": "Delete a record",
                "parameters": [{"$ref": "#/parameters/entity"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/{entity}/editor": {
            "get": {
                "tags": ["Editor"],
                "summary": "Current edit session",
                "parameters": [{"$ref": "#/parameters/entity"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Editor"],
                "summary": "Start a create session",
                "parameters": [{"$ref": "#/parameters/entity"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "patch": {
                "tags": ["Editor"],
                "summary": "Change draft fields",
                "parameters": [
                    {"$ref": "#/parameters/entity"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateDraftRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "No open session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Editor"],
                "summary": "Cancel the edit session",
                "parameters": [{"$ref": "#/parameters/entity"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/{entity}/{id}/editor": {
            "post": {
                "tags": ["Editor"],
                "summary": "Start an edit session for a record",
                "parameters": [{"$ref": "#/parameters/entity"}, {"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/{entity}/editor/submit": {
            "post": {
                "tags": ["Editor"],
                "summary": "Validate and apply the draft",
                "parameters": [{"$ref": "#/parameters/entity"}],
                "responses": {
                    "200": {"description": "Updated", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid draft", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Edited record is gone", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "UpdateDraftRequest": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "value": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "Notification": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "variant": {"type": "string", "enum": ["default", "destructive"]}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "notification": {"$ref": "#/definitions/Notification"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
