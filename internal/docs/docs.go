// Package docs holds the OpenAPI description served under /docs.
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
                "tags": ["greeting"],
                "summary": "Root greeting",
                "responses": {
                    "200": {"description": "Version3 Hi Hello: 2024-01-01T00:00:00", "schema": {"type": "string"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/info": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["greeting"],
                "summary": "Service info",
                "responses": {
                    "200": {"description": "Version3 DEVOPS INFO: 2024-01-01T00:00:00", "schema": {"type": "string"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/about": {
            "get": {
                "produces": ["text/plain"],
                "tags": ["greeting"],
                "summary": "About",
                "responses": {
                    "200": {"description": "Version3 about: 2024-01-01T00:00:00", "schema": {"type": "string"}},
                    "429": {"description": "Rate limit exceeded", "schema": {"$ref": "#/definitions/error"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "status": {"type": "string"},
                                "timestamp": {"type": "string"}
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "3",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Greeter API",
	Description:      "Plain-text greetings stamped with the server's local time.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
