// Package docs holds the OpenAPI document served by swaggerkit
// regenerate with swag init when handler annotations change
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
    "openapi": "3.0.3",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "paths": {
        "/validate": {
            "post": {
                "tags": ["validate"],
                "summary": "Validate an email address",
                "description": "Runs the email check, the domain authenticity check and the domain reputation check concurrently and merges them into one body. Domain fields are null when their check is unavailable.",
                "requestBody": {
                    "required": true,
                    "content": {
                        "application/json": {
                            "schema": {"$ref": "#/components/schemas/ValidationRequest"}
                        }
                    }
                },
                "responses": {
                    "200": {
                        "description": "OK",
                        "content": {
                            "application/json": {
                                "schema": {"$ref": "#/components/schemas/CombinedValidationResult"}
                            }
                        }
                    }
                }
            }
        },
        "/meta/health": {
            "get": {
                "tags": ["meta"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/ready": {
            "get": {
                "tags": ["meta"],
                "summary": "Readiness probe with upstream configuration",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/version": {
            "get": {
                "tags": ["meta"],
                "summary": "Build version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/service": {
            "get": {
                "tags": ["meta"],
                "summary": "Service name, uptime and mounted modules",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "components": {
        "schemas": {
            "ValidationRequest": {
                "type": "object",
                "required": ["email"],
                "properties": {
                    "email": {"type": "string", "example": "someone@example.com"}
                }
            },
            "AuthenticityResult": {
                "type": "object",
                "nullable": true,
                "properties": {
                    "whois": {"type": "object", "nullable": true},
                    "score": {"type": "number", "nullable": true},
                    "dimensions": {"type": "object", "nullable": true}
                }
            },
            "ReputationResult": {
                "type": "object",
                "nullable": true,
                "properties": {
                    "listedCount": {"type": "integer"},
                    "totalChecked": {"type": "integer"},
                    "cleanCount": {"type": "integer"},
                    "errorCount": {"type": "integer"},
                    "isClean": {"type": "boolean"}
                }
            },
            "CombinedValidationResult": {
                "type": "object",
                "additionalProperties": true,
                "properties": {
                    "request_id": {"type": "string"},
                    "email": {"type": "string"},
                    "is_reachable": {"type": "string", "example": "Safe"},
                    "is_valid_syntax": {"type": "boolean"},
                    "mx_exists": {"type": "boolean"},
                    "is_disposable": {"type": "boolean"},
                    "is_role_account": {"type": "boolean"},
                    "is_deliverable": {"type": "boolean"},
                    "classification": {"type": "string"},
                    "processing_time_ms": {"type": "number"},
                    "domain_authenticity": {"$ref": "#/components/schemas/AuthenticityResult"},
                    "domain_reputation": {"$ref": "#/components/schemas/ReputationResult"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Title:            "mailvet API",
	Description:      "Email validation aggregator",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
