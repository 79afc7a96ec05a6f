// Package docs holds the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/app/main.go
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/profiles": {
            "post": {
                "tags": ["profiles"],
                "summary": "Create profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.CreateProfileRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{accountID}": {
            "get": {
                "tags": ["profiles"],
                "summary": "Get profile",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "accountID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{accountID}/battles": {
            "post": {
                "tags": ["profiles"],
                "summary": "Record battle result",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "accountID", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.RecordBattleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/profiles/{accountID}/crates": {
            "get": {
                "tags": ["rewards"],
                "summary": "List crates",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "accountID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/profiles/{accountID}/crates/{index}/claim": {
            "post": {
                "tags": ["rewards"],
                "summary": "Claim crate",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "name": "index", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}
            }
        },
        "/profiles/{accountID}/nfts": {
            "get": {
                "tags": ["rewards"],
                "summary": "List owned heroes",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "accountID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "post": {
                "tags": ["rewards"],
                "summary": "Mint hero",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "accountID", "in": "path", "required": true},
                    {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handler.MintRequest"}}
                ],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/profiles/{accountID}/events": {
            "get": {
                "tags": ["profiles"],
                "summary": "Event history",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "accountID", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/nfts/{tokenID}": {
            "get": {
                "tags": ["rewards"],
                "summary": "Get hero stats",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "tokenID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/leaderboard": {
            "get": {
                "tags": ["league"],
                "summary": "Leaderboard",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/league": {
            "get": {
                "tags": ["league"],
                "summary": "League table",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/stream": {
            "get": {
                "tags": ["league"],
                "summary": "Live progression events (text/event-stream)",
                "produces": ["text/event-stream"],
                "parameters": [
                    {"type": "string", "name": "types", "in": "query", "description": "Comma-separated event types"},
                    {"type": "string", "name": "account", "in": "query", "description": "Only events for this account"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/league/distribution": {
            "get": {
                "tags": ["admin"],
                "summary": "League distribution",
                "parameters": [{"type": "string", "name": "X-Account-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/league/snapshot": {
            "post": {
                "tags": ["admin"],
                "summary": "Record league snapshot",
                "parameters": [{"type": "string", "name": "X-Account-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/admin/cache/stats": {
            "get": {
                "tags": ["admin"],
                "summary": "Profile cache stats",
                "parameters": [{"type": "string", "name": "X-Account-ID", "in": "header", "required": true}],
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        }
    },
    "definitions": {
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.CreateProfileRequest": {
            "type": "object",
            "required": ["account_id"],
            "properties": {"account_id": {"type": "string", "maxLength": 64}, "name": {"type": "string", "maxLength": 32}}
        },
        "handler.RecordBattleRequest": {
            "type": "object",
            "required": ["is_win"],
            "properties": {"is_win": {"type": "boolean"}}
        },
        "handler.MintRequest": {
            "type": "object",
            "properties": {"level": {"type": "integer", "minimum": 1, "maximum": 100}}
        },
        "handler.ProfileResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "profile": {"$ref": "#/definitions/domain.UserProfile"}}
        },
        "domain.UserProfile": {
            "type": "object",
            "properties": {
                "account_id": {"type": "string"},
                "name": {"type": "string"},
                "experience": {"type": "integer"},
                "level": {"type": "integer"},
                "trophies": {"type": "integer"},
                "battles_won": {"type": "integer"},
                "nfts_owned": {"type": "integer"},
                "league": {"type": "integer"},
                "battle_multiplier": {"type": "integer"},
                "exists": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "HeroArena Progression API",
	Description:      "Player progression, league tiers, crates and hero tokens.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
