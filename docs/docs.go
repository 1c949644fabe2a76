// Package docs registra el documento OpenAPI servido en /swagger. Se mantiene a mano junto con las anotaciones de los handlers.
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
        "/api/categories": {
            "get": {
                "description": "Opciones del control de filtros. La selección inicial es ` + "`" + `reset` + "`" + `.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Listar categorías de rescate",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/outcomes.CategoryOption"}}
                    }
                }
            }
        },
        "/api/dashboard": {
            "get": {
                "description": "Útil cuando no hay sort/filtro client-side: las tres derivaciones se calculan sobre el resultado de la query.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Tabla, gráfico y mapa en una llamada",
                "parameters": [
                    {"type": "string", "description": "water | mountain | disaster | reset", "name": "filter", "in": "query"},
                    {"type": "integer", "description": "fila seleccionada (default 0)", "name": "row", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.dashboardResponse"}},
                    "400": {"description": "row must be an integer", "schema": {"type": "string"}}
                }
            }
        },
        "/api/records": {
            "get": {
                "description": "Construye la query de la categoría y devuelve todas las filas. Categorías desconocidas equivalen a ` + "`" + `reset` + "`" + `. Un error del store se ve como tabla vacía.",
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Refrescar tabla",
                "parameters": [
                    {"type": "string", "description": "water | mountain | disaster | reset", "name": "filter", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Table"}}
                }
            }
        },
        "/api/sessions/{sessionID}": {
            "get": {
                "description": "Crea la sesión con filtro ` + "`" + `reset` + "`" + ` si no existe.",
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Estado de la sesión",
                "parameters": [
                    {"type": "string", "description": "ID de sesión (generado por el cliente)", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.sessionResponse"}}
                }
            },
            "delete": {
                "tags": ["sessions"],
                "summary": "Cerrar sesión",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "session not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/sessions/{sessionID}/events": {
            "post": {
                "description": "` + "`" + `filter_changed` + "`" + ` refresca tabla+gráfico+mapa; ` + "`" + `view_changed` + "`" + ` recalcula gráfico+mapa sobre las filas visibles; ` + "`" + `row_selected` + "`" + ` recalcula el mapa. Si llegó un evento más nuevo, ` + "`" + `committed=false` + "`" + ` y se devuelve el estado vigente.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sessions"],
                "summary": "Despachar evento de UI",
                "parameters": [
                    {"type": "string", "description": "ID de sesión", "name": "sessionID", "in": "path", "required": true},
                    {"description": "Evento", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.Event"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.sessionResponse"}},
                    "400": {"description": "invalid json / unknown event type / invalid input", "schema": {"type": "string"}}
                }
            }
        },
        "/api/views/chart": {
            "post": {
                "description": "Top 10 breeds de las filas visibles, desc por count. Sin datos devuelve ` + "`" + `placeholder` + "`" + `.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Histograma de breeds",
                "parameters": [
                    {"description": "Filas visibles", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.viewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.Chart"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        },
        "/api/views/map": {
            "post": {
                "description": "Fila seleccionada (default 0, fuera de rango se ajusta). Coordenadas por defecto 30.75,-97.48; breed/name por defecto \"Unknown\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Marcador del mapa",
                "parameters": [
                    {"description": "Filas visibles + fila seleccionada", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dashboard.viewRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dashboard.MapView"}},
                    "400": {"description": "invalid json", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "dashboard.BreedCount": {
            "type": "object",
            "properties": {"breed": {"type": "string"}, "count": {"type": "integer"}}
        },
        "dashboard.Chart": {
            "type": "object",
            "properties": {
                "bars": {"type": "array", "items": {"$ref": "#/definitions/dashboard.BreedCount"}},
                "placeholder": {"type": "string"},
                "title": {"type": "string"},
                "x_axis": {"type": "string"},
                "y_axis": {"type": "string"}
            }
        },
        "dashboard.Event": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": true}},
                "selected_row": {"type": "integer"},
                "type": {"type": "string", "enum": ["filter_changed", "view_changed", "row_selected"]}
            }
        },
        "dashboard.MapView": {
            "type": "object",
            "properties": {
                "marker": {"$ref": "#/definitions/dashboard.Marker"},
                "placeholder": {"type": "string"},
                "row": {"type": "integer"},
                "zoom": {"type": "integer"}
            }
        },
        "dashboard.Marker": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "lat": {"type": "number"},
                "long": {"type": "number"},
                "name": {"type": "string"}
            }
        },
        "dashboard.Table": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["water", "mountain", "disaster", "reset"]},
                "columns": {"type": "array", "items": {"type": "string"}},
                "page_size": {"type": "integer"},
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": true}}
            }
        },
        "dashboard.dashboardResponse": {
            "type": "object",
            "properties": {
                "chart": {"$ref": "#/definitions/dashboard.Chart"},
                "map": {"$ref": "#/definitions/dashboard.MapView"},
                "table": {"$ref": "#/definitions/dashboard.Table"}
            }
        },
        "dashboard.sessionResponse": {
            "type": "object",
            "properties": {
                "category": {"type": "string", "enum": ["water", "mountain", "disaster", "reset"]},
                "chart": {"$ref": "#/definitions/dashboard.Chart"},
                "committed": {"type": "boolean"},
                "generation": {"type": "integer"},
                "table_generation": {"type": "integer"},
                "map": {"$ref": "#/definitions/dashboard.MapView"},
                "selected_row": {"type": "integer"},
                "table": {"$ref": "#/definitions/dashboard.Table"}
            }
        },
        "dashboard.viewRequest": {
            "type": "object",
            "properties": {
                "rows": {"type": "array", "items": {"type": "object", "additionalProperties": true}},
                "selected_row": {"type": "integer"}
            }
        },
        "outcomes.CategoryOption": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string", "enum": ["water", "mountain", "disaster", "reset"]}
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
	Title:            "Animal Shelter Dashboard API",
	Description:      "Dashboard de outcomes del refugio: filtros por tipo de rescate, tabla, top breeds y mapa.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
