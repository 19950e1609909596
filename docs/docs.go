// Package docs registers the OpenAPI document served at /swagger.
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
        "/properties": {
            "get": {
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "List properties",
                "parameters": [
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "nextCursor of the previous page", "name": "cursor", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"},
                    {"type": "string", "description": "Accent-insensitive name filter", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Create a property",
                "parameters": [
                    {"description": "Property", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreatePropertyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Result"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/properties/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Get a property",
                "parameters": [{"type": "string", "description": "Property id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Update a property",
                "parameters": [
                    {"type": "string", "description": "Property id", "name": "id", "in": "path", "required": true},
                    {"description": "Changed fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdatePropertyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["properties"],
                "summary": "Delete a property",
                "parameters": [{"type": "string", "description": "Property id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/properties/{id}/rooms": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "List the rooms of a property",
                "parameters": [
                    {"type": "string", "description": "Property id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Page size", "name": "limit", "in": "query"},
                    {"type": "string", "description": "nextCursor of the previous page", "name": "cursor", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            }
        },
        "/properties/{id}/low-stock": {
            "get": {
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Items at or below their reorder point",
                "parameters": [{"type": "string", "description": "Property id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            }
        },
        "/rooms": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Create a room",
                "description": "Room numbers are unique within a property.",
                "parameters": [
                    {"description": "Room", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Result"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/rooms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rooms"],
                "summary": "Get a room with its room type",
                "parameters": [{"type": "string", "description": "Room id", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            }
        },
        "/reservations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reservations"],
                "summary": "Create a reservation",
                "description": "checkOut must be after checkIn; guest and room must belong to the property.",
                "parameters": [
                    {"description": "Reservation", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateReservationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Result"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/housekeeping-tasks": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["housekeeping"],
                "summary": "Create a housekeeping task",
                "parameters": [
                    {"description": "Task", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateHousekeepingTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Result"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/housekeeping-tasks/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["housekeeping"],
                "summary": "Update a housekeeping task",
                "description": "Status changes follow pending -> in-progress -> completed|skipped. Completing derives the duration.",
                "parameters": [
                    {"type": "string", "description": "Task id", "name": "id", "in": "path", "required": true},
                    {"description": "Changed fields", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateHousekeepingTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/inventory-transactions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["inventory"],
                "summary": "Record a stock movement",
                "description": "Receipts add stock, issues and waste remove it, adjustments apply a signed quantity.",
                "parameters": [
                    {"description": "Movement", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateInventoryTransactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Result"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/recipes/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["fnb"],
                "summary": "Delete a recipe and its lines",
                "parameters": [{"type": "string", "description": "Recipe id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Result"}}
                }
            }
        },
        "/maintenance/recipe-lines/repair": {
            "post": {
                "produces": ["application/json"],
                "tags": ["maintenance"],
                "summary": "Remove recipe lines whose recipe no longer exists",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Result"}}}
            }
        }
    },
    "definitions": {
        "response.Result": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "message": {"type": "string"},
                "id": {"type": "string"},
                "code": {"type": "string", "enum": ["VALIDATION_ERROR", "CONFLICT", "REFERENCE_ERROR", "NOT_FOUND", "DB_ERROR"]}
            }
        },
        "dto.CreatePropertyRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "timezone": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "dto.UpdatePropertyRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "maxLength": 200},
                "address": {"type": "string"},
                "phone": {"type": "string"},
                "email": {"type": "string"},
                "timezone": {"type": "string"},
                "isActive": {"type": "boolean"}
            }
        },
        "dto.CreateRoomRequest": {
            "type": "object",
            "required": ["propertyId", "roomTypeId", "roomNumber"],
            "properties": {
                "propertyId": {"type": "string"},
                "roomTypeId": {"type": "string"},
                "roomNumber": {"type": "string", "maxLength": 20},
                "floor": {"type": "integer"},
                "status": {"type": "string", "enum": ["available", "occupied", "out-of-order", "maintenance"]},
                "notes": {"type": "string"}
            }
        },
        "dto.CreateReservationRequest": {
            "type": "object",
            "required": ["propertyId", "guestId", "roomId", "checkIn", "checkOut", "adults"],
            "properties": {
                "propertyId": {"type": "string"},
                "guestId": {"type": "string"},
                "roomId": {"type": "string"},
                "checkIn": {"type": "integer", "description": "epoch milliseconds"},
                "checkOut": {"type": "integer", "description": "epoch milliseconds"},
                "adults": {"type": "integer", "minimum": 1},
                "children": {"type": "integer", "minimum": 0},
                "status": {"type": "string", "enum": ["pending", "confirmed", "checked-in", "checked-out", "cancelled", "no-show"]},
                "totalAmount": {"type": "number", "minimum": 0},
                "notes": {"type": "string"}
            }
        },
        "dto.CreateHousekeepingTaskRequest": {
            "type": "object",
            "required": ["propertyId", "roomId", "taskType"],
            "properties": {
                "propertyId": {"type": "string"},
                "roomId": {"type": "string"},
                "assignedStaffId": {"type": "string"},
                "assignedBy": {"type": "string"},
                "taskType": {"type": "string", "enum": ["cleaning", "inspection", "maintenance", "turndown", "deep-clean"]},
                "status": {"type": "string", "enum": ["pending", "in-progress", "completed", "skipped"]},
                "priority": {"type": "string", "enum": ["low", "normal", "high", "urgent"]},
                "scheduledAt": {"type": "integer"},
                "startedAt": {"type": "integer"},
                "completedAt": {"type": "integer"},
                "estimatedDuration": {"type": "integer", "description": "minutes"},
                "actualDuration": {"type": "integer", "description": "minutes"},
                "notes": {"type": "string"},
                "checklist": {"type": "object"}
            }
        },
        "dto.UpdateHousekeepingTaskRequest": {
            "type": "object",
            "properties": {
                "roomId": {"type": "string"},
                "assignedStaffId": {"type": "string"},
                "assignedBy": {"type": "string"},
                "taskType": {"type": "string", "enum": ["cleaning", "inspection", "maintenance", "turndown", "deep-clean"]},
                "status": {"type": "string", "enum": ["pending", "in-progress", "completed", "skipped"]},
                "priority": {"type": "string", "enum": ["low", "normal", "high", "urgent"]},
                "scheduledAt": {"type": "integer"},
                "startedAt": {"type": "integer"},
                "completedAt": {"type": "integer"},
                "estimatedDuration": {"type": "integer"},
                "actualDuration": {"type": "integer"},
                "notes": {"type": "string"},
                "checklist": {"type": "object"}
            }
        },
        "dto.CreateInventoryTransactionRequest": {
            "type": "object",
            "required": ["propertyId", "inventoryItemId", "type", "quantity"],
            "properties": {
                "propertyId": {"type": "string"},
                "inventoryItemId": {"type": "string"},
                "type": {"type": "string", "enum": ["receipt", "issue", "adjustment", "waste"]},
                "quantity": {"type": "number"},
                "unitCost": {"type": "number"},
                "reference": {"type": "string"},
                "notes": {"type": "string"}
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
	Title:            "Back-office API",
	Description:      "Property back-office records: rooms, guests, housekeeping, inventory, F&B and access.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
