// Package docs registra la documentación OpenAPI que sirve /api/docs.
// Se mantiene a mano con el mismo formato que genera swag init.
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
		"/api/adoptions": {
			"get": {
				"tags": [
					"adoptions"
				],
				"summary": "Listar adopciones",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/adoptions/{aid}": {
			"get": {
				"tags": [
					"adoptions"
				],
				"summary": "Obtener adopción por ID",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "Adoption not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID de la adopción",
						"name": "aid",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/adoptions/{uid}/{pid}": {
			"post": {
				"tags": [
					"adoptions"
				],
				"summary": "Adoptar una mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Pet adopted",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Pet is already adopted",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "user Not found / Pet not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID del usuario",
						"name": "uid",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "pid",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/users": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Listar usuarios",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/users/{uid}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Obtener usuario",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID del usuario",
						"name": "uid",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"summary": "Actualizar usuario",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "User updated",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Invalid role",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID del usuario",
						"name": "uid",
						"in": "path",
						"required": true
					},
					{
						"description": "Campos a actualizar",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"users"
				],
				"summary": "Eliminar usuario",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "User deleted",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID del usuario",
						"name": "uid",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/pets": {
			"get": {
				"tags": [
					"pets"
				],
				"summary": "Listar mascotas",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			},
			"post": {
				"tags": [
					"pets"
				],
				"summary": "Crear mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Incomplete values",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "name, specie, birthDate",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/pets/withimage": {
			"post": {
				"tags": [
					"pets"
				],
				"summary": "Crear mascota con imagen",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Incomplete values",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "string",
						"name": "name",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"name": "specie",
						"in": "formData",
						"required": true
					},
					{
						"type": "string",
						"name": "birthDate",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"name": "image",
						"in": "formData",
						"required": true
					}
				]
			}
		},
		"/api/pets/{pid}": {
			"get": {
				"tags": [
					"pets"
				],
				"summary": "Obtener mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "Pet not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "pid",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"pets"
				],
				"summary": "Actualizar mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "pet updated",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "Pet not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "pid",
						"in": "path",
						"required": true
					},
					{
						"description": "Campos a actualizar",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"pets"
				],
				"summary": "Eliminar mascota",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "pet deleted",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "Pet not found",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID de la mascota",
						"name": "pid",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/api/sessions/register": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Registrar usuario",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Incomplete values / User already exists",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "first_name, last_name, email, password",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/sessions/login": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Iniciar sesión",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Logged in",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Incorrect password",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"404": {
						"description": "User doesn't exist",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "email, password",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/api/sessions/current": {
			"get": {
				"tags": [
					"sessions"
				],
				"summary": "Usuario de la sesión actual",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"401": {
						"description": "Not authenticated",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/sessions/logout": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Cerrar sesión",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "Logged out",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/mocks/mockingpets": {
			"get": {
				"tags": [
					"mocks"
				],
				"summary": "Generar 50 mascotas mock",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/mocks/mockingusers": {
			"get": {
				"tags": [
					"mocks"
				],
				"summary": "Generar 50 usuarios mock",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				}
			}
		},
		"/api/mocks/generateData": {
			"post": {
				"tags": [
					"mocks"
				],
				"summary": "Generar e insertar datos",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					},
					"400": {
						"description": "Parámetros inválidos",
						"schema": {
							"$ref": "#/definitions/respond.Envelope"
						}
					}
				},
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "users, pets",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		}
	},
	"definitions": {
		"respond.Envelope": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"payload": {},
				"message": {
					"type": "string"
				},
				"error": {
					"type": "string"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API de Mascotas y Adopciones",
	Description:      "Documentación de la API para gestión de usuarios, mascotas y adopciones",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
