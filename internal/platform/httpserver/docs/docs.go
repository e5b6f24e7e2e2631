// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/signup": {
            "post": {
                "summary": "Register an account and receive a bearer token",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/users/login": {
            "post": {
                "summary": "Exchange credentials for a bearer token",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/users/demo": {
            "post": {
                "summary": "Log in as the shared demo account",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users": {
            "get": {
                "summary": "List accounts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/users/{user_id}": {
            "get": {
                "summary": "Fetch one account",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "summary": "Update an account (admin only)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "summary": "Delete an account and its content (admin only)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/users/becomecreator/{user_id}": {
            "put": {
                "summary": "Promote an account to creator and reissue its token",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}}
            }
        },
        "/posts": {
            "get": {
                "summary": "List posts with pagination",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "summary": "Publish a post",
                "responses": {"201": {"description": "Created"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
            }
        },
        "/posts/{post_id}": {
            "get": {
                "summary": "Fetch one post with author and category",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "summary": "Update a post (author or admin)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "summary": "Delete a post (author or admin)",
                "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}
            }
        },
        "/posts/{post_id}/like": {
            "post": {
                "summary": "Increment a post's like counter",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/posts/{post_id}/share": {
            "post": {
                "summary": "Increment a post's share counter",
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/categories": {
            "get": {
                "summary": "List categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a category",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/categories/{category_id}": {
            "get": {
                "summary": "Fetch one category",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "summary": "Rename a category",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            },
            "delete": {
                "summary": "Delete an unused category",
                "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}
            }
        },
        "/comments": {
            "get": {
                "summary": "List comments, optionally filtered by postId",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a comment",
                "responses": {"201": {"description": "Created"}, "404": {"description": "Not Found"}}
            }
        },
        "/comments/{comment_id}": {
            "get": {
                "summary": "Fetch one comment",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "summary": "Update a comment",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "summary": "Delete a comment",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Inkwell API",
	Description:      "Blogging platform backend: accounts, posts, categories, comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
