// Package docs registers the OpenAPI spec served at /swagger/doc.json.
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
        "/api/topics": {
            "get": {
                "tags": ["topics"],
                "summary": "List topics",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["topics"],
                "summary": "Create a topic",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing slug or description"},
                    "403": {"description": "Topic already exists"}
                }
            }
        },
        "/api/articles": {
            "get": {
                "tags": ["articles"],
                "summary": "List articles",
                "parameters": [
                    {"name": "topic", "in": "query", "type": "string"},
                    {"name": "sort_by", "in": "query", "type": "string"},
                    {"name": "order", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid sort_by or order"},
                    "404": {"description": "Topic not found"}
                }
            },
            "post": {
                "tags": ["articles"],
                "summary": "Create an article",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing required properties in body"},
                    "404": {"description": "Author or topic not found"}
                }
            }
        },
        "/api/articles/{article_id}": {
            "get": {
                "tags": ["articles"],
                "summary": "Get an article with effective votes and comment count",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid article_id datatype"},
                    "404": {"description": "Article not found"}
                }
            },
            "patch": {
                "tags": ["articles"],
                "summary": "Increment base votes (legacy inc_votes path)",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "304": {"description": "No changes requested"},
                    "400": {"description": "Invalid inc_votes datatype"},
                    "404": {"description": "Article not found"}
                }
            }
        },
        "/api/articles/{article_id}/vote": {
            "post": {
                "tags": ["articles"],
                "summary": "Cast a vote (token and vote value in body)",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Article with recomputed votes"},
                    "400": {"description": "Missing token or vote, or invalid datatype"},
                    "401": {"description": "Invalid or expired token"},
                    "404": {"description": "Article not found"}
                }
            },
            "delete": {
                "tags": ["articles"],
                "summary": "Retract the caller's vote",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Article with recomputed votes"},
                    "401": {"description": "Invalid or expired token"},
                    "404": {"description": "Article not found"}
                }
            }
        },
        "/api/articles/{article_id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List an article's comments",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Article not found"}
                }
            },
            "post": {
                "tags": ["comments"],
                "summary": "Comment on an article",
                "parameters": [{"name": "article_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Missing body or author"},
                    "404": {"description": "Article or user not found"}
                }
            }
        },
        "/api/comments/{comment_id}": {
            "patch": {
                "tags": ["comments"],
                "summary": "Increment base votes (legacy inc_votes path)",
                "parameters": [{"name": "comment_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "OK"},
                    "304": {"description": "No changes requested"},
                    "404": {"description": "Comment not found"}
                }
            },
            "delete": {
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [{"name": "comment_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Comment not found"}
                }
            }
        },
        "/api/comments/{comment_id}/vote": {
            "patch": {
                "tags": ["comments"],
                "summary": "Cast a vote (token and vote value in body)",
                "parameters": [{"name": "comment_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Comment with recomputed votes"},
                    "400": {"description": "Missing token or vote, or invalid datatype"},
                    "401": {"description": "Invalid or expired token"},
                    "404": {"description": "Comment not found"}
                }
            },
            "delete": {
                "tags": ["comments"],
                "summary": "Retract the caller's vote",
                "parameters": [{"name": "comment_id", "in": "path", "required": true, "type": "integer"}],
                "responses": {
                    "200": {"description": "Comment with recomputed votes"},
                    "401": {"description": "Invalid or expired token"},
                    "404": {"description": "Comment not found"}
                }
            }
        },
        "/api/users": {
            "get": {
                "tags": ["users"],
                "summary": "List users",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/users/{username}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user",
                "parameters": [{"name": "username", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/api/user/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Access/refresh token pair"},
                    "400": {"description": "Format violation or missing field"},
                    "403": {"description": "Username already exists"}
                }
            }
        },
        "/api/user/signin": {
            "post": {
                "tags": ["auth"],
                "summary": "Sign in",
                "responses": {
                    "200": {"description": "User and token pair"},
                    "400": {"description": "Missing fields"},
                    "401": {"description": "Incorrect password"},
                    "404": {"description": "User not found"}
                }
            }
        },
        "/api/user": {
            "post": {
                "tags": ["auth"],
                "summary": "Get the current user (access token in body)",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Missing token"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        },
        "/api/user/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh tokens (refresh token in body)",
                "responses": {
                    "200": {"description": "New token pair"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NC News API",
	Description:      "REST API for a news discussion platform: topics, articles, comments, users, authentication and per-user voting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
