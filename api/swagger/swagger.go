package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Dive Course API",
        "description": "Read-only catalog of diving courses",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Courses", "description": "Course search, detail and recommendations"},
        {"name": "Catalog", "description": "Search filter options"}
    ],
    "paths": {
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "Search courses",
                "description": "Malformed query values are ignored. In passthrough mode the full catalog is returned.",
                "parameters": [
                    {"name": "location", "in": "query", "type": "string"},
                    {"name": "area", "in": "query", "type": "string", "description": "Comma separated"},
                    {"name": "type", "in": "query", "type": "string", "enum": ["open-water", "advanced", "rescue", "dive-master", "trial"]},
                    {"name": "date", "in": "query", "type": "string", "format": "date"},
                    {"name": "minPrice", "in": "query", "type": "integer"},
                    {"name": "maxPrice", "in": "query", "type": "integer"},
                    {"name": "level", "in": "query", "type": "string", "description": "Comma separated"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["recommended", "price-asc", "price-desc", "rating-desc"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseListEnvelope"}}
                }
            }
        },
        "/courses/featured": {
            "get": {
                "tags": ["Courses"],
                "summary": "Featured courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseListEnvelope"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Course detail",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses/{id}/related": {
            "get": {
                "tags": ["Courses"],
                "summary": "Related courses",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseListEnvelope"}}
                }
            }
        },
        "/catalog/facets": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Search filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Instructor": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "title": {"type": "string"},
                "bio": {"type": "string"},
                "image": {"type": "string"}
            }
        },
        "ScheduleDay": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "activities": {"type": "string"}
            }
        },
        "Review": {
            "type": "object",
            "properties": {
                "userName": {"type": "string"},
                "userImage": {"type": "string"},
                "rating": {"type": "number"},
                "date": {"type": "string"},
                "comment": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string"},
                "description": {"type": "string"},
                "fullDescription": {"type": "string"},
                "image": {"type": "string"},
                "galleryImages": {"type": "array", "items": {"type": "string"}},
                "price": {"type": "integer"},
                "location": {"type": "string"},
                "duration": {"type": "string"},
                "level": {"type": "string"},
                "rating": {"type": "number"},
                "reviewCount": {"type": "integer"},
                "isPopular": {"type": "boolean"},
                "includes": {"type": "array", "items": {"type": "string"}},
                "certification": {"type": "string"},
                "schedule": {"type": "array", "items": {"$ref": "#/definitions/ScheduleDay"}},
                "instructor": {"$ref": "#/definitions/Instructor"},
                "reviews": {"type": "array", "items": {"$ref": "#/definitions/Review"}}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        },
        "CourseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"$ref": "#/definitions/Course"}
            }
        },
        "CourseListEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/Course"}},
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
