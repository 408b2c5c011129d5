package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "HMHY Admin API",
        "description": "Admin back office for the HMHY tutoring marketplace",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Auth", "description": "Admin and teacher sign-in, OTP email verification"},
        {"name": "Admins", "description": "Back-office accounts (SUPERADMIN)"},
        {"name": "Teachers", "description": "Teacher roster with soft delete"},
        {"name": "Students", "description": "Telegram students and blocking"},
        {"name": "Lessons", "description": "Teacher lessons"},
        {"name": "Payments", "description": "Transactions, stats and exported reports"},
        {"name": "Dashboard", "description": "Cached counters"},
        {"name": "Profile", "description": "Acting user profile"},
        {"name": "System", "description": "Health and metrics"}
    ],
    "paths": {
        "/auth/admin/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AdminLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/teacher/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Teacher login",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/TeacherLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/teacher/otp/send": {
            "post": {
                "tags": ["Auth"],
                "summary": "Send email verification code",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SendOTPRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted"}
                }
            }
        },
        "/auth/teacher/otp/verify": {
            "post": {
                "tags": ["Auth"],
                "summary": "Verify email code",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/VerifyOTPRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid code", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "429": {"description": "Too many attempts", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Rotate refresh token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RefreshTokenRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Revoke refresh token",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/auth/change-password": {
            "post": {
                "tags": ["Auth"],
                "security": [{"BearerAuth": []}],
                "summary": "Change password",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/admins": {
            "get": {
                "tags": ["Admins"],
                "security": [{"BearerAuth": []}],
                "summary": "List admins",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "role", "in": "query", "type": "string", "enum": ["ADMIN", "SUPERADMIN"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "post": {
                "tags": ["Admins"],
                "security": [{"BearerAuth": []}],
                "summary": "Create admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAdminRequest"}}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/admins/{id}": {
            "get": {
                "tags": ["Admins"],
                "security": [{"BearerAuth": []}],
                "summary": "Get admin",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Admins"],
                "security": [{"BearerAuth": []}],
                "summary": "Update admin",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAdminRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Admins"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete admin",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "List active teachers",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "level", "in": "query", "type": "string"},
                    {"name": "specification", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teachers/deleted": {
            "get": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "List soft-deleted teachers",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "Get teacher",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "Update teacher",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "Soft delete teacher",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/teachers/{id}/restore": {
            "post": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "Restore soft-deleted teacher",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teachers/{id}/hard": {
            "delete": {
                "tags": ["Teachers"],
                "security": [{"BearerAuth": []}],
                "summary": "Permanently delete a soft-deleted teacher",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Teacher still active", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}/lessons": {
            "get": {
                "tags": ["Lessons"],
                "security": [{"BearerAuth": []}],
                "summary": "List lessons of a teacher",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["AVAILABLE", "BOOKED", "COMPLETED", "CANCELLED"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teacher/lessons": {
            "get": {
                "tags": ["Lessons"],
                "security": [{"BearerAuth": []}],
                "summary": "List own lessons",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students": {
            "get": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "List students",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["active", "blocked"]}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/stats": {
            "get": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Student counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Get student",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Update student",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "delete": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Delete student",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/students/{id}/block": {
            "post": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Block student",
                "parameters": [
                    {"$ref": "#/parameters/id"},
                    {"name": "payload", "in": "body", "schema": {"$ref": "#/definitions/BlockStudentRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/students/{id}/unblock": {
            "post": {
                "tags": ["Students"],
                "security": [{"BearerAuth": []}],
                "summary": "Unblock student",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/payments/stats": {
            "get": {
                "tags": ["Payments"],
                "security": [{"BearerAuth": []}],
                "summary": "Revenue and status counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/payments/transactions": {
            "get": {
                "tags": ["Payments"],
                "security": [{"BearerAuth": []}],
                "summary": "List transactions",
                "parameters": [
                    {"$ref": "#/parameters/search"},
                    {"$ref": "#/parameters/sort"},
                    {"$ref": "#/parameters/order"},
                    {"$ref": "#/parameters/page"},
                    {"$ref": "#/parameters/limit"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "provider", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/payments/reports": {
            "post": {
                "tags": ["Payments"],
                "security": [{"BearerAuth": []}],
                "summary": "Queue a payment report export",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PaymentReportRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Reports disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "503": {"description": "Queue full", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payments/reports/{id}": {
            "get": {
                "tags": ["Payments"],
                "security": [{"BearerAuth": []}],
                "summary": "Report job status",
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/payments/reports/download": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download a finished report",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "403": {"description": "Invalid or expired token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "security": [{"BearerAuth": []}],
                "summary": "Dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/profile": {
            "get": {
                "tags": ["Profile"],
                "security": [{"BearerAuth": []}],
                "summary": "Acting admin profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Profile"],
                "security": [{"BearerAuth": []}],
                "summary": "Update acting admin profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/teacher/profile": {
            "get": {
                "tags": ["Profile"],
                "security": [{"BearerAuth": []}],
                "summary": "Acting teacher profile",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            },
            "put": {
                "tags": ["Profile"],
                "security": [{"BearerAuth": []}],
                "summary": "Update acting teacher profile",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherProfileRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        },
        "/system/metrics": {
            "get": {
                "tags": ["System"],
                "security": [{"BearerAuth": []}],
                "summary": "Runtime counters snapshot",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}
            }
        }
    },
    "parameters": {
        "id": {"name": "id", "in": "path", "required": true, "type": "string"},
        "search": {"name": "search", "in": "query", "type": "string"},
        "sort": {"name": "sort", "in": "query", "type": "string"},
        "order": {"name": "order", "in": "query", "type": "string", "enum": ["asc", "desc"]},
        "page": {"name": "page", "in": "query", "type": "integer"},
        "limit": {"name": "limit", "in": "query", "type": "integer"}
    },
    "definitions": {
        "AdminLoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "TeacherLoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["email", "password"]
        },
        "SendOTPRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}},
            "required": ["email"]
        },
        "VerifyOTPRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "code": {"type": "string"}
            },
            "required": ["email", "code"]
        },
        "RefreshTokenRequest": {
            "type": "object",
            "properties": {"refresh_token": {"type": "string"}},
            "required": ["refresh_token"]
        },
        "ChangePasswordRequest": {
            "type": "object",
            "properties": {
                "old_password": {"type": "string"},
                "new_password": {"type": "string"}
            },
            "required": ["old_password", "new_password"]
        },
        "CreateAdminRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "phone_number": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "UpdateAdminRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "phone_number": {"type": "string"},
                "role": {"type": "string", "enum": ["ADMIN", "SUPERADMIN"]}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "UpdateTeacherRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "phone_number": {"type": "string"},
                "description": {"type": "string"},
                "experience": {"type": "integer"},
                "hour_price": {"type": "string"},
                "level": {"type": "string"},
                "portfolio_link": {"type": "string"},
                "specification": {"type": "string"}
            }
        },
        "UpdateTeacherProfileRequest": {
            "type": "object",
            "allOf": [{"$ref": "#/definitions/UpdateTeacherRequest"}],
            "properties": {
                "image_url": {"type": "string"},
                "card_number": {"type": "string"}
            }
        },
        "UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        },
        "BlockStudentRequest": {
            "type": "object",
            "properties": {"reason": {"type": "string"}}
        },
        "PaymentReportRequest": {
            "type": "object",
            "properties": {
                "format": {"type": "string", "enum": ["csv", "pdf"]},
                "status": {"type": "string", "enum": ["COMPLETED", "PENDING", "CANCELLED", "FAILED"]},
                "provider": {"type": "string"},
                "search": {"type": "string"},
                "sort": {"type": "string", "enum": ["date", "amount"]},
                "order": {"type": "string", "enum": ["asc", "desc"]}
            },
            "required": ["format"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_items": {"type": "integer"},
                "total_pages": {"type": "integer"},
                "range_start": {"type": "integer"},
                "range_end": {"type": "integer"},
                "has_previous": {"type": "boolean"},
                "has_next": {"type": "boolean"},
                "sort": {"type": "string"},
                "order": {"type": "string"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
