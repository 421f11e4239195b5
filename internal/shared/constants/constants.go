package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgTicketNotFound      = "ticket not found"
	ErrMsgCommentNotFound     = "comment not found"
	ErrMsgUserNotFound        = "user not found"
	ErrMsgInvalidRequestBody  = "Invalid request body"
)
