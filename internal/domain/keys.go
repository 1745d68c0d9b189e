package domain

// CtxKey names values stored on the gin context.
type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
