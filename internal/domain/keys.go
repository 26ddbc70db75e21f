package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserType  CtxKey = "UserType"
	KeyUserEmail CtxKey = "Email"
)

// Actor identifies the authenticated caller of a usecase operation.
// Ownership is always re-checked against the database; the actor only
// carries the verified token claims.
type Actor struct {
	UserID   int64
	UserType string
	Email    string
}
