package domain

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 4

// Account represents a registered user identity.
type Account struct {
	ID       int64  `db:"account_id"`
	Username string `db:"username"`
	Password string `db:"password"`
}
