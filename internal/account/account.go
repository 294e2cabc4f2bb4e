// Package account holds learner profiles for the lifetime of the
// process. Nothing here is persisted: restarting the app forgets every
// account, which is the intended scope of the product.
package account

// Account is a learner profile. Password is stored in plain text — the
// store is process-private memory and account security is explicitly
// out of scope.
type Account struct {
	Username         string
	Password         string
	Level            int
	Experience       int
	Streak           int
	CompletedQuizzes int
	WeakAreas        []string
}

// NewAccount returns a fresh profile at level 1 with no progress.
func NewAccount(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
		Level:    1,
	}
}
