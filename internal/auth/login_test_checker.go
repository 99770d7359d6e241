package auth

import "context"

// LoginTestChecker is a Checker stand-in for handler tests, sessions are set directly
type LoginTestChecker struct {
	LoggedSessions map[string]bool
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]bool{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (bool, error) {
	logged, ok := c.LoggedSessions[token]
	if !ok {
		return false, nil
	}
	return logged, nil
}
