package auth

import (
	"context"

	"tripwise/pkg/model"
)

type contextKey string

const accountKey contextKey = "account"

// WithAccount attaches the resolved, sanitized account to the context.
func WithAccount(ctx context.Context, account *model.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFrom returns the authenticated account, or nil when the request
// was anonymous.
func AccountFrom(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountKey).(*model.Account)
	return account
}
