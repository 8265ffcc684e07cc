package ports

import "github.com/menuhub/menu-server/internal/core/domain"

// TokenIssuer mints signed bearer tokens for a principal.
type TokenIssuer interface {
	Issue(p domain.Principal) (string, error)
}

// TokenParser verifies a bearer token and decodes its subject.
type TokenParser interface {
	Parse(token string) (domain.Principal, error)
}
