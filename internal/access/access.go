// Package access decides whether a viewer may read or modify an article.
//
// A Policy is an ordered list of rules. Each rule returns Allow, Deny or Skip;
// the first Allow or Deny wins and a policy that runs out of rules denies.
package access

import (
	"errors"
	"fmt"

	"github.com/Rahimov97/Another-Knowelege-Base/internal/model"
)

// Rule decisions.
var (
	Allow = errors.New("access: allow rule")
	Deny  = errors.New("access: deny rule")
	Skip  = errors.New("access: skip rule")
)

// Denyf returns a formatted Deny decision.
func Denyf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, Deny)...)
}

// Rule evaluates a single access condition.
type Rule func(viewer model.Viewer, article model.Article) error

// Policy combines rules evaluated in order.
type Policy []Rule

// Eval returns nil when access is allowed and an error wrapping
// model.ErrForbidden otherwise.
func (p Policy) Eval(viewer model.Viewer, article model.Article) error {
	for _, rule := range p {
		switch decision := rule(viewer, article); {
		case decision == nil || errors.Is(decision, Skip):
		case errors.Is(decision, Allow):
			return nil
		default:
			return fmt.Errorf("%w: %v", model.ErrForbidden, decision)
		}
	}
	return fmt.Errorf("%w: no rule allowed access", model.ErrForbidden)
}

// AllowIfPublic allows anyone to access a public article.
func AllowIfPublic() Rule {
	return func(_ model.Viewer, article model.Article) error {
		if article.IsPublic {
			return Allow
		}
		return Skip
	}
}

// AllowIfOwner allows the article owner.
func AllowIfOwner() Rule {
	return func(viewer model.Viewer, article model.Article) error {
		if viewer.Owns(article) {
			return Allow
		}
		return Skip
	}
}

// DenyAnonymous denies viewers that did not authenticate.
func DenyAnonymous() Rule {
	return func(viewer model.Viewer, _ model.Article) error {
		if viewer.IsAnonymous() {
			return Denyf("anonymous viewer")
		}
		return Skip
	}
}

var (
	readPolicy  = Policy{AllowIfPublic(), AllowIfOwner()}
	writePolicy = Policy{DenyAnonymous(), AllowIfOwner()}
)

// CanRead allows public articles to everyone and private ones to the owner only.
func CanRead(viewer model.Viewer, article model.Article) error {
	return readPolicy.Eval(viewer, article)
}

// CanWrite allows only the owner, whatever the visibility.
func CanWrite(viewer model.Viewer, article model.Article) error {
	return writePolicy.Eval(viewer, article)
}
