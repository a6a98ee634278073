package shared

import (
	"shuttlesync/internal/infra"
	"shuttlesync/internal/pkg/errs"
)

// Errors shared by the command and query sides.
var (
	ErrDraftNotFound        = errs.New("booking draft not found")
	ErrUpstreamUnauthorized = errs.New("backend rejected the access token")
	ErrUpstreamUnavailable  = errs.New("backend unavailable")
)

// UpstreamErr maps a gateway failure onto the shared taxonomy. notFound is
// returned for KindNotFound when non-nil.
func UpstreamErr(err error, notFound error) error {
	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		return errs.Mark(err, ErrUpstreamUnauthorized)
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, notFound)
	default:
		return errs.Mark(err, ErrUpstreamUnavailable)
	}
}
