package church

import (
	"strconv"

	"github.com/kanengo/church/errors"
)

const (
	ReasonInvalidSelector = "INVALID_SELECTOR"
	ReasonNotCallable     = "NOT_CALLABLE"

	branchTrue  = "onTrue"
	branchFalse = "onFalse"
)

var (
	ErrInvalidSelector = errors.BadRequest(ReasonInvalidSelector, "selector is not a canonical boolean")
	ErrNotCallable     = errors.BadRequest(ReasonNotCallable, "branch is not a zero-argument thunk")
)

func invalidSelector(s Selector) error {
	return ErrInvalidSelector.WithMetadata(map[string]string{"value": strconv.Itoa(int(s))})
}

func notCallable(branch string) error {
	return ErrNotCallable.WithMetadata(map[string]string{"branch": branch})
}
