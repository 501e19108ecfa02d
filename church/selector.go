// Package church implements Church-encoded booleans: a boolean is a selector
// that, given two alternatives, hands back exactly one of them unevaluated.
package church

import (
	"fmt"
	"strings"
)

// Selector is a closed two-valued variant. Its zero value is not a boolean.
type Selector uint8

const (
	True Selector = iota + 1
	False
)

// Func is the Church form of a Selector.
type Func[T any] func(onTrue, onFalse T) T

// Thunk is a deferred computation, run only when selected.
type Thunk[R any] func() R

func TrueFunc[T any](onTrue, _ T) T {
	return onTrue
}

func FalseFunc[T any](_, onFalse T) T {
	return onFalse
}

// Of lifts a native bool.
func Of(b bool) Selector {
	if b {
		return True
	}
	return False
}

func Parse(s string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes":
		return True, nil
	case "false", "f", "0", "no":
		return False, nil
	}
	return 0, ErrInvalidSelector.WithMetadata(map[string]string{"value": s})
}

func (s Selector) Valid() bool {
	return s == True || s == False
}

// Not returns the opposite selector. Non-canonical values stay non-canonical.
func (s Selector) Not() Selector {
	switch s {
	case True:
		return False
	case False:
		return True
	}
	return s
}

func (s Selector) String() string {
	switch s {
	case True:
		return "true"
	case False:
		return "false"
	}
	return fmt.Sprintf("Selector(%d)", uint8(s))
}

// Church returns the higher-order function s stands for.
func Church[T any](s Selector) (Func[T], error) {
	switch s {
	case True:
		return TrueFunc[T], nil
	case False:
		return FalseFunc[T], nil
	}
	return nil, invalidSelector(s)
}

// Choose returns onTrue or onFalse as-is. Function values are not called.
func Choose[T any](s Selector, onTrue, onFalse T) (T, error) {
	f, err := Church[T](s)
	if err != nil {
		var zero T
		return zero, err
	}
	return f(onTrue, onFalse), nil
}

// Select invokes exactly one of the two thunks and returns its result.
// Both thunks are checked before either runs, so an error means nothing was invoked.
func Select[R any](s Selector, onTrue, onFalse Thunk[R]) (R, error) {
	var zero R
	if onTrue == nil {
		return zero, notCallable(branchTrue)
	}
	if onFalse == nil {
		return zero, notCallable(branchFalse)
	}
	thunk, err := Choose(s, onTrue, onFalse)
	if err != nil {
		return zero, err
	}
	return thunk(), nil
}
