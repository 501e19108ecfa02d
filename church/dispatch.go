package church

import (
	"reflect"
)

type probe struct{ branch string }

var (
	probeTrue  = &probe{branch: branchTrue}
	probeFalse = &probe{branch: branchFalse}
)

// Dispatch is Select for values whose types are only known at run time.
// selector may be a Selector, a Boolean, or a two-argument Church function;
// the branches may be any function taking no arguments and returning at most one value.
func Dispatch(selector any, onTrue, onFalse any) (any, error) {
	s, err := selectorOf(selector)
	if err != nil {
		return nil, err
	}
	t, err := thunkOf(branchTrue, onTrue)
	if err != nil {
		return nil, err
	}
	f, err := thunkOf(branchFalse, onFalse)
	if err != nil {
		return nil, err
	}
	return Select(s, t, f)
}

func selectorOf(v any) (Selector, error) {
	switch s := v.(type) {
	case Selector:
		if !s.Valid() {
			return 0, invalidSelector(s)
		}
		return s, nil
	case Boolean:
		return selectorOf(s.Selector())
	case Func[any]:
		return probeFunc(s)
	case func(onTrue, onFalse any) any:
		return probeFunc(s)
	}
	return 0, ErrInvalidSelector
}

// probeFunc recovers the Selector a Church function stands for by handing it
// two markers and seeing which one comes back. A panicking function is not a selector.
func probeFunc(f func(onTrue, onFalse any) any) (s Selector, err error) {
	if f == nil {
		return 0, ErrInvalidSelector
	}
	defer func() {
		if recover() != nil {
			s, err = 0, ErrInvalidSelector
		}
	}()
	switch f(probeTrue, probeFalse) {
	case probeTrue:
		return True, nil
	case probeFalse:
		return False, nil
	}
	return 0, ErrInvalidSelector
}

func thunkOf(branch string, v any) (Thunk[any], error) {
	switch fn := v.(type) {
	case Thunk[any]:
		if fn != nil {
			return fn, nil
		}
	case func() any:
		if fn != nil {
			return fn, nil
		}
	case Block:
		if fn != nil {
			return Thunk[any](fn), nil
		}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, notCallable(branch)
	}
	rt := rv.Type()
	if rt.NumIn() != 0 || rt.NumOut() > 1 {
		return nil, notCallable(branch)
	}
	return func() any {
		out := rv.Call(nil)
		if len(out) == 0 {
			return nil
		}
		return out[0].Interface()
	}, nil
}
