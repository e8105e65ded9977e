package envvalue

import (
	"errors"
	"fmt"
)

// Getter represents a function that retrieves a value and possibly returns an error
type Getter[T any] func() (T, error)

// Setter represents a function that sets a value and possibly returns an error
type Setter func() error

// Set creates a setter for a target from a getter.
// The target is left untouched when the getter fails.
func Set[T any](target *T, g Getter[T]) Setter {
	return func() error {
		val, err := g()
		if err != nil {
			return err
		}
		*target = val
		return nil
	}
}

// Supply executes setters in order.
// It collects errors from each setter and returns a combined error if any setter fails.
func Supply(setters ...Setter) error {
	var errs []error
	for _, s := range setters {
		if err := s(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// Bool returns a getter evaluating key with Boolean. An absent result
// yields false; any non boolean result is an ErrType error.
func (r *Reader) Bool(key string, opts ...Option) Getter[bool] {
	return func() (bool, error) {
		res, err := r.Boolean(key, opts...)
		if err != nil || res.IsAbsent() {
			return false, err
		}
		b, ok := res.Bool()
		if !ok {
			return false, typeError(r.prefix+key, res, KindBool)
		}
		return b, nil
	}
}

// Text returns a getter evaluating key with Value. Booleans and symbols are
// rendered as their text, an absent result yields "".
func (r *Reader) Text(key string, opts ...Option) Getter[string] {
	return func() (string, error) {
		res, err := r.Value(key, opts...)
		if err != nil {
			return "", err
		}
		switch res.Kind() {
		case KindAbsent:
			return "", nil
		case KindText, KindBool:
			return res.String(), nil
		case KindSymbol:
			sym, _ := res.Symbol()
			return string(sym), nil
		}
		return "", typeError(r.prefix+key, res, KindText)
	}
}

// Int returns a getter evaluating key with Value converted by ToI, so
// unrecognised text is parsed leniently. "1"/"true" and "0"/"false" count as
// 1 and 0, an absent result yields 0.
func (r *Reader) Int(key string, opts ...Option) Getter[int64] {
	return func() (int64, error) {
		res, err := r.Value(key, append([]Option{Convert(ToI)}, opts...)...)
		if err != nil {
			return 0, err
		}
		switch res.Kind() {
		case KindAbsent:
			return 0, nil
		case KindInt:
			i, _ := res.Int()
			return i, nil
		case KindBool:
			if b, _ := res.Bool(); b {
				return 1, nil
			}
			return 0, nil
		}
		return 0, typeError(r.prefix+key, res, KindInt)
	}
}

func typeError(key string, res Result, want Kind) error {
	return &Error{
		Key:   key,
		Cause: fmt.Errorf("%w: got %s, want %s", ErrType, res.Kind(), want),
	}
}
