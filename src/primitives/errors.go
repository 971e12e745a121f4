package primitives

import (
	"errors"
	"fmt"
)

var ErrZeroVector = errors.New("vector (0,0,0) is not allowed")

func zeroVectorError(op string, xyz Double3) error {
	return fmt.Errorf("%s %s: %w", op, xyz, ErrZeroVector)
}

// Must returns v, panicking if err is set. Finalizers run before the panic.
func Must(v Vector, err error, finalizers ...func()) Vector {
	if err != nil {
		for _, fn := range finalizers {
			fn()
		}
		panic(err)
	}
	return v
}

// CheckError converts a recovered panic into *err. Use it deferred.
func CheckError(err *error) {
	if v := recover(); v != nil {
		if e, ok := v.(error); ok {
			*err = e
			return
		}
		*err = fmt.Errorf("%+v", v)
	}
}
