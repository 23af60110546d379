package rop

import (
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors flattens an error produced by errors.Join into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// JoinErrors appends err to the parts already held by joined.
func JoinErrors(joined error, err error) error {
	if IsNil(err) {
		return joined
	}
	e := GetErrors(joined)
	e = append(e, err)
	return errors.Join(e...)
}
