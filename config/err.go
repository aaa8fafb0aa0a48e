package config

import (
	"github.com/ezrec/pcalc/translate"
)

var f = translate.From

// ErrEnv reports an environment variable with an unusable value.
type ErrEnv struct {
	Name  string
	Value string
	Err   error
}

func (err ErrEnv) Error() string {
	return f("$%v='%v': %v", err.Name, err.Value, err.Err)
}

func (err ErrEnv) Unwrap() error {
	return err.Err
}
