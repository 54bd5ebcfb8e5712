// Package clicfg copies flag values into a struct by `flag` tag, so commands
// can pass a single typed config around instead of the cli.Command.
package clicfg

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/urfave/cli/v3"
)

var (
	ErrNotAStructPointer = errors.New("clicfg: expected a pointer to a struct")
	ErrUnsupportedField  = errors.New("clicfg: unsupported field type")
)

var durationType = reflect.TypeOf(time.Duration(0))

func ParseFlags(c *cli.Command, target any) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w, got %T", ErrNotAStructPointer, target)
	}

	v = v.Elem()
	t := v.Type()

	for i := range t.NumField() {
		field := t.Field(i)
		fieldValue := v.Field(i)

		flagName := field.Tag.Get("flag")
		if flagName == "" || !fieldValue.CanSet() {
			continue
		}

		switch {
		case field.Type == durationType:
			fieldValue.SetInt(int64(c.Duration(flagName)))
		case field.Type.Kind() == reflect.String:
			fieldValue.SetString(c.String(flagName))
		case field.Type.Kind() == reflect.Bool:
			fieldValue.SetBool(c.Bool(flagName))
		case field.Type.Kind() == reflect.Int, field.Type.Kind() == reflect.Int64:
			fieldValue.SetInt(int64(c.Int(flagName)))
		default:
			return fmt.Errorf("%w: %s (%s)", ErrUnsupportedField, field.Name, field.Type)
		}
	}

	return nil
}
