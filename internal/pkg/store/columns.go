package store

import (
	"reflect"
	"strings"
)

// Columns lists the db tags of T in field order, skipping "-".
func Columns[T any]() []string {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	columns := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		tag, ok := typ.Field(i).Tag.Lookup("db")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, name)
	}
	return columns
}
