// file: internals/features/tryouts/dto/update_field.go
package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"
)

/*
==============================

	Helper: Tri-state updater
	- Absent  : tidak diupdate
	- null    : set kolom ke NULL
	- value   : set kolom ke value

==============================
*/
type UpdateField[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *UpdateField[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f UpdateField[T]) ShouldUpdate() bool { return f.set }
func (f UpdateField[T]) IsNull() bool       { return f.set && f.null }
func (f UpdateField[T]) Val() T             { return f.value }

// ApplyUpdate menulis field tri-state ke map updates GORM.
func ApplyUpdate[T any](updates map[string]interface{}, column string, f UpdateField[T]) {
	if !f.ShouldUpdate() {
		return
	}
	if f.IsNull() {
		updates[column] = gorm.Expr("NULL")
		return
	}
	updates[column] = f.Val()
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
