// Package models defines the tagged persistence records for the voice
// lesson service. External data (identity claims, request bodies) is mapped
// into these types at the store boundary; nothing downstream handles loose
// row shapes.
package models

// All returns every model registered for auto-migration, in dependency
// order.
func All() []any {
	return []any{
		&UserProfile{},
		&Media{},
		&Lesson{},
		&LessonStep{},
		&Assignment{},
		&Annotation{},
		&Recording{},
		&Notification{},
	}
}
