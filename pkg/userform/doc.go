// Package userform owns the admin user record in both of its shapes: the
// API representation with typed/nullable fields and the widened editing
// representation, plus the converters, the validation pipeline, and the
// section builders that bind a record into renderable field descriptors.
package userform
