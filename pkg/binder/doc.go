// Package binder decodes HTTP request bodies: strict JSON into structs and
// urlencoded or multipart forms into validator.Values.
package binder
