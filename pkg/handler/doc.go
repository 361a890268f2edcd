// Package handler turns typed functions into http.HandlerFunc values.
//
// Wrap binds the request into R with the configured binders, runs the
// handler and renders the returned Response. Errors from binding or
// rendering go through an ErrorHandler, which by default writes the JSON
// error envelope:
//
//	{"error": {"code": "validation_error", "message": "Validation failed",
//	           "details": {"email": ["Please enter a valid email address"]}}}
//
// Stream answers DataStar clients by patching signals over server-sent
// events; ReadSignals decodes what they send.
package handler
