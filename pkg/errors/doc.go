// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeExternal,
//	    "failed to push tag",
//	    cause,
//	    map[string]interface{}{
//	        "tag":    "v1.2.3",
//	        "remote": "origin",
//	    },
//	)
package errors
