// Package httputil provides the HTTP plumbing shared by qrgrid's server.
//
// # Overview
//
//   - [RequestID]: tags each request with an X-Request-ID
//   - [Observe]: reports requests and responses to observability hooks
//   - [WriteError]: maps pkg/errors codes to status codes and a JSON body
//   - [WriteJSON]: writes a JSON response
//
// # Errors
//
// Validation errors become 400, [errors.ErrCodeUnsupported] 501 and
// everything else 500. Internal errors never leak their message:
//
//	if err != nil {
//	    httputil.WriteError(w, r, err)
//	    return
//	}
package httputil
