// Package remote renders images on a server for clients connected over irpc.
//
// A client connecting to the server serves a buddha.RenderJob on its end of
// the connection. The server pulls the job's parameters, renders them while
// reporting progress back and finishes the job with the image or the reason
// the render failed.
package remote

import (
	"errors"
)

// ErrRemote wraps errors reported by the server.
var ErrRemote = errors.New("remote render failed")
