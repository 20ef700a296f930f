package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of an SSE connection. The connection is
// closed when it returns.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case msg := <-sub.Receive():
//				if err := stream.SendComponent(...); err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render refuses plain requests with 400 and runs the handler otherwise.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}
	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a response that streams through handler.
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
