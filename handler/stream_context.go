package handler

import (
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext is a Context with an open SSE connection.
type StreamContext interface {
	Context

	// SendComponent patches a templ component into the page.
	//
	//	err := stream.SendComponent(
	//		views.AlertItem(rec),
	//		handler.WithTarget("#alerts"),
	//		handler.WithPatchMode(handler.PatchAppend),
	//	)
	SendComponent(component TemplComponent, opts ...TemplOption) error

	// RemoveElement deletes every element matching selector.
	RemoveElement(selector string) error

	// Redirect navigates the browser to url.
	Redirect(url string) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component TemplComponent, opts ...TemplOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) RemoveElement(selector string) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElements("",
		datastar.WithSelector(selector),
		datastar.WithMode(datastar.ElementPatchModeRemove),
	)
}

func (c *streamContext) Redirect(url string) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.Redirect(url)
}
