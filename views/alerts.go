package views

import (
	"context"

	"github.com/a-h/templ"

	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/alert"
)

// AlertsTarget is the selector of the alert container.
const AlertsTarget = "#alerts"

// AlertID is the DOM id of an alert.
func AlertID(id string) string {
	return "alert-" + id
}

// AlertList renders the container and opens the alert stream once the
// page has loaded.
func AlertList(records []alert.Record) templ.Component {
	return component(func(ctx context.Context, h *html) {
		h.raw(`<div id="alerts" class="container position-fixed top-0 end-0 p-3" style="z-index:1080" data-init="@get('/alerts/stream')">`)
		for _, rec := range records {
			h.render(ctx, AlertItem(rec))
		}
		h.raw(`</div>`)
	})
}

// AlertItems renders records without their container, for patching the
// inside of #alerts.
func AlertItems(records []alert.Record) templ.Component {
	return component(func(ctx context.Context, h *html) {
		for _, rec := range records {
			h.render(ctx, AlertItem(rec))
		}
	})
}

// AlertItem is a single dismissible alert. A hidden record keeps its
// element but loses the "show" class so it fades out.
func AlertItem(rec alert.Record) templ.Component {
	return component(func(_ context.Context, h *html) {
		variant := rec.Variant
		if !variant.Valid() {
			variant = alert.Secondary
		}
		class := "alert alert-" + string(variant) + " alert-dismissible fade"
		if rec.Visible {
			class += " show"
		}
		h.raw(`<div id="`)
		h.text(AlertID(rec.ID))
		h.raw(`" class="`)
		h.text(class)
		h.raw(`" role="alert">`)
		if rec.Heading != "" {
			h.raw(`<h5 class="alert-heading">`)
			h.text(rec.Heading)
			h.raw(`</h5>`)
		}
		h.raw(`<p class="mb-0">`)
		h.text(rec.Message)
		h.raw(`</p><button type="button" class="btn-close" aria-label="Close" data-on:click="@post('/alerts/`)
		h.text(rec.ID)
		h.raw(`/dismiss')"></button></div>`)
	})
}

// ErrorToast shows a request failure that has no queue behind it, so it is
// closed on the client.
func ErrorToast(p handler.ErrorToastParams) templ.Component {
	return component(func(_ context.Context, h *html) {
		h.raw(`<div class="alert alert-`)
		h.text(p.Type)
		h.raw(` alert-dismissible fade show" role="alert"><p class="mb-0">`)
		h.text(p.Message)
		if p.RequestID != "" {
			h.raw(` <small class="text-muted">(`)
			h.text(p.RequestID)
			h.raw(`)</small>`)
		}
		h.raw(`</p><button type="button" class="btn-close" aria-label="Close" data-on:click="el.parentElement.remove()"></button></div>`)
	})
}
