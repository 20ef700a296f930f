package alerts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/springmovies/webclient/app"
	"github.com/springmovies/webclient/handler"
	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/binder"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/views"
)

// Service streams the session's alerts and serves their close control.
type Service struct {
	log *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{log: log}
}

func (s *Service) Routes() routegate.Table {
	return routegate.Table{
		{
			Pattern: "/alerts/stream",
			Methods: []string{http.MethodGet},
			Handler: handler.Wrap(s.stream,
				handler.WithContextFactory[app.Context, struct{}](app.NewContext),
			),
		},
		{
			Pattern: "/alerts/{id}/dismiss",
			Methods: []string{http.MethodPost},
			Handler: handler.Wrap(s.dismiss,
				handler.WithContextFactory[app.Context, DismissRequest](app.NewContext),
				handler.WithBinders[app.Context, DismissRequest](binder.Path(chi.URLParam)),
			),
		},
	}
}

type DismissRequest struct {
	ID string `path:"id"`
}

func (s *Service) dismiss(ctx app.Context, req DismissRequest) handler.Response {
	ctx.State().Dismiss(req.ID)
	return handler.Empty()
}

// stream replaces the contents of the alert container with the current
// alerts and then follows every change of the queue until the browser
// disconnects.
func (s *Service) stream(ctx app.Context, _ struct{}) handler.Response {
	st := ctx.State()
	return handler.SSE(func(stream handler.StreamContext) error {
		records, sub := st.Subscribe(stream)
		defer sub.Close()

		if err := stream.SendComponent(views.AlertItems(records),
			handler.WithTarget(views.AlertsTarget),
			handler.WithPatchMode(handler.PatchInner),
		); err != nil {
			return err
		}

		for {
			select {
			case <-stream.Done():
				return nil
			case msg, ok := <-sub.Receive():
				if !ok {
					return nil
				}
				if err := send(stream, msg.Data); err != nil {
					s.log.DebugContext(stream, "alert stream closed",
						logger.Component("alerts"),
						logger.SessionID(st.SessionID()),
						logger.Error(err),
					)
					return nil
				}
			}
		}
	})
}

func send(stream handler.StreamContext, ev alert.Event) error {
	selector := "#" + views.AlertID(ev.Record.ID)
	switch ev.Type {
	case alert.EventEnqueued:
		return stream.SendComponent(views.AlertItem(ev.Record),
			handler.WithTarget(views.AlertsTarget),
			handler.WithPatchMode(handler.PatchAppend),
		)
	case alert.EventHidden:
		return stream.SendComponent(views.AlertItem(ev.Record),
			handler.WithTarget(selector),
			handler.WithPatchMode(handler.PatchOuter),
		)
	case alert.EventRemoved:
		return stream.RemoveElement(selector)
	}
	return nil
}
