package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	dataStarAccept     = "text/event-stream"
	dataStarQueryParam = "datastar"
)

// IsDataStar reports whether r was issued by the DataStar client.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), dataStarAccept) {
		return true
	}
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	return r.URL.Query().Has(dataStarQueryParam)
}

// ReadSignals decodes DataStar signals from the query (GET) or body.
func ReadSignals[T any](r *http.Request) (T, error) {
	var v T
	if err := datastar.ReadSignals(r, &v); err != nil {
		return v, NewHTTPError(http.StatusBadRequest, "invalid_signals").WithMessage(err.Error())
	}
	return v, nil
}

// SignalStream is fed by a Stream handler; each Send patches the signals.
type SignalStream interface {
	Send(signals any) error
	Done() <-chan struct{}
}

type signalStream struct {
	sse *datastar.ServerSentEventGenerator
	r   *http.Request
}

func (s *signalStream) Send(signals any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.sse.PatchSignals(data)
}

func (s *signalStream) Done() <-chan struct{} { return s.r.Context().Done() }

// Stream keeps an SSE connection open for fn. Non-DataStar requests get 400.
func Stream(fn func(stream SignalStream) error) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if !IsDataStar(r) {
			return NewHTTPError(http.StatusBadRequest, "datastar_required").WithMessage("endpoint requires a DataStar connection")
		}
		return fn(&signalStream{sse: datastar.NewSSE(w, r), r: r})
	})
}
