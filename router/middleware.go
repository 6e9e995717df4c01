package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Quarmire/chord/errs"
	"github.com/felixge/httpsnoop"
	"github.com/go-logr/logr"
	"github.com/yousuf64/shift"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

// ErrorHandler writes handler errors as a JSON body with a status derived from the error.
func ErrorHandler(next shift.HandlerFunc) shift.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
		err := next(w, r, route)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(statusFor(err))
			_ = json.NewEncoder(w).Encode(&ErrorBody{Error: err.Error()})
		}

		return nil
	}
}

func statusFor(err error) int {
	var errorReply *ErrorReply
	switch {
	case errors.As(err, &errorReply):
		return errorReply.Status
	case errors.Is(err, errs.NodeDoesNotExistError):
		return http.StatusNotFound
	case errors.Is(err, errs.OutOfRangeError):
		return http.StatusBadRequest
	case errors.Is(err, errs.RingIsFullError), errors.Is(err, errs.NoNodesExistError):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func JsonResponse(next shift.HandlerFunc) shift.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
		w.Header().Set("Content-Type", "application/json")
		return next(w, r, route)
	}
}

func OTelTrace(next shift.HandlerFunc) shift.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
		ctx := r.Context()
		span := trace.SpanFromContext(ctx)
		attr := semconv.HTTPRoute(route.Path)
		span.SetAttributes(attr)

		labeler, _ := otelhttp.LabelerFromContext(ctx)
		labeler.Add(attr)

		// Set params
		route.Params.ForEach(func(k, v string) {
			span.SetAttributes(attribute.String("param."+k, v))
		})

		// Set traceparent and tracestate headers
		spanCtx := trace.SpanContextFromContext(ctx)
		if spanCtx.IsValid() {
			traceParent := fmt.Sprintf("00-%s-%s-01", spanCtx.TraceID().String(), spanCtx.SpanID().String())
			w.Header().Set("traceparent", traceParent)
			w.Header().Set("tracestate", spanCtx.TraceState().String())
		}

		err := next(w, r, route)
		if err != nil {
			labeler.Add(attribute.Bool("error", true))
		}

		return err
	}
}

// api is the middleware stack for every /api route.
func api(next shift.HandlerFunc) shift.HandlerFunc {
	return ErrorHandler(JsonResponse(OTelTrace(next)))
}

func GrpcFilter(next shift.HandlerFunc) shift.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
		if isGrpc(r) {
			return next(w, r, route)
		}

		http.NotFoundHandler().ServeHTTP(w, r)
		return nil
	}
}

func isGrpc(r *http.Request) bool {
	return r.ProtoMajor == 2 && strings.HasPrefix(r.Header.Get("Content-Type"), "application/grpc")
}

// AccessLog logs one line per HTTP request. gRPC calls are left to their own instrumentation.
func AccessLog(logger logr.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isGrpc(r) {
			next.ServeHTTP(w, r)
			return
		}

		m := httpsnoop.CaptureMetrics(next, w, r)
		logger.V(1).Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", m.Code,
			"bytes", m.Written,
			"duration", m.Duration.String(),
		)
	})
}
