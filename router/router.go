package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Quarmire/chord/chord"
	"github.com/go-logr/logr"
	"github.com/yousuf64/shift"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/grpc"
)

const meterName = "github.com/Quarmire/chord/router"

type Router struct {
	http.Handler
}

// New serves the ring API under /api. When grpcs is not nil, gRPC requests on the same
// listener are handed to it.
func New(grpcs *grpc.Server, core chord.Core, logger logr.Logger) *Router {
	logger = logger.WithName("http")
	router := shift.New()

	changes, err := otel.Meter(meterName).Int64Counter("chord.membership.changes",
		metric.WithDescription("Nodes added to or deleted from the ring"))
	if err != nil {
		logger.Error(err, "membership counter unavailable")
	}
	countChange := func(r *http.Request, op string) {
		if changes != nil {
			changes.Add(r.Context(), 1, metric.WithAttributes(attribute.String("op", op)))
		}
	}

	if grpcs != nil {
		router.With(GrpcFilter).All("/*any", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			grpcs.ServeHTTP(w, r)
			return nil
		})
	}

	router.With(api).Group("/api", func(g *shift.Group) {
		g.POST("/nodes", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			id, err := core.AddNode(r.Context())
			if err != nil {
				return err
			}
			countChange(r, "add")

			w.WriteHeader(http.StatusCreated)
			return json.NewEncoder(w).Encode(&AddReply{ID: id})
		})

		g.DELETE("/nodes/:id", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			id, err := parseID(route.Params.Get("id"))
			if err != nil {
				return err
			}

			if err := core.DeleteNode(r.Context(), id); err != nil {
				return fmt.Errorf("node %d: %w", id, err)
			}
			countChange(r, "delete")

			w.WriteHeader(http.StatusNoContent)
			return nil
		})

		g.GET("/nodes/:id/predecessor", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			id, err := parseID(route.Params.Get("id"))
			if err != nil {
				return err
			}

			p, err := core.Predecessor(r.Context(), id)
			if err != nil {
				return fmt.Errorf("node %d: %w", id, err)
			}
			return json.NewEncoder(w).Encode(&NodeReply{ID: p.ID})
		})

		g.GET("/search/:key", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			key, err := parseID(route.Params.Get("key"))
			if err != nil {
				return err
			}

			n, err := core.Search(r.Context(), key)
			if err != nil {
				return fmt.Errorf("key %d: %w", key, err)
			}
			return json.NewEncoder(w).Encode(&SearchReply{Key: key, Node: n.ID})
		})

		g.GET("/ring", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			ids, err := core.GetRing(r.Context())
			if err != nil {
				return err
			}
			return json.NewEncoder(w).Encode(&RingReply{MaxID: core.MaxID(), Nodes: ids})
		})

		g.GET("/dump", func(w http.ResponseWriter, r *http.Request, route shift.Route) error {
			d, ok := core.(interface{ Dump() string })
			if !ok {
				return &ErrorReply{Status: http.StatusNotImplemented}
			}

			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, err := w.Write([]byte(d.Dump()))
			return err
		})
	})

	handler := AccessLog(logger, router.Serve())
	return &Router{otelhttp.NewHandler(handler, "chord")}
}

// parseID rejects anything that is not an unsigned integer instead of treating it as 0.
func parseID(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &ErrorReply{Status: http.StatusBadRequest, Err: fmt.Errorf("%q is not a valid id", s)}
	}
	return v, nil
}
