package server

import (
	"context"

	"github.com/Quarmire/chord/chord"
	"github.com/Quarmire/chord/node/transport"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const tracerName = "github.com/Quarmire/chord/node/server"

type Server struct {
	transport.UnimplementedRingServer

	chord  chord.Core
	logger logr.Logger
	tracer trace.Tracer
}

func New(chord chord.Core, logger logr.Logger) *Server {
	return &Server{
		chord:  chord,
		logger: logger.WithName("grpc"),
		tracer: otel.Tracer(tracerName),
	}
}

func (s *Server) MaxID(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	return wrapperspb.UInt64(s.chord.MaxID()), nil
}

func (s *Server) AddNode(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.UInt64Value, error) {
	ctx, span := s.tracer.Start(ctx, "chord.AddNode")
	defer span.End()

	id, err := s.chord.AddNode(ctx)
	if err != nil {
		return nil, s.fail(span, "add node", err)
	}

	span.SetAttributes(attribute.Int64("chord.node", int64(id)))
	return wrapperspb.UInt64(id), nil
}

func (s *Server) DeleteNode(ctx context.Context, request *wrapperspb.UInt64Value) (*emptypb.Empty, error) {
	ctx, span := s.tracer.Start(ctx, "chord.DeleteNode", trace.WithAttributes(attribute.Int64("chord.node", int64(request.GetValue()))))
	defer span.End()

	if err := s.chord.DeleteNode(ctx, request.GetValue()); err != nil {
		return nil, s.fail(span, "delete node", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Search(ctx context.Context, request *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	ctx, span := s.tracer.Start(ctx, "chord.Search", trace.WithAttributes(attribute.Int64("chord.key", int64(request.GetValue()))))
	defer span.End()

	n, err := s.chord.Search(ctx, request.GetValue())
	if err != nil {
		return nil, s.fail(span, "search", err)
	}

	span.SetAttributes(attribute.Int64("chord.node", int64(n.ID)))
	return wrapperspb.UInt64(n.ID), nil
}

func (s *Server) Predecessor(ctx context.Context, request *wrapperspb.UInt64Value) (*wrapperspb.UInt64Value, error) {
	ctx, span := s.tracer.Start(ctx, "chord.Predecessor", trace.WithAttributes(attribute.Int64("chord.node", int64(request.GetValue()))))
	defer span.End()

	p, err := s.chord.Predecessor(ctx, request.GetValue())
	if err != nil {
		return nil, s.fail(span, "predecessor", err)
	}
	return wrapperspb.UInt64(p.ID), nil
}

func (s *Server) GetRing(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	ids, err := s.chord.GetRing(ctx)
	if err != nil {
		return nil, transport.ToStatus(err)
	}

	reply := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(ids))}
	for _, id := range ids {
		reply.Values = append(reply.Values, structpb.NewNumberValue(float64(id)))
	}
	return reply, nil
}

func (s *Server) fail(span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.V(1).Info("request rejected", "op", op, "reason", err.Error())
	return transport.ToStatus(err)
}
