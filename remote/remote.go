package remote

import (
	"context"
	"fmt"

	"github.com/Quarmire/chord/node"
	"github.com/Quarmire/chord/node/transport"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a chord.Core backed by a ring served over gRPC.
type Client struct {
	conn  *grpc.ClientConn
	ring  transport.RingClient
	maxID uint64
}

// Dial connects to addr and fetches the ring's keyspace size.
func Dial(ctx context.Context, addr string, opts ...grpc.DialOption) (*Client, error) {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}, opts...)

	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", addr, err)
	}

	c := &Client{conn: conn, ring: transport.NewRingClient(conn)}
	reply, err := c.ring.MaxID(ctx, &emptypb.Empty{})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("fetch ring size from %s: %w", addr, err)
	}
	c.maxID = reply.GetValue()

	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) MaxID() uint64 {
	return c.maxID
}

func (c *Client) AddNode(ctx context.Context) (uint64, error) {
	reply, err := c.ring.AddNode(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, transport.FromStatus(err)
	}
	return reply.GetValue(), nil
}

func (c *Client) DeleteNode(ctx context.Context, id uint64) error {
	_, err := c.ring.DeleteNode(ctx, wrapperspb.UInt64(id))
	return transport.FromStatus(err)
}

func (c *Client) Search(ctx context.Context, key uint64) (node.Node, error) {
	reply, err := c.ring.Search(ctx, wrapperspb.UInt64(key))
	if err != nil {
		return node.Node{}, transport.FromStatus(err)
	}
	return node.Node{ID: reply.GetValue()}, nil
}

func (c *Client) Predecessor(ctx context.Context, id uint64) (node.Node, error) {
	reply, err := c.ring.Predecessor(ctx, wrapperspb.UInt64(id))
	if err != nil {
		return node.Node{}, transport.FromStatus(err)
	}
	return node.Node{ID: reply.GetValue()}, nil
}

func (c *Client) GetRing(ctx context.Context) ([]uint64, error) {
	reply, err := c.ring.GetRing(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, transport.FromStatus(err)
	}

	ids := make([]uint64, 0, len(reply.GetValues()))
	for _, v := range reply.GetValues() {
		num, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || num.NumberValue < 0 {
			return nil, fmt.Errorf("unexpected ring entry %v", v)
		}
		ids = append(ids, uint64(num.NumberValue))
	}
	return ids, nil
}
