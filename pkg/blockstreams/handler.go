package blockstreams

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/robertlopezdev/queryapi/api/proto"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// Handler is the gRPC-backed StreamHandler talking to the block streamer
// service.
type Handler struct {
	conn   *grpc.ClientConn
	client proto.BlockStreamerClient
}

// Connect creates a Handler for the block streamer at addr. The connection
// is established lazily; a streamer that is down surfaces as RPC errors
// during synchronisation, not here.
func Connect(addr string) (*Handler, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to block streamer at %s: %w", addr, err)
	}

	return &Handler{
		conn:   conn,
		client: proto.NewBlockStreamerClient(conn),
	}, nil
}

// Close closes the underlying connection
func (h *Handler) Close() error {
	return h.conn.Close()
}

// List returns every running block stream with its reported version
func (h *Handler) List(ctx context.Context) ([]types.StreamInfo, error) {
	resp, err := h.client.ListStreams(ctx, &proto.ListStreamsRequest{})
	if err != nil {
		return nil, err
	}

	streams := make([]types.StreamInfo, 0, len(resp.Streams))
	for _, stream := range resp.Streams {
		streams = append(streams, types.StreamInfo{
			StreamID:     stream.StreamId,
			AccountID:    stream.AccountId,
			FunctionName: stream.FunctionName,
			Version:      stream.Version,
		})
	}
	return streams, nil
}

// Start starts a block stream for the indexer at the given height
func (h *Handler) Start(ctx context.Context, startBlockHeight uint64, config types.IndexerConfig) error {
	_, err := h.client.StartStream(ctx, &proto.StartStreamRequest{
		StartBlockHeight: startBlockHeight,
		AccountId:        string(config.AccountID),
		FunctionName:     config.FunctionName,
		Version:          config.RegistryVersion(),
		Rule: &proto.MatchingRule{
			AffectedAccountId: config.Rule.AffectedAccountID,
			Status:            string(config.Rule.Status),
		},
	})
	return err
}

// Stop stops the block stream with the given identifier
func (h *Handler) Stop(ctx context.Context, streamID string) error {
	_, err := h.client.StopStream(ctx, &proto.StopStreamRequest{StreamId: streamID})
	return err
}
