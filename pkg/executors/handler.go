package executors

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/robertlopezdev/queryapi/api/proto"
	"github.com/robertlopezdev/queryapi/pkg/types"
)

// Handler is the gRPC-backed ExecutorHandler talking to the runner service.
type Handler struct {
	conn   *grpc.ClientConn
	client proto.RunnerClient
}

// Connect creates a Handler for the runner at addr
func Connect(addr string) (*Handler, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to runner at %s: %w", addr, err)
	}

	return &Handler{
		conn:   conn,
		client: proto.NewRunnerClient(conn),
	}, nil
}

// Close closes the underlying connection
func (h *Handler) Close() error {
	return h.conn.Close()
}

// List returns every running executor with its reported version
func (h *Handler) List(ctx context.Context) ([]types.ExecutorInfo, error) {
	resp, err := h.client.ListExecutors(ctx, &proto.ListExecutorsRequest{})
	if err != nil {
		return nil, err
	}

	executors := make([]types.ExecutorInfo, 0, len(resp.Executors))
	for _, executor := range resp.Executors {
		executors = append(executors, types.ExecutorInfo{
			ExecutorID:   executor.ExecutorId,
			AccountID:    executor.AccountId,
			FunctionName: executor.FunctionName,
			Version:      executor.Version,
			Status:       executor.Status,
		})
	}
	return executors, nil
}

// Start starts an executor for the indexer
func (h *Handler) Start(ctx context.Context, config types.IndexerConfig) error {
	_, err := h.client.StartExecutor(ctx, &proto.StartExecutorRequest{
		AccountId:    string(config.AccountID),
		FunctionName: config.FunctionName,
		Code:         config.Code,
		Schema:       config.Schema,
		Version:      config.RegistryVersion(),
	})
	return err
}

// Stop stops the executor with the given identifier
func (h *Handler) Stop(ctx context.Context, executorID string) error {
	_, err := h.client.StopExecutor(ctx, &proto.StopExecutorRequest{ExecutorId: executorID})
	return err
}
