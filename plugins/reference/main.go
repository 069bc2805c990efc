package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	notifyrpc "daytrack/internal/modules/notify/adapter/out/rpc"

	"github.com/hashicorp/go-plugin"
)

// Reference notifier. Appends each event to the file named by
// DAYTRACK_NOTIFY_LOG, or discards when the variable is unset.
type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *notifyrpc.Empty) (*notifyrpc.Metadata, error) {
	return &notifyrpc.Metadata{
		Name:    "reference",
		Version: "1.0.0",
		Kinds:   []string{"motivation", "progress"},
	}, nil
}

func (s *server) Notify(_ context.Context, in *notifyrpc.NotifyRequest) (*notifyrpc.NotifyResponse, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return &notifyrpc.NotifyResponse{Accepted: false, Detail: "empty message"}, nil
	}
	logPath := os.Getenv("DAYTRACK_NOTIFY_LOG")
	if logPath == "" {
		return &notifyrpc.NotifyResponse{Accepted: true, Detail: "discarded"}, nil
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &notifyrpc.NotifyResponse{Accepted: false, Detail: err.Error()}, nil
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s %s %s\n", in.OccurredAt, in.Kind, message); err != nil {
		return &notifyrpc.NotifyResponse{Accepted: false, Detail: err.Error()}, nil
	}
	return &notifyrpc.NotifyResponse{Accepted: true, Detail: "logged"}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: notifyrpc.HandshakeConfig,
		Plugins:         notifyrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
