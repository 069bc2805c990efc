package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	notifyrpc "daytrack/internal/modules/notify/adapter/out/rpc"
	"daytrack/internal/modules/notify/domain"
	notifyout "daytrack/internal/modules/notify/port/out"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 5 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() notifyout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) CheckLifecycle(ctx context.Context, manifest domain.Manifest) error {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	if _, err := client.GetMetadata(callCtx); err != nil {
		return fmt.Errorf("get metadata: %w", err)
	}
	return nil
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()

	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	kinds := make([]domain.EventKind, 0, len(meta.Kinds))
	for _, kind := range meta.Kinds {
		kinds = append(kinds, domain.EventKind(kind))
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version, Kinds: kinds}, nil
}

func (h *GRPCHost) Notify(ctx context.Context, manifest domain.Manifest, event domain.Event) (domain.Receipt, error) {
	client, closeFn, err := h.connect(manifest, defaultStartTimeout)
	if err != nil {
		return domain.Receipt{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx, defaultCallTimeout)
	defer cancel()
	response, err := client.Notify(callCtx, &notifyrpc.NotifyRequest{
		Kind:       string(event.Kind),
		Message:    event.Message,
		OccurredAt: event.OccurredAt.Format(time.RFC3339),
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.Receipt{}, fmt.Errorf("%w: %s", domain.ErrNotifierTimeout, manifest.Name)
		}
		return domain.Receipt{}, fmt.Errorf("notify: %w", err)
	}
	return domain.Receipt{Accepted: response.Accepted, Detail: response.Detail}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest, startTimeout time.Duration) (notifyrpc.NotifierClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  notifyrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          notifyrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     startTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start notifier client: %w", err)
	}
	raw, err := rpcClient.Dispense(notifyrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense notifier: %w", err)
	}
	typed, ok := raw.(notifyrpc.NotifierClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("notifier rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, timeout)
}
