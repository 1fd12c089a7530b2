package app

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/Bryan-Quispe/Computer-Parts/platform/logger"
)

const (
	defaultAppName        = "parts-app"
	defaultAppPort        = "8000"
	defaultHealthPath     = "/health"
	defaultStartupTimeout = 2 * time.Minute
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	Name          string
	DockerfileDir string
	Dockerfile    string
	Port          string
	HealthPath    string
	Env           map[string]string
	Networks      []string
	LogOutput     io.Writer
	StartupWait   wait.Strategy
	Logger        Logger
}

// Container is the HTTP service built from a Dockerfile and started on the
// suite network.
type Container struct {
	container    testcontainers.Container
	externalHost string
	externalPort string
	cfg          *Config
}

func NewContainer(ctx context.Context, opts ...Option) (*Container, error) {
	cfg := &Config{
		Name:          defaultAppName,
		Port:          defaultAppPort,
		HealthPath:    defaultHealthPath,
		Dockerfile:    "Dockerfile",
		DockerfileDir: ".",
		LogOutput:     io.Discard,
		Env:           make(map[string]string),
		Logger:        &logger.NoopLogger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.StartupWait == nil {
		cfg.StartupWait = wait.ForHTTP(cfg.HealthPath).
			WithPort(nat.Port(cfg.Port + "/tcp")).
			WithStatusCodeMatcher(func(status int) bool { return status == http.StatusOK }).
			WithStartupTimeout(defaultStartupTimeout)
	}

	req := testcontainers.ContainerRequest{
		Name: cfg.Name,
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    cfg.DockerfileDir,
			Dockerfile: cfg.Dockerfile,
		},
		Networks:           cfg.Networks,
		Env:                cfg.Env,
		WaitingFor:         cfg.StartupWait,
		ExposedPorts:       []string{cfg.Port + "/tcp"},
		HostConfigModifier: DefaultHostConfig(),
	}

	genericContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, errors.Errorf("failed to start app container: %v", err)
	}

	mappedPort, err := genericContainer.MappedPort(ctx, nat.Port(cfg.Port+"/tcp"))
	if err != nil {
		return nil, errors.Errorf("failed to get mapped port: %v", err)
	}

	host, err := genericContainer.Host(ctx)
	if err != nil {
		return nil, errors.Errorf("failed to get container host: %v", err)
	}

	go streamContainerLogs(ctx, genericContainer, cfg.Logger, cfg.LogOutput)

	addr := net.JoinHostPort(host, mappedPort.Port())
	cfg.Logger.Info(ctx, "App container started", zap.String("address", addr))

	return &Container{
		container:    genericContainer,
		externalHost: host,
		externalPort: mappedPort.Port(),
		cfg:          cfg,
	}, nil
}

func (a *Container) Address() string {
	return net.JoinHostPort(a.externalHost, a.externalPort)
}

// BaseURL is the http root of the service as seen from the test process.
func (a *Container) BaseURL() string {
	return "http://" + a.Address()
}

func (a *Container) Terminate(ctx context.Context) error {
	return a.container.Terminate(ctx)
}

func streamContainerLogs(ctx context.Context, c testcontainers.Container, log Logger, out io.Writer) {
	logs, err := c.Logs(ctx)
	if err != nil {
		log.Error(ctx, "failed to get container logs", zap.Error(err))
		return
	}
	defer func() {
		if cerr := logs.Close(); cerr != nil {
			log.Error(ctx, "failed to close container logs", zap.Error(cerr))
		}
	}()

	if _, err := io.Copy(out, logs); err != nil && !errors.Is(err, io.EOF) {
		log.Error(ctx, "error copying container logs", zap.Error(err))
	}
}

func DefaultHostConfig() func(hc *container.HostConfig) {
	return func(hc *container.HostConfig) {
		hc.AutoRemove = true
	}
}
