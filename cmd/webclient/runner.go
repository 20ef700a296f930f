package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/springmovies/webclient/pkg/alert"
	"github.com/springmovies/webclient/pkg/authapi"
	"github.com/springmovies/webclient/pkg/clientip"
	"github.com/springmovies/webclient/pkg/cookie"
	"github.com/springmovies/webclient/pkg/httpserver"
	"github.com/springmovies/webclient/pkg/logger"
	"github.com/springmovies/webclient/pkg/messages"
	"github.com/springmovies/webclient/pkg/ratelimiter"
	"github.com/springmovies/webclient/pkg/redis"
	"github.com/springmovies/webclient/pkg/routegate"
	"github.com/springmovies/webclient/pkg/session"
)

// Runner holds the dependencies of the CLI commands.
type Runner struct {
	logger *slog.Logger
	output io.Writer
	load   func() (Config, error)
}

type RunnerOpts struct {
	Logger *slog.Logger
	Output io.Writer
	// Load defaults to reading the environment.
	Load func() (Config, error)
}

func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Load == nil {
		opts.Load = loadConfig
	}
	return &Runner{logger: opts.Logger, output: opts.Output, load: opts.Load}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "serve",
			Usage:  "Run the web server",
			Action: r.Serve,
		},
		{
			Name:   "routes",
			Usage:  "Print the route table",
			Action: r.Routes,
		},
	}
}

// Serve runs the HTTP server until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, _ *cli.Command) error {
	cfg, err := r.load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return fmt.Errorf("cookies: %w", err)
	}

	sessionOpts := []session.Option{
		session.WithCookieManager(cookies),
		session.WithLogger(r.logger),
	}
	var checks []httpserver.Check
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer client.Close()

		sessionOpts = append(sessionOpts, session.WithStore(
			session.NewRedisStore(redis.NewStorage(client, cfg.Redis.KeyPrefix)),
		))
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})
		r.logger.InfoContext(ctx, "sessions stored in redis", logger.Component("serve"))
	}
	sessions := session.NewFromConfig(cfg.Session, sessionOpts...)

	api, err := authapi.New(cfg.API, authapi.WithLogger(r.logger))
	if err != nil {
		return fmt.Errorf("auth api: %w", err)
	}

	proxies, err := clientip.ParseTrustedProxies(cfg.Proxy.TrustedProxies)
	if err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	limits := ratelimiter.NewMemoryStore()
	defer limits.Close()
	bucket, err := ratelimiter.NewBucket(limits, cfg.Submit)
	if err != nil {
		return fmt.Errorf("submit rate limit: %w", err)
	}
	limit := ratelimiter.Middleware(bucket, ratelimiter.ByClientIP(http.MethodPost), r.logger)

	registry := alert.NewRegistryFromConfig(cfg.Alert, alert.WithLogger(r.logger))
	defer registry.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go registry.Run(runCtx, cfg.Alert.PruneInterval)

	handler := newRouter(routerDeps{
		Routes:   routeTable(api, limit, r.logger),
		Sessions: sessions,
		Alerts:   registry,
		Catalog:  messages.Default(),
		Checks:   checks,
		Logger:   r.logger,

		TrustedProxies: proxies,
	})

	srv := httpserver.New(cfg.HTTP,
		httpserver.WithLogger(r.logger),
		httpserver.WithShutdownHook(registry.Close),
	)
	r.logger.InfoContext(ctx, "starting web client",
		logger.Component("serve"),
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("api", cfg.API.BaseURL),
	)
	return srv.Run(runCtx, handler)
}

// Routes prints the route table with the sign-in requirement of each route.
func (r *Runner) Routes(_ context.Context, _ *cli.Command) error {
	return printRoutes(r.output, routeTable(nil, nil, r.logger))
}

func printRoutes(out io.Writer, table routegate.Table) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METHODS\tPATTERN\tAUTH")
	for _, route := range table {
		methods := "*"
		if len(route.Methods) > 0 {
			methods = strings.Join(route.Methods, ",")
		}
		auth := "-"
		if route.RequireAuth {
			auth = "required"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", methods, route.Pattern, auth)
	}
	return w.Flush()
}
