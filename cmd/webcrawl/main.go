// Command webcrawl runs the breadth-first crawler from the command line,
// in one of three execution shapes: sequential, threads, or async.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haldorsen/webcrawl/internal/crawler"
	"github.com/haldorsen/webcrawl/internal/crawllog"
	"github.com/haldorsen/webcrawl/internal/crawlurl"
	"github.com/haldorsen/webcrawl/internal/httpfetch"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		workers   int
		depth     int
		mode      string
		timeout   int
		userAgent string
	)

	cmd := &cobra.Command{
		Use:   "webcrawl <url>",
		Short: "Breadth-first crawl a site starting from a seed URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := crawlurl.ValidateSeed(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			if workers < 1 {
				workers = 1
			}
			if depth < 0 {
				depth = 0
			}

			logger, err := crawllog.New()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync()

			fetcher := httpfetch.New(httpfetch.Config{
				ConnectTimeout: time.Duration(timeout) * time.Second,
				UserAgent:      userAgent,
			})

			cfg := crawler.Config{
				Seed:        seed.String(),
				MaxDepth:    uint16(depth),
				Concurrency: workers,
				Fetcher:     fetcher,
				Output:      os.Stdout,
				Logger:      logger,
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			return crawler.Run(ctx, crawler.Mode(mode), cfg)
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrency bound (W); values below 1 are clamped to 1")
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "maximum link distance from the seed (D)")
	cmd.Flags().StringVarP(&mode, "mode", "m", "threads", "coordinator variant: sequential|threads|async")
	cmd.Flags().IntVar(&timeout, "timeout", 10, "connect timeout in seconds")
	cmd.Flags().StringVar(&userAgent, "user-agent", httpfetch.DefaultUserAgent, "User-Agent header sent with every fetch")

	return cmd
}
