package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/pathwise/internal/cli"
	"github.com/alexanderramin/pathwise/internal/config"
	"github.com/alexanderramin/pathwise/internal/github"
	"github.com/alexanderramin/pathwise/internal/intelligence"
	"github.com/alexanderramin/pathwise/internal/llm"
	"github.com/alexanderramin/pathwise/internal/market"
	"github.com/alexanderramin/pathwise/internal/metrics"
	"github.com/alexanderramin/pathwise/internal/resume"
	"github.com/alexanderramin/pathwise/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Detect interactive terminal for forms, spinners and console logs.
	isInteractive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	logger := cfg.NewLogger(os.Stderr, isatty.IsTerminal(os.Stderr.Fd()))

	m := metrics.New()
	if cfg.MetricsFile != "" {
		defer func() {
			if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
				logger.Warn().Err(err).Str("path", cfg.MetricsFile).Msg("writing metrics textfile")
			}
		}()
	}

	app := &cli.App{
		Logger:        logger,
		IsInteractive: isInteractive,
		Resumes:       resume.NewLoader(nil),
	}

	if cfg.S3Enabled() {
		s3Client, err := resume.NewS3Client(ctx, resume.S3Options{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		})
		if err != nil {
			return fmt.Errorf("configuring s3: %w", err)
		}
		app.Resumes = resume.NewLoader(s3Client)
	}

	// Wire the text generator. A setup failure is kept on the App so the
	// offline commands still work without credentials.
	llmCfg, err := llm.LoadConfig()
	if err != nil {
		return err
	}
	observer := llm.MultiObserver{m}
	if llmCfg.LogCalls {
		observer = append(observer, llm.NewLogObserver(logger))
	}
	client, err := llm.NewClient(ctx, llmCfg, observer)
	if err != nil {
		app.SetupErr = fmt.Errorf("text generator: %w", err)
	} else {
		ghClient, err := github.NewClient(github.Options{
			Token:      cfg.GitHubToken,
			BaseURL:    cfg.GitHubBaseURL,
			HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		}, logger)
		if err != nil {
			return fmt.Errorf("configuring github: %w", err)
		}

		var postings service.PostingFetcher
		if cfg.MarketEnabled {
			postings = market.NewRemoteOK(cfg.MarketURL, cfg.HTTPTimeout)
		}

		useCases := service.NewLogUseCaseObserver(logger)
		advisor := intelligence.NewAdvisor(client)
		analyzer := service.NewAnalyzer(advisor, ghClient, postings, logger,
			service.WithPostingLimit(cfg.MarketLimit),
			service.WithStageRecorder(m),
			service.WithUseCaseObserver(useCases),
		)
		app.Session = service.NewSession(analyzer, advisor, logger,
			service.WithSessionObserver(useCases),
			service.WithTaskCounter(m),
		)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
