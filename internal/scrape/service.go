package scrape

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/galkatzh/JAMD-events/internal/calendar"
	"github.com/galkatzh/JAMD-events/internal/output"
)

const (
	serviceFinishedInfoMessageConstant = "scrape artifacts written"
	serviceLogFieldEventCountConstant  = "event_count"
	serviceLogFieldArtifactsConstant   = "artifacts"
)

// Outcome reports what a scrape run produced.
type Outcome struct {
	EventCount    int
	ArtifactPaths []string
}

// Service performs a full scrape: fetch, parse, optionally enrich, and write artifacts.
type Service struct {
	logger        *zap.Logger
	configuration CommandConfiguration
	scraper       *calendar.Scraper
	writer        *output.Writer
}

// NewService assembles a scrape service from configuration.
func NewService(logger *zap.Logger, configuration CommandConfiguration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	sanitizedConfiguration := configuration.sanitize()

	fetcher := calendar.NewFetcher(logger, calendar.FetcherOptions{
		EndpointURL:    sanitizedConfiguration.EndpointURL,
		RequestTimeout: sanitizedConfiguration.RequestTimeout,
	})
	parser := calendar.NewParser(sanitizedConfiguration.SiteBaseURL)

	var enricher *calendar.DetailEnricher
	if sanitizedConfiguration.EnrichDetails {
		enricher = calendar.NewDetailEnricher(logger)
	}

	return &Service{
		logger:        logger,
		configuration: sanitizedConfiguration,
		scraper:       calendar.NewScraper(logger, fetcher, parser, enricher),
		writer:        output.NewWriter(logger, sanitizedConfiguration.OutputDirectory),
	}
}

// Run scrapes the configured month window and writes all artifacts.
func (service *Service) Run(executionContext context.Context) (Outcome, error) {
	window := calendar.NewMonthWindow(time.Now(), service.configuration.MonthsAhead)

	events, scrapeError := service.scraper.Scrape(executionContext, window)
	if scrapeError != nil {
		return Outcome{}, scrapeError
	}

	writtenPaths, writeError := service.writer.WriteAll(events)
	if writeError != nil {
		return Outcome{}, writeError
	}

	service.logger.Info(
		serviceFinishedInfoMessageConstant,
		zap.Int(serviceLogFieldEventCountConstant, len(events)),
		zap.Strings(serviceLogFieldArtifactsConstant, writtenPaths),
	)

	return Outcome{EventCount: len(events), ArtifactPaths: writtenPaths}, nil
}
