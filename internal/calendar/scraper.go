package calendar

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	scrapeMonthErrorTemplateConstant   = "scrape aborted at month %04d-%02d: %w"
	scrapeMonthDebugMessageConstant    = "scraped calendar month"
	scrapeFinishedInfoMessageConstant  = "calendar scrape finished"
	scraperLogFieldMonthConstant       = "month"
	scraperLogFieldEventCountConstant  = "event_count"
	scraperLogFieldTotalEventsConstant = "total_events"
	scraperLogFieldMonthCountConstant  = "month_count"
)

// Scraper orchestrates fetching and parsing across a month window.
type Scraper struct {
	fetcher  *Fetcher
	parser   *Parser
	enricher *DetailEnricher
	logger   *zap.Logger
}

// NewScraper assembles a Scraper. The enricher is optional.
func NewScraper(logger *zap.Logger, fetcher *Fetcher, parser *Parser, enricher *DetailEnricher) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scraper{fetcher: fetcher, parser: parser, enricher: enricher, logger: logger}
}

// Scrape collects events for every month in the window.
//
// A failed month aborts the scrape so a truncated calendar is never treated
// as a successful run.
func (scraper *Scraper) Scrape(executionContext context.Context, window MonthWindow) ([]Event, error) {
	months := window.Months()
	allEvents := make([]Event, 0)

	for _, month := range months {
		ajaxCommands, fetchError := scraper.fetcher.FetchMonth(executionContext, month)
		if fetchError != nil {
			return nil, fmt.Errorf(scrapeMonthErrorTemplateConstant, month.Year, int(month.Month), fetchError)
		}

		monthEventCount := 0
		for _, fragment := range InsertFragments(ajaxCommands) {
			fragmentEvents, parseError := scraper.parser.ParseEvents(fragment)
			if parseError != nil {
				return nil, fmt.Errorf(scrapeMonthErrorTemplateConstant, month.Year, int(month.Month), parseError)
			}
			allEvents = append(allEvents, fragmentEvents...)
			monthEventCount += len(fragmentEvents)
		}

		scraper.logger.Debug(
			scrapeMonthDebugMessageConstant,
			zap.String(scraperLogFieldMonthConstant, fmt.Sprintf(monthArgumentTemplateConstant, month.Year, int(month.Month))),
			zap.Int(scraperLogFieldEventCountConstant, monthEventCount),
		)
	}

	if scraper.enricher != nil {
		scraper.enricher.Enrich(allEvents)
	}

	scraper.logger.Info(
		scrapeFinishedInfoMessageConstant,
		zap.Int(scraperLogFieldMonthCountConstant, len(months)),
		zap.Int(scraperLogFieldTotalEventsConstant, len(allEvents)),
	)

	return allEvents, nil
}
