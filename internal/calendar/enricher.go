package calendar

import (
	"strings"
	"time"

	"github.com/gocolly/colly"
	"go.uber.org/zap"
)

const (
	detailBodySelectorConstant           = "div.field-name-body"
	enricherRandomDelayConstant          = 2 * time.Second
	enrichmentFailedDebugMessageConstant = "event detail enrichment failed"
	enricherLogFieldURLConstant          = "url"
)

// DetailEnricher visits event detail pages and captures their body text.
//
// Enrichment is best effort: a page that cannot be fetched or parsed leaves
// the event description empty and never fails the scrape.
type DetailEnricher struct {
	logger    *zap.Logger
	collector *colly.Collector
}

// NewDetailEnricher constructs an enricher with a polite crawl delay.
func NewDetailEnricher(logger *zap.Logger) *DetailEnricher {
	if logger == nil {
		logger = zap.NewNop()
	}

	collector := colly.NewCollector(colly.UserAgent(userAgentHeaderValueConstant))
	// The site does not tolerate rapid-fire requests.
	_ = collector.Limit(&colly.LimitRule{DomainGlob: "*", RandomDelay: enricherRandomDelayConstant})

	return &DetailEnricher{logger: logger, collector: collector}
}

// Enrich fills Description for every event with a detail URL, in place.
func (enricher *DetailEnricher) Enrich(events []Event) {
	descriptionsByURL := make(map[string]string)

	enricher.collector.OnHTML(detailBodySelectorConstant, func(element *colly.HTMLElement) {
		descriptionsByURL[element.Request.URL.String()] = strings.TrimSpace(element.Text)
	})
	enricher.collector.OnError(func(response *colly.Response, visitError error) {
		enricher.logger.Debug(
			enrichmentFailedDebugMessageConstant,
			zap.String(enricherLogFieldURLConstant, response.Request.URL.String()),
			zap.Error(visitError),
		)
	})

	for eventIndex := range events {
		if len(events[eventIndex].DetailURL) == 0 {
			continue
		}
		if visitError := enricher.collector.Visit(events[eventIndex].DetailURL); visitError != nil {
			enricher.logger.Debug(
				enrichmentFailedDebugMessageConstant,
				zap.String(enricherLogFieldURLConstant, events[eventIndex].DetailURL),
				zap.Error(visitError),
			)
		}
	}
	enricher.collector.Wait()

	for eventIndex := range events {
		if description, descriptionExists := descriptionsByURL[events[eventIndex].DetailURL]; descriptionExists {
			events[eventIndex].Description = description
		}
	}
}
