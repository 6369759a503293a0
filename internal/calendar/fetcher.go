package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultEndpointURLConstant    = "https://www.jamd.ac.il/views/ajax"
	defaultRequestTimeoutConstant = 10 * time.Second

	viewNameFormValueConstant      = "calendar_event"
	viewDisplayFormValueConstant   = "block_calendar_secondary"
	viewPathFormValueConstant      = "calendar-of-events-page"
	viewBasePathFormValueConstant  = "calendar-node-field-event-date/month"
	viewDOMIdentifierValueConstant = "43a9961c501d60faa3159e34295a5dcb"
	pagerElementFormValueConstant  = "0"

	viewNameFormKeyConstant      = "view_name"
	viewDisplayFormKeyConstant   = "view_display_id"
	viewArgsFormKeyConstant      = "view_args"
	viewPathFormKeyConstant      = "view_path"
	viewBasePathFormKeyConstant  = "view_base_path"
	viewDOMIdentifierKeyConstant = "view_dom_id"
	pagerElementFormKeyConstant  = "pager_element"

	userAgentHeaderValueConstant      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	acceptHeaderValueConstant         = "application/json, text/javascript, */*; q=0.01"
	contentTypeHeaderValueConstant    = "application/x-www-form-urlencoded; charset=UTF-8"
	requestedWithHeaderValueConstant  = "XMLHttpRequest"
	refererHeaderValueConstant        = "https://www.jamd.ac.il/calendar-of-events-page"
	originHeaderValueConstant         = "https://www.jamd.ac.il"
	userAgentHeaderNameConstant       = "User-Agent"
	acceptHeaderNameConstant          = "Accept"
	contentTypeHeaderNameConstant     = "Content-Type"
	requestedWithHeaderNameConstant   = "X-Requested-With"
	refererHeaderNameConstant         = "Referer"
	originHeaderNameConstant          = "Origin"
	responseContentTypeHeaderConstant = "Content-Type"

	jsonContentTypeFragmentConstant       = "application/json"
	javascriptContentTypeFragmentConstant = "text/javascript"

	insertCommandNameConstant = "insert"

	monthArgumentTemplateConstant = "%04d-%02d"

	requestBuildErrorTemplateConstant       = "failed to build calendar request: %w"
	requestSendErrorTemplateConstant        = "failed to fetch calendar month %s: %w"
	unexpectedStatusErrorTemplateConstant   = "calendar endpoint returned status %d for month %s"
	unexpectedContentErrorTemplateConstant  = "calendar endpoint returned non-JSON content type %q for month %s"
	responseBodyReadErrorTemplateConstant   = "failed to read calendar response for month %s: %w"
	responseDecodeErrorTemplateConstant     = "failed to decode calendar response for month %s: %w"
	fetcherFetchingDebugMessageConstant     = "fetching calendar month"
	fetcherFetchedDebugMessageConstant      = "fetched calendar month"
	fetcherLogFieldMonthConstant            = "month"
	fetcherLogFieldCommandCountConstant     = "command_count"
	fetcherPostFallbackDebugMessageConstant = "POST rejected, retrying month as GET"
	fetcherLogFieldStatusConstant           = "status"
)

// AjaxCommand models one entry of the Drupal Views AJAX response array.
type AjaxCommand struct {
	Command string `json:"command"`
	Data    string `json:"data"`
}

// Fetcher retrieves monthly calendar fragments from the Drupal Views AJAX endpoint.
type Fetcher struct {
	endpointURL string
	httpClient  *http.Client
	logger      *zap.Logger
}

// FetcherOptions configures a Fetcher.
type FetcherOptions struct {
	EndpointURL    string
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// NewFetcher constructs a Fetcher with the supplied logger and options.
func NewFetcher(logger *zap.Logger, options FetcherOptions) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	endpointURL := options.EndpointURL
	if len(endpointURL) == 0 {
		endpointURL = defaultEndpointURLConstant
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		requestTimeout := options.RequestTimeout
		if requestTimeout <= 0 {
			requestTimeout = defaultRequestTimeoutConstant
		}
		httpClient = &http.Client{Timeout: requestTimeout}
	}

	return &Fetcher{endpointURL: endpointURL, httpClient: httpClient, logger: logger}
}

// FetchMonth retrieves the AJAX command list for a single month.
func (fetcher *Fetcher) FetchMonth(executionContext context.Context, month YearMonth) ([]AjaxCommand, error) {
	monthArgument := fmt.Sprintf(monthArgumentTemplateConstant, month.Year, int(month.Month))
	formValues := fetcher.buildFormValues(monthArgument)

	fetcher.logger.Debug(fetcherFetchingDebugMessageConstant, zap.String(fetcherLogFieldMonthConstant, monthArgument))

	response, requestError := fetcher.sendPost(executionContext, formValues)
	if requestError != nil {
		return nil, fmt.Errorf(requestSendErrorTemplateConstant, monthArgument, requestError)
	}

	// The endpoint occasionally rejects POST; the same values work as query parameters.
	if response.StatusCode != http.StatusOK {
		fetcher.logger.Debug(
			fetcherPostFallbackDebugMessageConstant,
			zap.String(fetcherLogFieldMonthConstant, monthArgument),
			zap.Int(fetcherLogFieldStatusConstant, response.StatusCode),
		)
		drainAndClose(response)

		response, requestError = fetcher.sendGet(executionContext, formValues)
		if requestError != nil {
			return nil, fmt.Errorf(requestSendErrorTemplateConstant, monthArgument, requestError)
		}
	}
	defer drainAndClose(response)

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(unexpectedStatusErrorTemplateConstant, response.StatusCode, monthArgument)
	}

	responseContentType := response.Header.Get(responseContentTypeHeaderConstant)
	if !strings.Contains(responseContentType, jsonContentTypeFragmentConstant) && !strings.Contains(responseContentType, javascriptContentTypeFragmentConstant) {
		return nil, fmt.Errorf(unexpectedContentErrorTemplateConstant, responseContentType, monthArgument)
	}

	responseBody, readError := io.ReadAll(response.Body)
	if readError != nil {
		return nil, fmt.Errorf(responseBodyReadErrorTemplateConstant, monthArgument, readError)
	}

	var ajaxCommands []AjaxCommand
	if decodeError := json.Unmarshal(responseBody, &ajaxCommands); decodeError != nil {
		return nil, fmt.Errorf(responseDecodeErrorTemplateConstant, monthArgument, decodeError)
	}

	fetcher.logger.Debug(
		fetcherFetchedDebugMessageConstant,
		zap.String(fetcherLogFieldMonthConstant, monthArgument),
		zap.Int(fetcherLogFieldCommandCountConstant, len(ajaxCommands)),
	)

	return ajaxCommands, nil
}

// InsertFragments returns the HTML payloads of insert commands in order.
func InsertFragments(ajaxCommands []AjaxCommand) []string {
	fragments := make([]string, 0, len(ajaxCommands))
	for _, ajaxCommand := range ajaxCommands {
		if ajaxCommand.Command != insertCommandNameConstant {
			continue
		}
		if len(ajaxCommand.Data) == 0 {
			continue
		}
		fragments = append(fragments, ajaxCommand.Data)
	}
	return fragments
}

func (fetcher *Fetcher) buildFormValues(monthArgument string) url.Values {
	formValues := url.Values{}
	formValues.Set(viewNameFormKeyConstant, viewNameFormValueConstant)
	formValues.Set(viewDisplayFormKeyConstant, viewDisplayFormValueConstant)
	formValues.Set(viewArgsFormKeyConstant, monthArgument)
	formValues.Set(viewPathFormKeyConstant, viewPathFormValueConstant)
	formValues.Set(viewBasePathFormKeyConstant, viewBasePathFormValueConstant)
	formValues.Set(viewDOMIdentifierKeyConstant, viewDOMIdentifierValueConstant)
	formValues.Set(pagerElementFormKeyConstant, pagerElementFormValueConstant)
	return formValues
}

func (fetcher *Fetcher) sendPost(executionContext context.Context, formValues url.Values) (*http.Response, error) {
	request, buildError := http.NewRequestWithContext(executionContext, http.MethodPost, fetcher.endpointURL, strings.NewReader(formValues.Encode()))
	if buildError != nil {
		return nil, fmt.Errorf(requestBuildErrorTemplateConstant, buildError)
	}
	fetcher.applyHeaders(request, true)
	return fetcher.httpClient.Do(request)
}

func (fetcher *Fetcher) sendGet(executionContext context.Context, formValues url.Values) (*http.Response, error) {
	requestURL := fetcher.endpointURL + "?" + formValues.Encode()
	request, buildError := http.NewRequestWithContext(executionContext, http.MethodGet, requestURL, nil)
	if buildError != nil {
		return nil, fmt.Errorf(requestBuildErrorTemplateConstant, buildError)
	}
	fetcher.applyHeaders(request, false)
	return fetcher.httpClient.Do(request)
}

func (fetcher *Fetcher) applyHeaders(request *http.Request, includeContentType bool) {
	request.Header.Set(userAgentHeaderNameConstant, userAgentHeaderValueConstant)
	request.Header.Set(acceptHeaderNameConstant, acceptHeaderValueConstant)
	request.Header.Set(requestedWithHeaderNameConstant, requestedWithHeaderValueConstant)
	request.Header.Set(refererHeaderNameConstant, refererHeaderValueConstant)
	request.Header.Set(originHeaderNameConstant, originHeaderValueConstant)
	if includeContentType {
		request.Header.Set(contentTypeHeaderNameConstant, contentTypeHeaderValueConstant)
	}
}

func drainAndClose(response *http.Response) {
	if response == nil || response.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, response.Body)
	_ = response.Body.Close()
}
