package calendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/galkatzh/JAMD-events/internal/calendar"
)

const (
	testMonthResponseBodyConstant = `[{"command":"settings","data":""},{"command":"insert","data":"<div>calendar</div>"}]`
	testJSONContentTypeConstant   = "application/json"
	testHTMLContentTypeConstant   = "text/html"
	testViewArgsParameterConstant = "view_args"
	testExpectedViewArgsConstant  = "2026-03"
)

func newFetcherForServer(server *httptest.Server) *calendar.Fetcher {
	return calendar.NewFetcher(nil, calendar.FetcherOptions{
		EndpointURL:    server.URL,
		RequestTimeout: 5 * time.Second,
	})
}

func TestFetcherPostsDrupalViewsForm(testInstance *testing.T) {
	var recordedMethod string
	var recordedViewArgs string
	var recordedRequestedWith string

	server := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		recordedMethod = request.Method
		require.NoError(testInstance, request.ParseForm())
		recordedViewArgs = request.FormValue(testViewArgsParameterConstant)
		recordedRequestedWith = request.Header.Get("X-Requested-With")

		responseWriter.Header().Set("Content-Type", testJSONContentTypeConstant)
		_, _ = responseWriter.Write([]byte(testMonthResponseBodyConstant))
	}))
	defer server.Close()

	fetcher := newFetcherForServer(server)
	ajaxCommands, fetchError := fetcher.FetchMonth(context.Background(), calendar.YearMonth{Year: 2026, Month: time.March})
	require.NoError(testInstance, fetchError)

	require.Equal(testInstance, http.MethodPost, recordedMethod)
	require.Equal(testInstance, testExpectedViewArgsConstant, recordedViewArgs)
	require.Equal(testInstance, "XMLHttpRequest", recordedRequestedWith)

	fragments := calendar.InsertFragments(ajaxCommands)
	require.Len(testInstance, fragments, 1)
	require.Equal(testInstance, "<div>calendar</div>", fragments[0])
}

func TestFetcherFallsBackToGetWhenPostRejected(testInstance *testing.T) {
	var recordedMethods []string

	server := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		recordedMethods = append(recordedMethods, request.Method)
		if request.Method == http.MethodPost {
			responseWriter.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		responseWriter.Header().Set("Content-Type", testJSONContentTypeConstant)
		_, _ = responseWriter.Write([]byte(testMonthResponseBodyConstant))
	}))
	defer server.Close()

	fetcher := newFetcherForServer(server)
	ajaxCommands, fetchError := fetcher.FetchMonth(context.Background(), calendar.YearMonth{Year: 2026, Month: time.March})
	require.NoError(testInstance, fetchError)
	require.Equal(testInstance, []string{http.MethodPost, http.MethodGet}, recordedMethods)
	require.Len(testInstance, calendar.InsertFragments(ajaxCommands), 1)
}

func TestFetcherRejectsNonJSONResponses(testInstance *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		responseWriter.Header().Set("Content-Type", testHTMLContentTypeConstant)
		_, _ = responseWriter.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	fetcher := newFetcherForServer(server)
	_, fetchError := fetcher.FetchMonth(context.Background(), calendar.YearMonth{Year: 2026, Month: time.March})
	require.Error(testInstance, fetchError)
	require.Contains(testInstance, fetchError.Error(), "non-JSON")
}

func TestFetcherReportsErrorStatuses(testInstance *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(responseWriter http.ResponseWriter, request *http.Request) {
		responseWriter.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := newFetcherForServer(server)
	_, fetchError := fetcher.FetchMonth(context.Background(), calendar.YearMonth{Year: 2026, Month: time.March})
	require.Error(testInstance, fetchError)
}
