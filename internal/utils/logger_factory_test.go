package utils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/galkatzh/JAMD-events/internal/utils"
)

const (
	loggerFactorySubtestNameTemplateConstant = "%d_%s"
	testCaseSupportedLevelMessageConstant    = "supported level and format"
	testCaseUnknownLevelMessageConstant      = "unknown level is rejected"
	testCaseUnknownFormatMessageConstant     = "unknown format is rejected"
	testUnknownLogLevelConstant              = utils.LogLevel("verbose")
	testUnknownLogFormatConstant             = utils.LogFormat("plaintext")
)

func TestLoggerFactoryCreateLogger(testInstance *testing.T) {
	testCases := []struct {
		name          string
		logLevel      utils.LogLevel
		logFormat     utils.LogFormat
		expectSuccess bool
	}{
		{
			name:          testCaseSupportedLevelMessageConstant,
			logLevel:      utils.LogLevelDebug,
			logFormat:     utils.LogFormatConsole,
			expectSuccess: true,
		},
		{
			name:      testCaseUnknownLevelMessageConstant,
			logLevel:  testUnknownLogLevelConstant,
			logFormat: utils.LogFormatStructured,
		},
		{
			name:      testCaseUnknownFormatMessageConstant,
			logLevel:  utils.LogLevelInfo,
			logFormat: testUnknownLogFormatConstant,
		},
	}

	loggerFactory := utils.NewLoggerFactory()

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(loggerFactorySubtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			createdLogger, creationError := loggerFactory.CreateLogger(testCase.logLevel, testCase.logFormat)
			if testCase.expectSuccess {
				require.NoError(testInstance, creationError)
				require.NotNil(testInstance, createdLogger)
				return
			}
			require.Error(testInstance, creationError)
			require.Nil(testInstance, createdLogger)
		})
	}
}
