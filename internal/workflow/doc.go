// Package workflow sequences the scrape and publish operations behind the
// sync command, wrapping operation failures with the operation name.
package workflow
