// Package scrape ties a Fetcher, an Extractor and a Summarizer into the
// single-page summarization flow.
package scrape
