// Package report renders aggregator results and pages through raw trip rows
// on the conversational output stream.
package report
