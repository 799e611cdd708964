// Package app contains the interactive controller of the bikeshare explorer.
// It owns the logger, the data source registry and the conversational loop
// that collects filters, loads trips, prints every report section, offers the
// raw data and asks whether to start over.
package app
