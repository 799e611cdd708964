// Package registry maps the closed set of supported cities to the tabular
// files that back them.
//
// The mapping is declared in HCL. A built-in document is embedded in the
// binary and resolves file paths against the configured data directory
// through the `data_dir` variable:
//
//	source "chicago" {
//	  file = "${data_dir}/chicago.csv"
//	}
//
// A Registry is built once at startup and never mutated afterwards.
package registry
