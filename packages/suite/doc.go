// Package suite runs named smoke-test cases one after another.
//
// Each case is routed by its name (see package route), sent through the
// http client, logged and checked against its expected status code. The
// first transport error or status mismatch ends the run; the cases after it
// are reported as not run.
package suite
