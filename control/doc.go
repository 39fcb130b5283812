// Package control
// Author: momentics <momentics@gmail.com>
//
// Diagnostics for queue and share instances: a registry producing
// human-readable status reports (one line per registered entity) and a
// probe collector for machine-readable state snapshots. Everything here
// is off the producer/consumer hot path and may allocate freely.
package control
