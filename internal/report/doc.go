// Package report renders dispersion curves and stack sweeps as
// standalone interactive HTML charts.
package report
