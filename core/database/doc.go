// Package database provides the GORM connection used for run history.
//
// The default driver is sqlite (a single file alongside the snapshot data),
// which suits the single-process CLI model. MySQL is supported for
// deployments that centralize history across machines.
package database
