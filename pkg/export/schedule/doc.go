// Package schedule runs exports on a cron schedule for watch mode.
//
// A Scheduler triggers a job function on a standard cron expression and an
// optional FileWatcher reloads the inventory when its file changes between
// ticks, with debouncing so editor save storms cause one reload.
package schedule
