// Package logger provides a thin zerolog wrapper with component tagging
// and a no-op construction for callers that opt out of logging.
//
//	log := logger.NewDefault().WithComponent("restclient")
//	log.Debug("request sent", logger.Fields("method", "GET", "status", 200))
//
// Logging must never break the caller: zerolog swallows writer errors,
// and Nop() produces a logger that discards everything at zero cost.
package logger
