// Package logger builds the application's zap logger.
//
// Level "debug" selects zap's development config, anything else the
// production config. Format "console" switches to a colored console encoder;
// the default is JSON. Unknown levels and formats are rejected. WithRayID attaches the request's ray id (set by the
// rayid middleware) to a logger so request logs can be correlated.
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithRayID(log, c)
//	l.Error("Item translation failed", zap.Error(err))
package logger
