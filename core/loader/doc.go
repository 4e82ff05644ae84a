// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and registers its own
// routes when loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order and loads the enabled
// ones through LoadAll.
package loader
