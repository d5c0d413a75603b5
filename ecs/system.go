package ecs

// System represents a behavior that operates on entities with specific
// components. User-defined systems implement this interface and can include
// View, Query, and Singleton fields, as well as custom state that persists
// between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
