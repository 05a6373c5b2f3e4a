// Package factory provides a priority-ordered registry of named constructors.
//
// Independently written modules each contribute constructors for a shared
// interface type. The registry keeps its entries sorted by (priority, name)
// after every registration, so the final order is a pure function of the
// recorded pairs and never depends on the order modules registered in.
//
// # Registration
//
// Each module exposes a [Module] function and the application calls them
// once during startup, before any lookups:
//
//	func Module(r *factory.Registry[Renderer]) {
//	    r.Register("mesh", func() Renderer { return &meshRenderer{} }, 10)
//	}
//
//	renderers := factory.New[Renderer]()
//	renderers.RegisterModules(mesh.Module, points.Module)
//
// # Lookup
//
// [Registry.Create] looks an entry up by name and [Registry.CreateAt] by its
// position in sorted order. Both report a miss with false rather than an
// error.
//
// # Context
//
// Constructors that need an application-owned context read it from a
// [Provider] through [Adapt]. The provider must be installed before any such
// constructor runs.
package factory
