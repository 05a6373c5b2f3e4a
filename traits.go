package gpures

// Traits is the backing-system contract for one resource kind.
//
// CreateBatch fills every slot of dst. On error it may leave some slots
// populated; the caller destroys those, so implementations must not.
// Destroy calls are assumed to succeed and are never retried.
type Traits interface {
	// Kind returns the kind these traits manage.
	Kind() Kind

	// CreateOne creates a single object.
	CreateOne() (Handle, error)

	// CreateBatch creates len(dst) objects in one call.
	CreateBatch(dst []Handle) error

	// DestroyOne destroys a single object.
	DestroyOne(h Handle)

	// DestroyBatch destroys all handles in one call.
	DestroyBatch(hs []Handle)
}

// Backend is a backing rendering system able to create and destroy objects.
type Backend interface {
	// Name returns the backend identifier (e.g., "memory", "gl", "native").
	Name() string

	// Traits returns the create/destroy contract for kind k,
	// or an error wrapping ErrUnsupportedKind.
	Traits(k Kind) (Traits, error)

	// Close releases backend-wide state. Wrappers created from the
	// backend should be destroyed before Close.
	Close() error
}
