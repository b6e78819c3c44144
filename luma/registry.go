package luma

import (
	"fmt"
	"sort"
	"sync"
)

// KernelEntry is a named kernel variant.
type KernelEntry struct {
	// Name is the lookup key (e.g. "magnitude").
	Name string

	// Description is a one-line summary for listings.
	Description string

	Kernel Kernel
}

// Registry maps kernel names to kernels. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]KernelEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]KernelEntry)}
}

// Kernels is the default registry. It holds the built-in kernels
// "magnitude", "theta" and "rho".
var Kernels = NewRegistry()

func init() {
	for _, e := range []KernelEntry{
		{Name: DefaultKernelName, Description: "gradient magnitude passed through unchanged", Kernel: Magnitude},
		{Name: "theta", Description: "normalized Hough angle", Kernel: Theta},
		{Name: "rho", Description: "normalized Hough distance", Kernel: Rho},
	} {
		if err := Kernels.Register(e); err != nil {
			panic(err)
		}
	}
}

// Register adds a kernel. Names must be unique and the kernel non-nil.
func (r *Registry) Register(entry KernelEntry) error {
	if entry.Name == "" || entry.Kernel == nil {
		return ErrInvalidKernel
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKernel, entry.Name)
	}
	r.entries[entry.Name] = entry
	return nil
}

// Lookup returns the kernel registered under name.
func (r *Registry) Lookup(name string) (Kernel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return e.Kernel, nil
}

// List returns all entries sorted by name.
func (r *Registry) List() []KernelEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]KernelEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	entries := r.List()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
