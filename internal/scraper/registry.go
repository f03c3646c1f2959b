package scraper

import "github.com/rotisserie/eris"

// Registry maps scraper names to their implementations.
type Registry struct {
	scrapers map[string]Scraper
	order    []string // insertion order for deterministic iteration
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scrapers: make(map[string]Scraper),
	}
}

// DefaultRegistry returns a registry holding every production scraper.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewHungary())
	r.Register(NewMoldova())
	for _, p := range NewPoland() {
		r.Register(p)
	}
	r.Register(NewSlovakia())
	return r
}

// Register adds a scraper to the registry. Registering a name again replaces
// the earlier scraper without duplicating its run slot.
func (r *Registry) Register(s Scraper) {
	name := s.Name()
	if _, ok := r.scrapers[name]; !ok {
		r.order = append(r.order, name)
	}
	r.scrapers[name] = s
}

// Get returns a scraper by name.
func (r *Registry) Get(name string) (Scraper, error) {
	s, ok := r.scrapers[name]
	if !ok {
		return nil, eris.Errorf("scraper: unknown source %q", name)
	}
	return s, nil
}

// Select returns the named scrapers, or every scraper when names is empty,
// in registration order.
func (r *Registry) Select(names []string) ([]Scraper, error) {
	if len(names) == 0 {
		return r.All(), nil
	}
	result := make([]Scraper, 0, len(names))
	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

// All returns all scrapers in registration order.
func (r *Registry) All() []Scraper {
	result := make([]Scraper, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.scrapers[name])
	}
	return result
}

// AllNames returns all registered scraper names in registration order.
func (r *Registry) AllNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
