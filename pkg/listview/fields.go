package listview

import "golang.org/x/text/language"

// Accessor extracts a named field from a record.
type Accessor[T any] func(T) Value

// Fields describes which fields of T can be sorted, filtered and searched.
// Build it once at start-up; it is read-only afterwards and safe to share.
type Fields[T any] struct {
	accessors  map[string]Accessor[T]
	searchable []string
	locale     language.Tag
}

// NewFields creates an empty field set using root-locale collation.
func NewFields[T any]() *Fields[T] {
	return &Fields[T]{accessors: make(map[string]Accessor[T]), locale: language.Und}
}

// Field registers a sortable and filterable field.
func (f *Fields[T]) Field(name string, fn Accessor[T]) *Fields[T] {
	f.accessors[name] = fn
	return f
}

// Searchable registers a field that is also matched against the search text.
func (f *Fields[T]) Searchable(name string, fn Accessor[T]) *Fields[T] {
	if !f.isSearchable(name) {
		f.searchable = append(f.searchable, name)
	}
	f.accessors[name] = fn
	return f
}

// WithLocale sets the collation locale used for text sorting.
func (f *Fields[T]) WithLocale(tag language.Tag) *Fields[T] {
	f.locale = tag
	return f
}

// Has reports whether name is a registered field.
func (f *Fields[T]) Has(name string) bool {
	if f == nil {
		return false
	}
	_, ok := f.accessors[name]
	return ok
}

// Names returns the registered field names in no particular order.
func (f *Fields[T]) Names() []string {
	names := make([]string, 0, len(f.accessors))
	for name := range f.accessors {
		names = append(names, name)
	}
	return names
}

func (f *Fields[T]) isSearchable(name string) bool {
	for _, s := range f.searchable {
		if s == name {
			return true
		}
	}
	return false
}
