package document

import "slices"

// ObjectBuilder assembles an object value member by member.
//
// The zero ObjectBuilder is ready to use. Build returns an immutable
// snapshot; the builder may keep being used afterwards without affecting
// values it already built. An ObjectBuilder must not be used concurrently.
type ObjectBuilder struct {
	members []Member
}

// Set adds or replaces the member key. A replaced member keeps its position.
func (b *ObjectBuilder) Set(key string, v Value) *ObjectBuilder {
	for i := range b.members {
		if b.members[i].Key == key {
			b.members[i].Value = v
			return b
		}
	}
	b.members = append(b.members, Member{Key: key, Value: v})
	return b
}

// Delete removes the given keys if present.
func (b *ObjectBuilder) Delete(keys ...string) *ObjectBuilder {
	b.members = slices.DeleteFunc(b.members, func(m Member) bool {
		return slices.Contains(keys, m.Key)
	})
	return b
}

// Has reports whether key has been set.
func (b *ObjectBuilder) Has(key string) bool {
	return slices.ContainsFunc(b.members, func(m Member) bool { return m.Key == key })
}

// Build returns the object assembled so far.
func (b *ObjectBuilder) Build() Value {
	return Object(b.members...)
}
