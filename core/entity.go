package core

// Entity is a unique identifier grouping zero or more components
type Entity uint64

// NilEntity is the zero value, never assigned to a live entity
const NilEntity Entity = 0
