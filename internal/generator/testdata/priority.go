package testdata

// priority values are not in alphabetical order and use non-sequential constants
type priority int

const (
	priorityUrgent priority = 100 - iota*10 // enum:indicator=red
	priorityHigh                            // enum:indicator=orange
	priorityLow                             // enum:indicator=lightblue
	priorityAny                             // enum:indicator=darkgrey
)
