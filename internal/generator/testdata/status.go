package testdata

type status uint8

const (
	statusScheduled status = iota // enum:indicator=orange
	statusActive                  // enum:indicator=blue
	statusOnHold                  // enum:name="On Hold" enum:indicator=yellow
	statusBlocked                 // enum:indicator=red
)
