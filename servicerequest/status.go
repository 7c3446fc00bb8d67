// Package servicerequest holds the list view configuration of Service Request records:
// the status set, the indicator color of every status and the list settings.
package servicerequest

//go:generate go run github.com/go-pkgz/listview/cmd/enumgen -type status -sql -bson -yaml -indicator

type status uint8

const (
	statusScheduled      status = iota // enum:indicator=orange
	statusActive                       // enum:indicator=blue
	statusOnHold                       // enum:name="On Hold" enum:indicator=yellow
	statusCompleted                    // enum:indicator=green
	statusRevoked                      // enum:indicator=grey
	statusReplaced                     // enum:indicator=grey
	statusUnknown                      // enum:indicator=grey
	statusEnteredInError               // enum:name="Entered in Error" enum:indicator=red
)
