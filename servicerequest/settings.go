package servicerequest

import (
	"strconv"

	"github.com/go-pkgz/listview"
	"github.com/go-pkgz/listview/filter"
)

// DocType is the document type name of service requests
const DocType = "Service Request"

// FieldStatus holds the workflow status of a service request
const FieldStatus = "status"

// Settings returns the list view settings of service requests: name and status are fetched,
// only submitted records are listed, and cancelled records keep their status indicator.
func Settings() listview.Settings {
	return listview.Settings{
		DocType:   DocType,
		AddFields: []string{listview.FieldName, FieldStatus},
		Filters: []filter.Condition{
			filter.Equal(listview.FieldDocStatus, strconv.Itoa(int(listview.DocStatusSubmitted))),
		},
		HasIndicatorForCancelled: true,
		StatusField:              FieldStatus,
		FieldTypes:               filter.Fields{listview.FieldDocStatus: filter.FieldInt},
		Color:                    StatusColor,
	}
}

// StatusColor returns the indicator color of a raw status value. Values outside of the
// status set have no color.
func StatusColor(raw string) (listview.Color, bool) {
	s, err := ParseStatus(raw)
	if err != nil {
		return listview.Color{}, false
	}
	return s.Color()
}
