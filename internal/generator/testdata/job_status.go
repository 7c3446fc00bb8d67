package testdata

// jobStatus has no indicator directives
type jobStatus uint8

const (
	jobStatusUnknown jobStatus = iota
	jobStatusRunning
	jobStatusFailed
)
