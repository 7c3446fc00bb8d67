package invalid

// paint refers to a color outside of the palette
type paint uint8

const (
	paintRed   paint = iota // enum:indicator=red
	paintBlack              // enum:indicator=black
)

// stage has two values sharing a name
type stage uint8

const (
	stageNew      stage = iota // enum:name="New"
	stageReopened              // enum:name="New"
)

// level has a broken directive
type level uint8

const (
	levelLow  level = iota // enum:indicator
	levelHigh
)

// mood has a color on one value only
type mood uint8

const (
	moodHappy mood = iota // enum:indicator=green
	moodSad
)

// unquoted has an unterminated quoted name
type unquoted uint8

const (
	unquotedA unquoted = iota // enum:name="broken
)
