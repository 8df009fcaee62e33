package domain

type RecordType string

const (
	RecordEvents RecordType = "events"
	RecordClubs  RecordType = "clubs"
)
