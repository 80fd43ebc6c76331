package models

// RecordStatus is the lifecycle flag shared by catalog and sales rows.
// Soft deleting a row flips it to RecordDeleted; normal queries only
// see RecordActive rows.
type RecordStatus string

const (
	RecordActive  RecordStatus = "ACTIVE"
	RecordDeleted RecordStatus = "DELETED"
)
