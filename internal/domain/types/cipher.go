package types

// CipherRequest carries one encode or decode operation.
type CipherRequest struct {
	Text      string     `json:"text"`
	Slots     []DialSlot `json:"dials"`
	Direction Direction  `json:"direction"`
	Indexing  Indexing   `json:"indexing,omitempty"`
}

// CipherResult is the output of a cipher operation together with the
// schedule that produced it.
type CipherResult struct {
	Output      string      `json:"output"`
	Schedule    KeySchedule `json:"schedule"`
	Fingerprint Fingerprint `json:"fingerprint"`
}
