package pronote

const (
	// ExpectedAPIVersion is the portal API version this client is pinned
	// to. Login fails fast on skew instead of misparsing records.
	ExpectedAPIVersion = "2.14.4"

	dateFormat = "2006-01-02"
)
