package jurisdiction

import "fmt"

// InvalidSubdivisionError is returned when a subdivision code is not
// defined by the jurisdiction.
type InvalidSubdivisionError string

func (msg InvalidSubdivisionError) Error() string {
	return fmt.Sprintf("%s: subdivision is not available for this jurisdiction", string(msg))
}

// UnknownJurisdictionError is returned by Lookup for codes nobody registered.
type UnknownJurisdictionError string

func (msg UnknownJurisdictionError) Error() string {
	return fmt.Sprintf("%s: unknown jurisdiction", string(msg))
}
