package bacnet

// This file defines the interfaces a Schedule interpreter needs from
// its hosting application, kept free of any object-database package
// dependency (spec §4.8 "Collaborator interfaces").

// ObjectLookup resolves an ObjectIdentifier to an object the
// interpreter can read properties from, such as another Calendar
// object referenced by a SpecialEventPeriod.
type ObjectLookup interface {
	// LookupCalendar returns the dateList of the calendar object
	// with the given identifier, or ok=false if no such object exists.
	LookupCalendar(id ObjectIdentifier) (entries []CalendarEntry, ok bool)
}

// WritableObject is implemented by objects whose properties a
// Schedule can write through listOfObjectPropertyReferences.
type WritableObject interface {
	WriteProperty(propertyIdentifier string, value Element, arrayIndex *int, priority int) error
}

// ObjectWriter resolves an ObjectIdentifier to a WritableObject.
type ObjectWriter interface {
	LookupWritable(id ObjectIdentifier) (WritableObject, bool)
}

// VendorRegistry resolves a vendor identifier to VendorInfo, used by
// CheckReliability to validate listOfObjectPropertyReferences against
// the correct object/property type tables.
type VendorRegistry interface {
	LookupVendor(vendorIdentifier uint32) (*VendorInfo, bool)
}

// Scheduler arms a one-shot callback at a future point in time,
// abstracting over whatever event loop a host application uses (the
// teacher's subscription renewal timers use the same shape).
type Scheduler interface {
	// CallAt arms fn to run no earlier than t, returning a Cancel
	// function. CallAt(Deadline{}, fn) is not valid; callers must
	// always supply a concrete deadline.
	CallAt(t Deadline, fn func()) (cancel func())
}

// Deadline is a minimal abstraction over time.Time so this file does
// not need to import the time package directly; schedule.go supplies
// the concrete conversion.
type Deadline struct {
	UnixNano int64
}

// LocalClock supplies the device's notion of current date and time,
// letting a host override with values from its own Device object
// (spec §4.7 "interpret_schedule") instead of the host machine clock.
type LocalClock interface {
	LocalDate() Date
	LocalTime() Time
}
