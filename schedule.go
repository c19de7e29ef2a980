package bacnet

import (
	"log"
	"time"
)

// Reliability is the schedule's self-reported fault status, see
// spec §4.7.
type Reliability int

const (
	ReliabilityNoFaultDetected Reliability = iota
	ReliabilityConfigurationError
)

func (r Reliability) String() string {
	switch r {
	case ReliabilityNoFaultDetected:
		return "no-fault-detected"
	case ReliabilityConfigurationError:
		return "configuration-error"
	default:
		return "unknown"
	}
}

// TimeValue pairs a time-of-day trigger with the value to take effect
// at that instant; a Null value means "relinquish back to the
// schedule default", see spec §2.
type TimeValue struct {
	Time  Time
	Value Element // an Atomic value of the schedule's datatype, or Null
}

func (tv TimeValue) isNull() bool {
	_, ok := tv.Value.(Null)
	return ok
}

// DailySchedule is one weekday's ordered list of TimeValues.
type DailySchedule struct {
	DaySchedule []TimeValue
}

// SpecialEventPeriod is exactly one of an embedded CalendarEntry or a
// reference to another Calendar object's dateList, see spec §2.
type SpecialEventPeriod struct {
	CalendarEntry     *CalendarEntry
	CalendarReference *ObjectIdentifier
}

// SpecialEvent is one exception-schedule entry: a period, an ordered
// list of TimeValues, and a priority in 1..=16 (lower numbers win).
type SpecialEvent struct {
	Period           SpecialEventPeriod
	ListOfTimeValues []TimeValue
	EventPriority    int
}

// ObjectPropertyReference names a property write target for the
// present-value-changed hook, see spec §4.7.
type ObjectPropertyReference struct {
	DeviceIdentifier   *ObjectIdentifier
	ObjectIdentifier   ObjectIdentifier
	PropertyIdentifier string
	PropertyArrayIndex *int
}

// nextDay is the sentinel "start of the next day" transition time
// used both as the initial value of earliest-transition tracking and
// as the next-transition of a priority slot whose value has taken
// effect, see spec §4.7.
var nextDay = Time{Hour: 24, Minute: 0, Second: 0, Hundredths: 0}

// Schedule is the full local-schedule-object interpreter state, see
// spec §4.7.
type Schedule struct {
	WeeklySchedule                  [7]DailySchedule
	ExceptionSchedule               []SpecialEvent
	ScheduleDefault                 Element
	EffectivePeriod                 DateRange
	ListOfObjectPropertyReferences  []ObjectPropertyReference
	PriorityForWriting              int
	VendorIdentifier                uint32

	PresentValue Element
	Reliability  Reliability

	lookup   ObjectLookup
	writer   ObjectWriter
	vendors  VendorRegistry
	clock    LocalClock
	scheduler Scheduler
	cancelTimer func()

	logger *log.Logger
}

// NewSchedule constructs a Schedule, runs CheckReliability, and — if
// no fault was found — immediately performs one evaluation pass so
// PresentValue is never stale between construction and the first
// configuration change (spec §4.7, supplemented from the original's
// "schedule an interpretation" on init).
func NewSchedule(lookup ObjectLookup, writer ObjectWriter, vendors VendorRegistry, clock LocalClock, scheduler Scheduler, logger *log.Logger) *Schedule {
	if logger == nil {
		logger = log.Default()
	}
	s := &Schedule{
		lookup:    lookup,
		writer:    writer,
		vendors:   vendors,
		clock:     clock,
		scheduler: scheduler,
		logger:    logger,
	}
	s.CheckReliability()
	s.InterpretSchedule()
	return s
}

// CheckReliability re-validates the schedule's configuration, per the
// six-step check in spec §4.7. Any failure sets Reliability to
// configurationError and silently disables further interpretation.
func (s *Schedule) CheckReliability() {
	if err := s.checkReliability(); err != nil {
		s.Reliability = ReliabilityConfigurationError
		return
	}
	s.Reliability = ReliabilityNoFaultDetected
}

func (s *Schedule) checkReliability() error {
	const op = "Schedule.CheckReliability"

	if s.ScheduleDefault == nil {
		return newValueError(op, "schedule-default required")
	}
	scheduleType := elementTypeName(s.ScheduleDefault)

	hasWeekly := false
	for _, d := range s.WeeklySchedule {
		if len(d.DaySchedule) > 0 {
			hasWeekly = true
			break
		}
	}
	if !hasWeekly && len(s.ExceptionSchedule) == 0 {
		return newValueError(op, "schedule required")
	}

	for _, daily := range s.WeeklySchedule {
		for _, tv := range daily.DaySchedule {
			if !tv.isNull() && elementTypeName(tv.Value) != scheduleType {
				return newTypeError(op, "wrong type")
			}
			if tv.Time.IsSpecial() {
				return newValueError(op, "must be a specific time")
			}
		}
	}

	for _, event := range s.ExceptionSchedule {
		if _, err := CastUnsigned(uint32(event.EventPriority), Unsigned8Schema()); err != nil {
			return newValueError(op, "event priority must fit in a single octet")
		}
		for _, tv := range event.ListOfTimeValues {
			if !tv.isNull() && elementTypeName(tv.Value) != scheduleType {
				return newTypeError(op, "wrong type")
			}
		}
	}

	if len(s.ListOfObjectPropertyReferences) > 0 {
		if s.vendors == nil {
			return newRuntimeError(op, "not associated with an application")
		}
		if _, err := CastUnsigned(s.VendorIdentifier, Unsigned16Schema()); err != nil {
			return newValueError(op, "vendor identifier must fit in two octets")
		}
		vendorInfo, ok := s.vendors.LookupVendor(s.VendorIdentifier)
		if !ok {
			return newRuntimeError(op, "missing vendor information")
		}

		for _, ref := range s.ListOfObjectPropertyReferences {
			if ref.DeviceIdentifier != nil {
				return newRuntimeError(op, "restricted to referencing objects within the device")
			}

			objectClass, ok := vendorInfo.GetObjectClass(ref.ObjectIdentifier.Type)
			if !ok {
				return newRuntimeError(op, "missing object class")
			}

			propertyType, ok := objectClass.GetPropertyType(ref.PropertyIdentifier)
			if !ok {
				return newRuntimeError(op, "missing property type")
			}

			if ref.PropertyArrayIndex != nil {
				if *ref.PropertyArrayIndex == 0 {
					propertyType = elementTypeName(Unsigned{})
				}
				// Non-zero indices resolve to the array's element
				// type, which in this core is already what
				// GetPropertyType reports (no Array wrapper type).
			}

			// The original compares `property_type is not
			// schedule_datatype`; this check keeps that comparison and
			// rejects a property whose type differs from the
			// schedule's datatype; see DESIGN.md Open Questions.
			if propertyType != scheduleType {
				return newTypeError(op, "wrong type")
			}
		}
	}

	return nil
}

// elementTypeName is a crude runtime type tag used only for the
// schedule-datatype comparisons in CheckReliability; it does not
// appear on the wire.
func elementTypeName(e Element) string {
	switch e.(type) {
	case Null:
		return "Null"
	case Boolean:
		return "Boolean"
	case Unsigned:
		return "Unsigned"
	case Integer:
		return "Integer"
	case Real:
		return "Real"
	case Double:
		return "Double"
	case OctetString:
		return "OctetString"
	case CharacterString:
		return "CharacterString"
	case BitString:
		return "BitString"
	case Enumerated:
		return "Enumerated"
	case Date:
		return "Date"
	case Time:
		return "Time"
	case ObjectIdentifier:
		return "ObjectIdentifier"
	default:
		return "unknown"
	}
}

// Eval evaluates the schedule for the given date and time, returning
// the effective value and the time of the next transition, or
// ok=false if edate falls outside EffectivePeriod.
func (s *Schedule) Eval(edate Date, etime Time) (value Element, nextTransition Time, ok bool) {
	if !MatchDateRange(edate, s.EffectivePeriod) {
		return nil, Time{}, false
	}

	const slots = 16
	var eventPriority [slots]Element
	var nextTransitionTime [slots]*Time

	earliest := nextDay

	for _, event := range s.ExceptionSchedule {
		match, err := s.matchSpecialEventPeriod(edate, event.Period)
		if err != nil || !match {
			continue
		}

		p := event.EventPriority - 1
		if p < 0 || p >= slots {
			continue
		}

		for _, tv := range event.ListOfTimeValues {
			if tv.Time.Compare(etime) <= 0 {
				if tv.isNull() {
					eventPriority[p] = nil
					nextTransitionTime[p] = nil
				} else {
					eventPriority[p] = tv.Value
					t := nextDay
					nextTransitionTime[p] = &t
				}
			} else {
				t := tv.Time
				nextTransitionTime[p] = &t
				break
			}
		}
	}

	for p := 0; p < slots; p++ {
		if nextTransitionTime[p] != nil && nextTransitionTime[p].Compare(earliest) < 0 {
			earliest = *nextTransitionTime[p]
		}
		if eventPriority[p] != nil {
			return eventPriority[p], earliest, true
		}
	}

	dailyValue := s.ScheduleDefault
	dow := edate.DayOfWeek
	if dow >= 1 && dow <= 7 {
		daily := s.WeeklySchedule[dow-1]
		for _, tv := range daily.DaySchedule {
			if tv.Time.Compare(etime) <= 0 {
				if tv.isNull() {
					dailyValue = s.ScheduleDefault
				} else {
					dailyValue = tv.Value
				}
			} else {
				if tv.Time.Compare(earliest) < 0 {
					earliest = tv.Time
				}
				break
			}
		}
	}

	return dailyValue, earliest, true
}

func (s *Schedule) matchSpecialEventPeriod(date Date, period SpecialEventPeriod) (bool, error) {
	const op = "Schedule.Eval"

	if period.CalendarEntry != nil {
		return DateInCalendarEntry(date, *period.CalendarEntry)
	}
	if period.CalendarReference == nil {
		return false, newRuntimeError(op, "special event period required")
	}
	if s.lookup == nil {
		return false, newRuntimeError(op, "invalid calendar object reference")
	}
	entries, ok := s.lookup.LookupCalendar(*period.CalendarReference)
	if !ok {
		return false, newRuntimeError(op, "invalid calendar object reference")
	}
	for _, entry := range entries {
		if match, err := DateInCalendarEntry(date, entry); err == nil && match {
			return true, nil
		}
	}
	return false, nil
}

// combineDateTime converts a fully specific (date, time) pair into an
// absolute instant, matching datetime_to_time. It returns a
// RuntimeError if either carries a wildcard in any position,
// including the eval loop's hour=24 "next day" sentinel.
func combineDateTime(date Date, t Time) (time.Time, error) {
	const op = "Schedule.combineDateTime"
	if date.Year == DateYearAny || date.Month == DateMonthAny || date.Day == DateDayAny || date.DayOfWeek == DateDowAny {
		return time.Time{}, newRuntimeError(op, "specific date and time required")
	}
	if t.Hour == TimeWildcard || t.Minute == TimeWildcard || t.Second == TimeWildcard || t.Hundredths == TimeWildcard || t.Hour == 24 {
		return time.Time{}, newRuntimeError(op, "specific date and time required")
	}
	return time.Date(date.Year+1900, time.Month(date.Month), date.Day, t.Hour, t.Minute, t.Second, 0, time.Local), nil
}

// InterpretSchedule runs one evaluation pass, writes PresentValue
// (triggering presentValueChanged), and arms a one-shot timer at the
// computed next-transition instant. A failure to arm the timer (no
// scheduler, or combineDateTime rejecting the hour=24 sentinel) is
// non-fatal; the pending handle is simply left empty, per spec §4.7.
func (s *Schedule) InterpretSchedule() {
	if s.cancelTimer != nil {
		s.cancelTimer()
		s.cancelTimer = nil
	}

	if s.Reliability != ReliabilityNoFaultDetected {
		return
	}

	var currentDate Date
	var currentTime Time
	if s.clock != nil {
		currentDate = s.clock.LocalDate()
		currentTime = s.clock.LocalTime()
	} else {
		now := time.Now()
		currentDate = CastDateFromTime(now, nil)
		currentTime = CastTimeFromClock(now, nil)
	}

	value, next, ok := s.Eval(currentDate, currentTime)
	if !ok {
		return
	}

	s.setPresentValue(value)

	transitionTime, err := combineDateTime(currentDate, next)
	if err != nil {
		return
	}
	if s.scheduler == nil {
		return
	}

	s.cancelTimer = s.scheduler.CallAt(Deadline{UnixNano: transitionTime.UnixNano()}, s.InterpretSchedule)
}

func (s *Schedule) setPresentValue(value Element) {
	old := s.PresentValue
	s.PresentValue = value
	s.presentValueChanged(old, value)
}

// presentValueChanged writes the new value out to every configured
// object-property reference, logging (not aborting on) per-entry
// failures, per spec §4.7.
func (s *Schedule) presentValueChanged(old, new Element) {
	const op = "Schedule.presentValueChanged"

	if s.writer == nil || len(s.ListOfObjectPropertyReferences) == 0 {
		return
	}

	for _, ref := range s.ListOfObjectPropertyReferences {
		if ref.DeviceIdentifier != nil {
			continue
		}
		obj, ok := s.writer.LookupWritable(ref.ObjectIdentifier)
		if !ok {
			// Nothing registered to write this property: not a
			// schema problem, an access problem.
			s.logger.Printf("schedule: write-property %s.%s failed: %v",
				ref.ObjectIdentifier, ref.PropertyIdentifier, newPropertyError(op, "writeAccessDenied"))
			continue
		}
		if err := obj.WriteProperty(ref.PropertyIdentifier, new, ref.PropertyArrayIndex, s.PriorityForWriting); err != nil {
			s.logger.Printf("schedule: write-property %s.%s failed: %v", ref.ObjectIdentifier, ref.PropertyIdentifier, err)
		}
	}
}

// ScheduleChanged re-runs CheckReliability and interpretation after an
// edit to WeeklySchedule or ExceptionSchedule, re-arming the timer.
func (s *Schedule) ScheduleChanged() {
	s.CheckReliability()
	s.InterpretSchedule()
}
