package main

import (
	"fmt"
	"log"

	"github.com/bacgo/bacapp"
)

// simClock is a fixed LocalClock used to drive the schedule without
// depending on the host machine's wall clock, grounded on the
// teacher's pattern of driving a loop over simulated state in
// cmd/examples/subscribe.
type simClock struct {
	date bacnet.Date
	time bacnet.Time
}

func (c simClock) LocalDate() bacnet.Date { return c.date }
func (c simClock) LocalTime() bacnet.Time { return c.time }

func main() {
	schedule := &bacnet.Schedule{
		ScheduleDefault: mustUnsigned(0),
		EffectivePeriod: bacnet.DateRange{
			StartDate: bacnet.CastDateTuple(2020, 1, 1, bacnet.DateDowAny, nil),
			EndDate:   bacnet.CastDateTuple(2099, 12, 31, bacnet.DateDowAny, nil),
		},
	}
	schedule.WeeklySchedule[2] = bacnet.DailySchedule{
		DaySchedule: []bacnet.TimeValue{
			{Time: bacnet.CastTimeTuple(8, 0, 0, 0, nil), Value: mustUnsigned(1)},
			{Time: bacnet.CastTimeTuple(17, 0, 0, 0, nil), Value: mustUnsigned(0)},
		},
	}
	schedule.CheckReliability()
	if schedule.Reliability != bacnet.ReliabilityNoFaultDetected {
		log.Fatalf("schedule configuration error: %s", schedule.Reliability)
	}

	clocks := []simClock{
		{date: bacnet.CastDateTuple(2026, 7, 28, 3, nil), time: bacnet.CastTimeTuple(10, 0, 0, 0, nil)},
		{date: bacnet.CastDateTuple(2026, 7, 28, 3, nil), time: bacnet.CastTimeTuple(18, 0, 0, 0, nil)},
	}

	for _, clock := range clocks {
		value, next, ok := schedule.Eval(clock.date, clock.time)
		if !ok {
			log.Fatalf("date outside effective period")
		}
		fmt.Printf("at %s: present value %v, next transition %s\n", clock.time, value, next)
	}
}

func mustUnsigned(v uint32) bacnet.Unsigned {
	u, err := bacnet.CastUnsigned(v, nil)
	if err != nil {
		log.Fatalf("invalid unsigned literal %d: %v", v, err)
	}
	return u
}
