package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiftwise-dev/rota-manager/backend/internal/domain"
)

// GridSlot is one placement inside a weekly design grid bucket. An
// overnight placement occupies two slots, head and tail, sharing a
// PairKey. The tail is the slot whose Start is "00:00".
type GridSlot struct {
	ShiftID int64  `json:"shiftId"`
	Start   string `json:"start"`
	End     string `json:"end"`
	PairKey string `json:"pairKey,omitempty"`
}

// WeekGrid models one representative week of shift placements: seven
// ordered day buckets with circular wrap, so the tail of a Saturday
// overnight shift lands in the Sunday bucket of the same grid. It is the
// engine-side form of the shift design view.
type WeekGrid struct {
	days [7][]GridSlot
}

func NewWeekGrid() *WeekGrid {
	return &WeekGrid{}
}

// Slots returns the ordered placements of one day bucket.
func (g *WeekGrid) Slots(day time.Weekday) []GridSlot {
	return g.days[day]
}

// Assign places shift on day. A non-overnight shift becomes a single
// same-day slot. An overnight shift becomes a head slot running to 23:59
// on day and, atomically, a tail slot from 00:00 in the next bucket; the
// two are linked by a fresh pair key so neither can later be removed
// alone.
func (g *WeekGrid) Assign(shift *domain.Shift, day time.Weekday) error {
	if shift == nil {
		return fmt.Errorf("no shift to place")
	}
	if day < time.Sunday || day > time.Saturday {
		return fmt.Errorf("weekday %d is out of range", day)
	}

	if shift.EndTime < shift.StartTime {
		pairKey := uuid.NewString()
		g.days[day] = append(g.days[day], GridSlot{
			ShiftID: shift.ID,
			Start:   shift.StartTime,
			End:     "23:59",
			PairKey: pairKey,
		})
		tailDay := NextWeekday(day)
		g.days[tailDay] = append(g.days[tailDay], GridSlot{
			ShiftID: shift.ID,
			Start:   "00:00",
			End:     shift.EndTime,
			PairKey: pairKey,
		})
		return nil
	}

	g.days[day] = append(g.days[day], GridSlot{
		ShiftID: shift.ID,
		Start:   shift.StartTime,
		End:     shift.EndTime,
	})
	return nil
}

// Remove deletes the slot at index in day's bucket. Removing either half
// of an overnight placement removes the other half from the adjacent
// bucket as well; a head must never survive without its tail or the
// reverse. A pair whose twin cannot be found indicates a grid that was
// built outside these transitions; the removal still succeeds and the
// caller gets an error to log.
func (g *WeekGrid) Remove(day time.Weekday, index int) error {
	if day < time.Sunday || day > time.Saturday {
		return fmt.Errorf("weekday %d is out of range", day)
	}
	bucket := g.days[day]
	if index < 0 || index >= len(bucket) {
		return fmt.Errorf("no placement at index %d on %s", index, day)
	}

	slot := bucket[index]
	g.days[day] = append(bucket[:index], bucket[index+1:]...)

	if slot.PairKey == "" {
		return nil
	}

	// Tails start at midnight; anything else with a pair key is a head.
	twinDay := NextWeekday(day)
	if slot.Start == "00:00" {
		twinDay = PrevWeekday(day)
	}

	for i, twin := range g.days[twinDay] {
		if twin.PairKey == slot.PairKey {
			g.days[twinDay] = append(g.days[twinDay][:i], g.days[twinDay][i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("overnight placement of shift %d on %s had no paired half on %s", slot.ShiftID, day, twinDay)
}

// DayHours sums the scheduled hours of one bucket at hour granularity.
// Same-day slots contribute the shift's declared duration; an overnight
// head contributes 24 minus its start hour and a tail its end hour.
func (g *WeekGrid) DayHours(day time.Weekday, catalog map[int64]*domain.Shift) float64 {
	total := 0.0
	for _, slot := range g.days[day] {
		if slot.PairKey == "" {
			if shift, ok := catalog[slot.ShiftID]; ok {
				total += shift.DurationHours
			}
			continue
		}

		if slot.Start == "00:00" {
			endHour, _, err := ParseClock(slot.End)
			if err != nil {
				continue
			}
			total += float64(endHour)
			continue
		}

		startHour, _, err := ParseClock(slot.Start)
		if err != nil {
			continue
		}
		total += float64(24 - startHour)
	}
	return total
}
