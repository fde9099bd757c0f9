package Models

// AvailableSlots strips the booked slots off each appointment type's
// catalog for one date. bookings must already be filtered to that date;
// the returned types keep their catalog order. Bookings whose treatment
// matches no type are ignored.
func AvailableSlots(types []AppointmentType, bookings []Booking) []AppointmentType {
	bookedByTreatment := make(map[string][]string)
	for _, b := range bookings {
		bookedByTreatment[b.Treatment] = append(bookedByTreatment[b.Treatment], b.Slot)
	}

	out := make([]AppointmentType, len(types))
	for i, t := range types {
		booked := bookedByTreatment[t.Name]
		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			taken := false
			for _, b := range booked {
				if slot == b {
					taken = true
					break
				}
			}
			if !taken {
				remaining = append(remaining, slot)
			}
		}
		t.Slots = remaining
		out[i] = t
	}
	return out
}
