package booking

import "errors"

// The recoverable booking failures. Each maps to a rejected request with a
// specific reason; none of them is fatal to the process. Storage failures are
// returned as-is and surface as internal errors.
var (
	// ErrMalformedSchedule: the date or time field does not parse.
	ErrMalformedSchedule = errors.New("malformed date or time")

	// ErrOutsideAvailability: the requested date/time falls outside every
	// declared window for the doctor at that hospital.
	ErrOutsideAvailability = errors.New("requested time is outside the doctor's availability")

	// ErrSlotAlreadyBooked: the doctor already holds a committed appointment
	// at that exact date and time, whether seen at the initial check or at
	// the atomic append.
	ErrSlotAlreadyBooked = errors.New("slot is already booked")

	// ErrInvalidAmount: the amount paid is negative or not expressible in
	// the currency's minor unit.
	ErrInvalidAmount = errors.New("amount paid is invalid")

	// ErrUpstreamLookup: a referenced patient, doctor or hospital could not
	// be resolved in the directory.
	ErrUpstreamLookup = errors.New("referenced record not found")
)
