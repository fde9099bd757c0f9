package Models

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store implementations. Handlers and the cron worker only
// see the store interfaces, so tests run against these instead of a
// live database.

type MemoryAppointmentTypes struct {
	mu    sync.RWMutex
	types []AppointmentType
}

func (m *MemoryAppointmentTypes) All(ctx context.Context) ([]AppointmentType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]AppointmentType, len(m.types))
	copy(out, m.types)
	return out, nil
}

func (m *MemoryAppointmentTypes) Names(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var names []string
	for _, t := range m.types {
		names = append(names, t.Name)
	}
	return names, nil
}

func (m *MemoryAppointmentTypes) Insert(ctx context.Context, t AppointmentType) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	m.types = append(m.types, t)
	return t.ID.Hex(), nil
}

type MemoryBookings struct {
	mu       sync.RWMutex
	bookings []Booking
}

func (m *MemoryBookings) All(ctx context.Context) ([]Booking, error) {
	return m.filter(func(Booking) bool { return true }), nil
}

func (m *MemoryBookings) ByDate(ctx context.Context, date string) ([]Booking, error) {
	return m.filter(func(b Booking) bool { return b.Date == date }), nil
}

func (m *MemoryBookings) ByEmail(ctx context.Context, email string) ([]Booking, error) {
	return m.filter(func(b Booking) bool { return b.PatientEmail == email }), nil
}

func (m *MemoryBookings) filter(keep func(Booking) bool) []Booking {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Booking
	for _, b := range m.bookings {
		if keep(b) {
			out = append(out, b)
		}
	}
	return out
}

func (m *MemoryBookings) ByID(ctx context.Context, id string) (*Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID.Hex() == id {
			found := b
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryBookings) ByKey(ctx context.Context, treatment, patientEmail, date string) (*Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.Treatment == treatment && b.PatientEmail == patientEmail && b.Date == date {
			found := b
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryBookings) Insert(ctx context.Context, booking Booking) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.Treatment == booking.Treatment && b.PatientEmail == booking.PatientEmail && b.Date == booking.Date {
			return "", ErrDuplicateBooking
		}
	}
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	m.bookings = append(m.bookings, booking)
	return booking.ID.Hex(), nil
}

func (m *MemoryBookings) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.bookings {
		if m.bookings[i].ID.Hex() == id {
			m.bookings[i].Paid = true
			m.bookings[i].TransactionID = transactionID
			return 1, nil
		}
	}
	return 0, nil
}

type MemoryUsers struct {
	mu    sync.RWMutex
	users map[string]User
}

func (m *MemoryUsers) All(ctx context.Context) ([]User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *MemoryUsers) ByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *MemoryUsers) Upsert(ctx context.Context, email string, user User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.users == nil {
		m.users = make(map[string]User)
	}
	existing := m.users[email]
	existing.Email = email
	existing.Name = user.Name
	if existing.ID.IsZero() {
		existing.ID = primitive.NewObjectID()
	}
	m.users[email] = existing
	return nil
}

func (m *MemoryUsers) GrantAdmin(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return 0, nil
	}
	u.Role = RoleAdmin
	m.users[email] = u
	return 1, nil
}

type MemoryDoctors struct {
	mu      sync.RWMutex
	doctors []Doctor
}

func (m *MemoryDoctors) All(ctx context.Context) ([]Doctor, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Doctor, len(m.doctors))
	copy(out, m.doctors)
	return out, nil
}

func (m *MemoryDoctors) Insert(ctx context.Context, d Doctor) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	m.doctors = append(m.doctors, d)
	return d.ID.Hex(), nil
}

func (m *MemoryDoctors) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.doctors {
		if d.Email == email {
			m.doctors = append(m.doctors[:i], m.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type MemoryPayments struct {
	mu       sync.RWMutex
	payments []Payment
}

func (m *MemoryPayments) All(ctx context.Context) ([]Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Payment, len(m.payments))
	copy(out, m.payments)
	return out, nil
}

func (m *MemoryPayments) Insert(ctx context.Context, p Payment) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.payments = append(m.payments, p)
	return p.ID.Hex(), nil
}
