package repository

import (
	"context"
	"court_manager/database"
	"court_manager/model"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var base = time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	db           *gorm.DB
	surfaceTypes *SurfaceTypeRepositoryImpl
	courts       *CourtRepositoryImpl
	customers    *CustomerRepositoryImpl
	reservations *ReservationRepositoryImpl
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	return fixture{
		db:           db,
		surfaceTypes: NewSurfaceTypeRepository(db),
		courts:       NewCourtRepository(db),
		customers:    NewCustomerRepository(db),
		reservations: NewReservationRepository(db),
	}
}

func (f fixture) court(t *testing.T, name string) *model.Court {
	t.Helper()
	ctx := context.Background()
	st := &model.SurfaceType{Name: "Clay", PricePerMinute: decimal.NewFromInt(15)}
	require.NoError(t, f.surfaceTypes.Save(ctx, st))
	c := &model.Court{Name: name, SurfaceTypeId: st.ID}
	require.NoError(t, f.courts.Save(ctx, c))
	return c
}

func (f fixture) customer(t *testing.T, phone string) *model.Customer {
	t.Helper()
	c, err := f.customers.FirstOrCreateByPhone(context.Background(), model.Customer{Name: "Jan", PhoneNumber: phone})
	require.NoError(t, err)
	return c
}

func (f fixture) reserve(t *testing.T, courtID, customerID uint, start, end time.Time) *model.Reservation {
	t.Helper()
	r := &model.Reservation{
		CourtId:    courtID,
		CustomerId: customerID,
		StartTime:  start,
		EndTime:    end,
		Price:      decimal.NewFromInt(1),
	}
	require.NoError(t, f.reservations.SaveWithNoOverlap(context.Background(), r))
	return r
}

func TestSurfaceType_SoftDeleteHidesFromReads(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	st := &model.SurfaceType{Name: "Grass", PricePerMinute: decimal.RequireFromString("10.50")}
	require.NoError(t, f.surfaceTypes.Save(ctx, st))
	require.NotZero(t, st.ID)

	got, err := f.surfaceTypes.FindByID(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, decimal.RequireFromString("10.5").Equal(got.PricePerMinute))

	require.NoError(t, f.surfaceTypes.SoftDelete(ctx, st.ID))
	require.NoError(t, f.surfaceTypes.SoftDelete(ctx, st.ID))
	require.NoError(t, f.surfaceTypes.SoftDelete(ctx, 999))

	got, err = f.surfaceTypes.FindByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	all, err := f.surfaceTypes.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	anyRow, err := f.surfaceTypes.FindAnyByID(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, anyRow)
	assert.True(t, anyRow.Deleted)
}

func TestCourt_SlugLookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.court(t, "Court 1")
	c.Slug = "court-1"
	require.NoError(t, f.courts.Save(ctx, c))

	got, err := f.courts.FindBySlug(ctx, "court-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c.ID, got.ID)

	exists, err := f.courts.SlugExists(ctx, "court-1", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = f.courts.SlugExists(ctx, "court-1", c.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, f.courts.SoftDelete(ctx, c.ID))
	got, err = f.courts.FindBySlug(ctx, "court-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	exists, err = f.courts.SlugExists(ctx, "court-1", 0)
	require.NoError(t, err)
	assert.True(t, exists, "deleted courts keep their slug")
}

func TestCustomer_FirstOrCreateByPhoneReusesRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.customers.FirstOrCreateByPhone(ctx, model.Customer{Name: "Jan", PhoneNumber: "+420111"})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := f.customers.FirstOrCreateByPhone(ctx, model.Customer{Name: "Someone Else", PhoneNumber: "+420111"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jan", second.Name, "existing name is not overwritten")

	all, err := f.customers.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCustomer_DeletedPhoneCanBeReused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	old := f.customer(t, "+420222")
	old.Deleted = true
	require.NoError(t, f.customers.Save(ctx, old))

	got, err := f.customers.FindByID(ctx, old.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	fresh := f.customer(t, "+420222")
	assert.NotEqual(t, old.ID, fresh.ID)
}

// insertRivalBeforeCreate slips a competing customer row in between the
// phone pre-read and the insert of the next customers create.
func insertRivalBeforeCreate(t *testing.T, db *gorm.DB, phone string) {
	t.Helper()
	fired := false
	err := db.Callback().Create().Before("gorm:create").Register("test:rival_customer", func(tx *gorm.DB) {
		if fired || tx.Statement.Table != "customers" {
			return
		}
		fired = true
		now := time.Now().UTC()
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO customers (name, phone_number, deleted, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			"rival", phone, false, now, now,
		)
	})
	require.NoError(t, err)
}

func TestCustomer_FirstOrCreateByPhoneReturnsConcurrentRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertRivalBeforeCreate(t, f.db, "777")

	got, err := f.customers.FirstOrCreateByPhone(ctx, model.Customer{Name: "Jan", PhoneNumber: "777"})
	require.NoError(t, err)
	assert.Equal(t, "rival", got.Name)

	all, err := f.customers.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, got.ID, all[0].ID)
}

func TestCustomer_FirstOrCreateByPhoneConflictWhenRowVanishes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	insertRivalBeforeCreate(t, f.db, "888")
	err := f.db.Callback().Create().After("gorm:create").Register("test:retire_rival", func(tx *gorm.DB) {
		if tx.Statement.Table != "customers" {
			return
		}
		tx.Session(&gorm.Session{NewDB: true}).Exec("UPDATE customers SET deleted = ? WHERE name = ?", true, "rival")
	})
	require.NoError(t, err)

	got, err := f.customers.FirstOrCreateByPhone(ctx, model.Customer{Name: "Jan", PhoneNumber: "888"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrCustomerConflict)

	all, err := f.customers.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestReservation_OverlapIsHalfOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	court := f.court(t, "Court 1")
	cust := f.customer(t, "+420333")

	existing := f.reserve(t, court.ID, cust.ID, base, base.Add(time.Hour))

	cases := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"inside", base.Add(10 * time.Minute), base.Add(20 * time.Minute), true},
		{"covers", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"overlaps start", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"overlaps end", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"back to back after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"back to back before", base.Add(-time.Hour), base, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.reservations.IsOverlapping(ctx, court.ID, tc.start, tc.end, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	self, err := f.reservations.IsOverlapping(ctx, court.ID, base, base.Add(time.Hour), existing.ID)
	require.NoError(t, err)
	assert.False(t, self, "excluded reservation does not conflict with itself")

	other, err := f.reservations.IsOverlapping(ctx, court.ID+1, base, base.Add(time.Hour), 0)
	require.NoError(t, err)
	assert.False(t, other, "other courts are independent")
}

func TestReservation_SaveWithNoOverlap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	court := f.court(t, "Court 1")
	cust := f.customer(t, "+420444")

	first := f.reserve(t, court.ID, cust.ID, base, base.Add(time.Hour))

	clash := &model.Reservation{CourtId: court.ID, CustomerId: cust.ID, StartTime: base.Add(30 * time.Minute), EndTime: base.Add(90 * time.Minute)}
	err := f.reservations.SaveWithNoOverlap(ctx, clash)
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Zero(t, clash.ID)

	// updating a reservation in place does not collide with its own row
	first.EndTime = base.Add(45 * time.Minute)
	require.NoError(t, f.reservations.SaveWithNoOverlap(ctx, first))

	got, err := f.reservations.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.EndTime.Equal(base.Add(45*time.Minute)))
	assert.Equal(t, "+420444", got.Customer.PhoneNumber)

	// once soft-deleted the slot is free again
	require.NoError(t, f.reservations.SoftDelete(ctx, first.ID))
	require.NoError(t, f.reservations.SaveWithNoOverlap(ctx, clash))
	assert.NotZero(t, clash.ID)
}

func TestReservation_Queries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	court := f.court(t, "Court 1")
	jan := f.customer(t, "+420555")
	eva := f.customer(t, "+420666")

	later := f.reserve(t, court.ID, jan.ID, base.Add(3*time.Hour), base.Add(4*time.Hour))
	earlier := f.reserve(t, court.ID, jan.ID, base, base.Add(time.Hour))
	past := f.reserve(t, court.ID, jan.ID, base.Add(-48*time.Hour), base.Add(-47*time.Hour))
	f.reserve(t, court.ID, eva.ID, base.Add(time.Hour), base.Add(2*time.Hour))
	deleted := f.reserve(t, court.ID, jan.ID, base.Add(5*time.Hour), base.Add(6*time.Hour))
	require.NoError(t, f.reservations.SoftDelete(ctx, deleted.ID))

	byCourt, err := f.reservations.FindByCourtID(ctx, court.ID)
	require.NoError(t, err)
	require.Len(t, byCourt, 4)
	assert.Equal(t, later.ID, byCourt[0].ID, "ordered by creation")

	byPhone, err := f.reservations.FindByPhoneNumber(ctx, "+420555", false, base)
	require.NoError(t, err)
	require.Len(t, byPhone, 3)
	assert.Equal(t, []uint{past.ID, earlier.ID, later.ID}, []uint{byPhone[0].ID, byPhone[1].ID, byPhone[2].ID})
	assert.Equal(t, "+420555", byPhone[0].Customer.PhoneNumber)

	future, err := f.reservations.FindByPhoneNumber(ctx, "+420555", true, base)
	require.NoError(t, err)
	require.Len(t, future, 1, "start == now is not in the future")
	assert.Equal(t, later.ID, future[0].ID)

	all, err := f.reservations.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	gone, err := f.reservations.FindByID(ctx, deleted.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	day, err := f.reservations.FindStartingBetween(ctx, base, base.Add(24*time.Hour))
	require.NoError(t, err)
	assert.Len(t, day, 3)
}
