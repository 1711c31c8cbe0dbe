package devserver_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"jizzakh_hotels/internal/adapters/backend"
	"jizzakh_hotels/internal/adapters/devserver"
	redisad "jizzakh_hotels/internal/adapters/redis"
	"jizzakh_hotels/internal/app"
	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/i18n"
	"jizzakh_hotels/internal/pricing"
)

type env struct {
	catalog  *app.CatalogStore
	bookings *app.BookingStore
	session  *app.SessionStore
	flow     *app.BookingFlow
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ts := httptest.NewServer(devserver.New().Mux())
	t.Cleanup(ts.Close)

	mr := miniredis.RunT(t)
	storage := redisad.NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), "e2e")

	cl := backend.New(ts.URL, "", 100)
	log := zerolog.Nop()
	catalog := app.NewCatalogStore(cl, log)
	bookings := app.NewBookingStore(cl, log)
	session := app.NewSessionStore(context.Background(), storage, i18n.EN, log)
	return &env{
		catalog:  catalog,
		bookings: bookings,
		session:  session,
		flow:     app.NewBookingFlow(catalog, bookings, session, log),
	}
}

func future(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(pricing.DateLayout)
}

func TestE2E_CatalogBrowsing(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if err := e.catalog.LoadAll(ctx); err != nil {
		t.Fatalf("err: %v", err)
	}
	hotels := e.catalog.Hotels()
	if len(hotels) != 2 {
		t.Fatalf("seed catalog should have 2 hotels, got %d", len(hotels))
	}
	if len(hotels[0].Rooms) != 0 {
		t.Fatal("summaries must not carry rooms")
	}
	if !hotels[0].Name.Complete() {
		t.Fatal("seed hotels must be fully localized")
	}

	if err := e.catalog.LoadDetail(ctx, hotels[0].ID); err != nil {
		t.Fatalf("err: %v", err)
	}
	detail, ok := e.catalog.CurrentHotel()
	if !ok || len(detail.Rooms) == 0 {
		t.Fatalf("detail should carry rooms, got %+v", detail)
	}

	if err := e.catalog.LoadDetail(ctx, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound for unknown hotel, got %v", err)
	}
}

func TestE2E_BookingLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if err := e.flow.Start(ctx, 1, 1); err != nil {
		t.Fatalf("err: %v", err)
	}
	room, _ := e.flow.SelectedRoom()

	form := app.BookingForm{
		GuestName: "Aziz Karimov",
		Email:     "aziz@example.com",
		CheckIn:   future(3),
		CheckOut:  future(6),
		Guests:    2,
	}
	preview := e.flow.Preview(form)
	if !preview.Valid() || preview.Total != 3*room.Price {
		t.Fatalf("unexpected preview: %+v", preview)
	}

	created, err := e.flow.Submit(ctx, form)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if created.TotalPrice != preview.Total {
		t.Fatalf("submitted %v != previewed %v", created.TotalPrice, preview.Total)
	}
	if created.Status != domain.StatusConfirmed {
		t.Fatalf("want confirmed, got %s", created.Status)
	}

	// the booking form identity became the session identity
	id, ok := e.session.Identity()
	if !ok || id.Email != "aziz@example.com" {
		t.Fatalf("expected session login, got %+v ok=%v", id, ok)
	}

	// profile view: reload bookings scoped to the session
	if err := e.bookings.LoadMine(ctx, id.Email); err != nil {
		t.Fatalf("err: %v", err)
	}
	mine := e.bookings.Bookings()
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("unexpected bookings: %+v", mine)
	}

	// reschedule: patch the dates and the recomputed total
	in, out := future(10), future(12)
	total := pricing.QuoteStay(in, out, room.Price).Total
	upd, err := e.bookings.Update(ctx, created.ID, domain.BookingPatch{
		CheckIn:    &in,
		CheckOut:   &out,
		TotalPrice: &total,
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if upd.TotalPrice != 2*room.Price {
		t.Fatalf("unexpected rescheduled total: %v", upd.TotalPrice)
	}

	// cancel
	if err := e.bookings.Delete(ctx, created.ID); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := e.bookings.Bookings(); len(got) != 0 {
		t.Fatalf("booking should be gone, got %+v", got)
	}
	// deleting again: the backend no longer knows the id
	if err := e.bookings.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestE2E_ValidationStopsBeforeNetwork(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	if err := e.flow.Start(ctx, 1, 1); err != nil {
		t.Fatalf("err: %v", err)
	}

	form := app.BookingForm{
		GuestName: "Aziz Karimov",
		Email:     "aziz@example.com",
		CheckIn:   future(3),
		CheckOut:  future(6),
		Guests:    3, // room 1 sleeps 2
	}
	_, err := e.flow.Submit(ctx, form)
	var verr *app.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}

	if err := e.bookings.LoadMine(ctx, ""); err != nil {
		t.Fatalf("err: %v", err)
	}
	if got := e.bookings.Bookings(); len(got) != 0 {
		t.Fatalf("nothing may reach the backend on validation failure, got %+v", got)
	}
}

func TestE2E_RoomNotFound(t *testing.T) {
	e := newEnv(t)
	if err := e.flow.Start(context.Background(), 1, 404); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("want ErrRoomNotFound, got %v", err)
	}
}

func TestE2E_Complaint(t *testing.T) {
	ts := httptest.NewServer(devserver.New().Mux())
	defer ts.Close()
	cl := backend.New(ts.URL, "", 100)
	svc := app.NewComplaintService(cl, zerolog.Nop())

	c, err := svc.Submit(context.Background(), app.ComplaintInput{
		Name:    "Aziz Karimov",
		Email:   "aziz@example.com",
		Subject: "Late check-in",
		Message: "Reception kept us waiting for an hour.",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if c.Status != "pending" || c.ID == "" {
		t.Fatalf("unexpected complaint: %+v", c)
	}
}
