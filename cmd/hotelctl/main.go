package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"jizzakh_hotels/internal/adapters/backend"
	"jizzakh_hotels/internal/adapters/observability"
	redisad "jizzakh_hotels/internal/adapters/redis"
	"jizzakh_hotels/internal/app"
	"jizzakh_hotels/internal/domain"
	"jizzakh_hotels/internal/i18n"
	"jizzakh_hotels/internal/pricing"
	"jizzakh_hotels/internal/shared"
)

const usage = `usage: hotelctl <command> [flags]

commands:
  hotels                      list the hotel catalog
  hotel <id>                  show one hotel with its rooms
  book                        book a room (see book -h)
  bookings                    list my bookings
  cancel <id>                 cancel a booking
  reschedule                  move a booking to new dates (see reschedule -h)
  complain                    submit a complaint (see complain -h)
  lang <en|uz|ru>             set the interface language
  dark                        toggle dark mode
  whoami                      show the session identity
  logout                      drop the session identity
`

type cli struct {
	catalog    *app.CatalogStore
	bookings   *app.BookingStore
	session    *app.SessionStore
	flow       *app.BookingFlow
	complaints *app.ComplaintService
}

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	observability.Serve()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	client := backend.New(cfg.BackendBase, cfg.BackendKey, 10)
	storage := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.SessionKey)
	session := app.NewSessionStore(ctx, storage, cfg.DefaultLang, log.Logger)
	catalog := app.NewCatalogStore(client, log.Logger)
	bookings := app.NewBookingStore(client, log.Logger)

	c := &cli{
		catalog:    catalog,
		bookings:   bookings,
		session:    session,
		flow:       app.NewBookingFlow(catalog, bookings, session, log.Logger),
		complaints: app.NewComplaintService(client, log.Logger),
	}

	if err := c.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			for field, reason := range verr.Fields {
				fmt.Fprintf(os.Stderr, "  %s %s\n", field, reason)
			}
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}

func (c *cli) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "hotels":
		return c.listHotels(ctx)
	case "hotel":
		return c.showHotel(ctx, args)
	case "book":
		return c.book(ctx, args)
	case "bookings":
		return c.listBookings(ctx)
	case "cancel":
		return c.cancel(ctx, args)
	case "reschedule":
		return c.reschedule(ctx, args)
	case "complain":
		return c.complain(ctx, args)
	case "lang":
		return c.setLang(ctx, args)
	case "dark":
		if err := c.session.ToggleDarkMode(ctx); err != nil {
			return err
		}
		fmt.Printf("dark mode: %v\n", c.session.DarkMode())
		return nil
	case "whoami":
		id, ok := c.session.Identity()
		if !ok {
			fmt.Println("not logged in")
			return nil
		}
		fmt.Printf("%s <%s>\n", id.Name, id.Email)
		return nil
	case "logout":
		return c.session.Logout(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (c *cli) listHotels(ctx context.Context) error {
	if err := c.catalog.LoadAll(ctx); err != nil {
		return err
	}
	lang := c.session.Language()
	for _, h := range c.catalog.Hotels() {
		fmt.Printf("%3d  %-30s %-8s %.1f\n", h.ID, h.Name.In(lang), h.Location, h.Rating)
	}
	return nil
}

func (c *cli) showHotel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: hotel <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("hotel id must be a number: %q", args[0])
	}
	// leaving the previous detail around would flash a stale hotel
	c.catalog.ClearDetail()
	if err := c.catalog.LoadDetail(ctx, id); err != nil {
		return err
	}
	h, ok := c.catalog.CurrentHotel()
	if !ok {
		return errors.New("hotel detail unavailable")
	}
	c.session.ApplyHotelTheme(h.Location)

	lang := c.session.Language()
	fmt.Printf("%s (%.1f)\n%s\n\n", h.Name.In(lang), h.Rating, h.Description.In(lang))
	for _, r := range h.Rooms {
		fmt.Printf("  room %d: %-25s $%.0f/night, sleeps %d\n", r.ID, r.Type.In(lang), r.Price, r.Capacity)
		fmt.Printf("          %s\n", strings.Join(r.Amenities.In(lang), ", "))
	}
	return nil
}

func (c *cli) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	hotelID := fs.Int64("hotel", 0, "hotel id")
	roomID := fs.Int64("room", 0, "room id")
	name := fs.String("name", "", "guest name")
	email := fs.String("email", "", "guest email")
	checkIn := fs.String("checkin", "", "check-in date (YYYY-MM-DD)")
	checkOut := fs.String("checkout", "", "check-out date (YYYY-MM-DD)")
	guests := fs.Int("guests", 1, "number of guests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := c.flow.Start(ctx, *hotelID, *roomID); err != nil {
		return err
	}

	form := app.BookingForm{
		GuestName: *name,
		Email:     *email,
		CheckIn:   *checkIn,
		CheckOut:  *checkOut,
		Guests:    *guests,
	}
	if q := c.flow.Preview(form); q.Valid() {
		fmt.Printf("%d night(s), total $%.0f\n", q.Nights, q.Total)
	}

	b, err := c.flow.Submit(ctx, form)
	if err != nil {
		return err
	}
	fmt.Printf("booking %s %s: %s -> %s for $%.0f\n", b.ID, b.Status, b.CheckIn, b.CheckOut, b.TotalPrice)
	return nil
}

func (c *cli) listBookings(ctx context.Context) error {
	email := ""
	if id, ok := c.session.Identity(); ok {
		email = id.Email
	}
	if err := c.bookings.LoadMine(ctx, email); err != nil {
		return err
	}
	for _, b := range c.bookings.Bookings() {
		fmt.Printf("%-12s hotel %d room %d  %s -> %s  %d guest(s)  $%.0f  [%s]\n",
			b.ID, b.HotelID, b.RoomID, b.CheckIn, b.CheckOut, b.Guests, b.TotalPrice, b.Status)
	}
	return nil
}

func (c *cli) cancel(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: cancel <booking-id>")
	}
	if err := c.bookings.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("booking %s cancelled\n", args[0])
	return nil
}

func (c *cli) reschedule(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reschedule", flag.ExitOnError)
	id := fs.String("id", "", "booking id")
	checkIn := fs.String("checkin", "", "new check-in date (YYYY-MM-DD)")
	checkOut := fs.String("checkout", "", "new check-out date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" || *checkIn == "" || *checkOut == "" {
		return errors.New("usage: reschedule -id ID -checkin DATE -checkout DATE")
	}

	email := ""
	if ident, ok := c.session.Identity(); ok {
		email = ident.Email
	}
	if err := c.bookings.LoadMine(ctx, email); err != nil {
		return err
	}
	var target *domain.Booking
	for _, b := range c.bookings.Bookings() {
		if b.ID == *id {
			b := b
			target = &b
			break
		}
	}
	if target == nil {
		return fmt.Errorf("booking %s not found", *id)
	}

	// the new total must still equal nights x nightly rate, so fetch the
	// room's current rate before patching
	if err := c.catalog.LoadDetail(ctx, target.HotelID); err != nil {
		return err
	}
	h, ok := c.catalog.CurrentHotel()
	if !ok {
		return errors.New("hotel detail unavailable")
	}
	room, ok := h.Room(target.RoomID)
	if !ok {
		return fmt.Errorf("room %d no longer offered by hotel %d", target.RoomID, target.HotelID)
	}
	q := pricing.QuoteStay(*checkIn, *checkOut, room.Price)
	if !q.Valid() {
		return errors.New("check-out must be after check-in")
	}

	b, err := c.bookings.Update(ctx, *id, domain.BookingPatch{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: &q.Total,
	})
	if err != nil {
		return err
	}
	fmt.Printf("booking %s moved to %s -> %s, total $%.0f\n", b.ID, b.CheckIn, b.CheckOut, b.TotalPrice)
	return nil
}

func (c *cli) complain(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("complain", flag.ExitOnError)
	name := fs.String("name", "", "your name")
	email := fs.String("email", "", "your email")
	subject := fs.String("subject", "", "subject")
	message := fs.String("message", "", "message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cm, err := c.complaints.Submit(ctx, app.ComplaintInput{
		Name:    *name,
		Email:   *email,
		Subject: *subject,
		Message: *message,
	})
	if err != nil {
		return err
	}
	fmt.Printf("complaint %s submitted\n", cm.ID)
	return nil
}

func (c *cli) setLang(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: lang <en|uz|ru>")
	}
	l, err := i18n.Parse(args[0])
	if err != nil {
		return err
	}
	if err := c.session.SetLanguage(ctx, l); err != nil {
		return err
	}
	fmt.Printf("language set to %s\n", l)
	return nil
}
