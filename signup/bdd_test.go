package signup

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSignupScenarios(t *testing.T) {
	Convey("Given a signup form backed by an in-memory store", t, func() {
		ctx := context.Background()
		store := NewMemoryStore()
		screen := NewScreen()
		form := NewForm(store, screen, screen, nil)

		Convey("When Alice signs up with padded name and email", func() {
			form.Fill(Draft{Name: " Alice ", Email: " a@b.com ", Password: "secret1", ConfirmPassword: "secret1"})
			err := form.Submit(ctx)
			So(err, ShouldBeNil)

			Convey("Then the stored account is trimmed and keeps the raw password", func() {
				u, ok := store.FindByEmail("a@b.com")
				So(ok, ShouldBeTrue)
				So(u, ShouldResemble, User{Name: "Alice", Email: "a@b.com", Password: "secret1"})
			})

			Convey("And acknowledging the success alert replaces the screen with the profile", func() {
				n, _ := screen.Last()
				So(n.Title, ShouldEqual, "Success")

				screen.Acknowledge()
				So(screen.Route(), ShouldEqual, RouteProfile)
			})

			Convey("And signing up again with the same email is reported as a duplicate", func() {
				again := NewForm(store, screen, screen, nil)
				again.Fill(Draft{Name: "Alice Two", Email: "a@b.com", Password: "another1", ConfirmPassword: "another1"})

				So(again.Submit(ctx), ShouldEqual, ErrDuplicateAccount)
				n, _ := screen.Last()
				So(n.Message, ShouldEqual, "An account with this email already exists")

				u, _ := store.FindByEmail("a@b.com")
				So(u.Name, ShouldEqual, "Alice")
			})
		})

		Convey("When any field is blank", func() {
			form.Fill(Draft{Name: "Bob", Email: "   ", Password: "secret1", ConfirmPassword: "secret1"})

			Convey("Then submit reports missing fields and nothing is stored", func() {
				So(form.Submit(ctx), ShouldEqual, ErrMissingFields)
				exists, _ := store.UserExists(ctx, "")
				So(exists, ShouldBeFalse)
				So(form.Submitting(), ShouldBeFalse)
			})
		})

		Convey("When storage fails on save", func() {
			failing := &storageSpy{saveErr: errors.New("quota exceeded")}
			form := NewForm(failing, screen, screen, nil)
			form.Fill(Draft{Name: "Carol", Email: "c@d.com", Password: "secret1", ConfirmPassword: "secret1"})

			err := form.Submit(ctx)

			Convey("Then a generic failure is shown and the form can be resubmitted", func() {
				So(errors.Is(err, ErrStorage), ShouldBeTrue)
				n, _ := screen.Last()
				So(n.Message, ShouldEqual, "Failed to create account. Please try again.")
				So(form.Submitting(), ShouldBeFalse)

				failing.saveErr = nil
				So(form.Submit(ctx), ShouldBeNil)
				So(len(failing.saved), ShouldEqual, 2)
			})
		})
	})
}
