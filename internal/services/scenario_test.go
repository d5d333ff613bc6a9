package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/homeowner/internal/common"
	"github.com/dmitrijs2005/homeowner/internal/logging"
	"github.com/dmitrijs2005/homeowner/internal/repositories/accounts"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSessionScenario(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty account store on disk", t, func() {
		dir := t.TempDir()
		repo, err := accounts.New(accounts.FormatTSV, dir)
		So(err, ShouldBeNil)
		store, err := OpenAccountStore(ctx, repo, logging.NewNop())
		So(err, ShouldBeNil)
		session := NewSessionManager(store, logging.NewNop())

		Convey("When alice registers first", func() {
			alice, err := session.CreateAccount(ctx, "alice", "pw1")
			So(err, ShouldBeNil)

			Convey("She becomes the admin", func() {
				So(alice.IsAdmin, ShouldBeTrue)
			})

			Convey("And bob registers second", func() {
				bob, err := session.CreateAccount(ctx, "bob", "pw2")
				So(err, ShouldBeNil)
				So(bob.IsAdmin, ShouldBeFalse)

				Convey("A second alice is rejected", func() {
					_, err := session.CreateAccount(ctx, "alice", "pw3")
					So(err, ShouldEqual, common.ErrDuplicateUsername)
					So(len(session.ListAccounts()), ShouldEqual, 2)

					found, ok := store.FindByUsername("alice")
					So(ok, ShouldBeTrue)
					So(found.Password, ShouldEqual, "pw1")
				})

				Convey("Bob can log in", func() {
					_, err := session.Login(ctx, "bob", "pw2")
					So(err, ShouldBeNil)

					cur, ok := session.CurrentUser()
					So(ok, ShouldBeTrue)
					So(cur.Username, ShouldEqual, "bob")

					Convey("Deleting bob ends his session", func() {
						So(session.DeleteAccount(ctx, bob), ShouldBeNil)

						_, ok := session.CurrentUser()
						So(ok, ShouldBeFalse)
						So(session.State(), ShouldEqual, LoggedOut)
						So(len(session.ListAccounts()), ShouldEqual, 1)
					})

					Convey("Clearing all accounts logs him out", func() {
						So(session.ClearAllAccounts(ctx), ShouldBeNil)

						So(session.IsLoggedIn(), ShouldBeFalse)
						So(session.ListAccounts(), ShouldBeEmpty)
					})
				})

				Convey("A fresh store sees the same accounts in order", func() {
					So(store.Close(), ShouldBeNil)

					repo2, err := accounts.New(accounts.FormatTSV, dir)
					So(err, ShouldBeNil)
					store2, err := OpenAccountStore(ctx, repo2, logging.NewNop())
					So(err, ShouldBeNil)

					got := store2.ListAccounts()
					So(len(got), ShouldEqual, 2)
					So(got[0].Username, ShouldEqual, "alice")
					So(got[0].Password, ShouldEqual, "pw1")
					So(got[0].IsAdmin, ShouldBeTrue)
					So(got[1].Username, ShouldEqual, "bob")
					So(got[1].IsAdmin, ShouldBeFalse)
				})
			})
		})
	})
}
