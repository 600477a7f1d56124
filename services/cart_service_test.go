package services

import (
	"errors"
	"testing"

	"github.com/azamatleskhan01/fastdelivery/entity"
)

func TestCartAddCreatesSingleLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("want 1 cart line, got %d", len(summary.Lines))
	}
	if got := summary.Lines[0].Item.Quantity; got != 2 {
		t.Errorf("want quantity 2, got %d", got)
	}
	if summary.Total != 10.00 {
		t.Errorf("want total 10.00, got %v", summary.Total)
	}
}

func TestCartAddAccumulatesExistingLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 3); err != nil {
		t.Fatalf("second add: %v", err)
	}

	summary, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("want 1 cart line after repeat add, got %d", len(summary.Lines))
	}
	if got := summary.Lines[0].Item.Quantity; got != 5 {
		t.Errorf("want quantity 5, got %d", got)
	}
}

func TestCartAddClampsAtMaxQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 8); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 8); err != nil {
		t.Fatalf("second add: %v", err)
	}

	summary, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := summary.Lines[0].Item.Quantity; got != entity.MaxCartQuantity {
		t.Errorf("want quantity clamped at %d, got %d", entity.MaxCartQuantity, got)
	}
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	for _, qty := range []int{0, -1, 11} {
		if err := svc.Add(user.ID, rest.MenuItems[0].ID, qty); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("qty %d: want ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)

	if err := svc.Add(user.ID, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	summary, _ := svc.List(user.ID)
	lineID := summary.Lines[0].Item.ID

	if err := svc.UpdateQuantity(user.ID, lineID, 7); err != nil {
		t.Fatalf("update: %v", err)
	}
	summary, _ = svc.List(user.ID)
	if got := summary.Lines[0].Item.Quantity; got != 7 {
		t.Errorf("want quantity 7, got %d", got)
	}

	if err := svc.UpdateQuantity(user.ID, lineID, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("want ErrInvalidQuantity, got %v", err)
	}
}

func TestCartOpsOnOtherUsersLineLookAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	alice := createUser(t, db, "alice", 1000)
	bob := createUser(t, db, "bob", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(alice.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	summary, _ := svc.List(alice.ID)
	lineID := summary.Lines[0].Item.ID

	if err := svc.UpdateQuantity(bob.ID, lineID, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("update as other user: want ErrNotFound, got %v", err)
	}
	if err := svc.Remove(bob.ID, lineID); !errors.Is(err, ErrNotFound) {
		t.Errorf("remove as other user: want ErrNotFound, got %v", err)
	}

	summary, _ = svc.List(alice.ID)
	if len(summary.Lines) != 1 || summary.Lines[0].Item.Quantity != 2 {
		t.Errorf("alice's cart changed: %+v", summary.Lines)
	}
}

func TestCartRemove(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00, 3.50)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(user.ID, rest.MenuItems[1].ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, _ := svc.List(user.ID)
	if err := svc.Remove(user.ID, summary.Lines[0].Item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	summary, _ = svc.List(user.ID)
	if len(summary.Lines) != 1 {
		t.Fatalf("want 1 remaining line, got %d", len(summary.Lines))
	}

	if err := svc.Remove(user.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("remove missing line: want ErrNotFound, got %v", err)
	}
}

func TestCartReAddAfterRemove(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	summary, _ := svc.List(user.ID)
	if err := svc.Remove(user.ID, summary.Lines[0].Item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	// the removed line must not keep occupying the (user, menu item) slot
	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 3); err != nil {
		t.Fatalf("re-add after remove: %v", err)
	}

	summary, _ = svc.List(user.ID)
	if len(summary.Lines) != 1 || summary.Lines[0].Item.Quantity != 3 {
		t.Errorf("unexpected cart after re-add: %+v", summary.Lines)
	}
}

func TestCartReAddAfterCheckout(t *testing.T) {
	db := newTestDB(t)
	carts := newCartService(db)
	orders := newOrderService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00)

	if err := carts.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := orders.CreateFromCart(user.ID, 43.2, 76.6); err != nil {
		t.Fatalf("create order: %v", err)
	}

	// a returning customer orders the same item again
	if err := carts.Add(user.ID, rest.MenuItems[0].ID, 1); err != nil {
		t.Fatalf("re-add after checkout: %v", err)
	}

	summary, _ := carts.List(user.ID)
	if len(summary.Lines) != 1 || summary.Lines[0].Item.Quantity != 1 {
		t.Errorf("unexpected cart after re-add: %+v", summary.Lines)
	}
}

func TestCartListSubtotalsAndTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db, "alice", 1000)
	rest := createRestaurant(t, db, "Pizzeria", 5.00, 3.50)

	if err := svc.Add(user.ID, rest.MenuItems[0].ID, 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.Add(user.ID, rest.MenuItems[1].ID, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	summary, err := svc.List(user.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if summary.Total != 13.50 {
		t.Errorf("want total 13.50, got %v", summary.Total)
	}
	if got := summary.Lines[0].Subtotal; got != 10.00 {
		t.Errorf("want first subtotal 10.00, got %v", got)
	}
	if got := summary.Lines[1].Subtotal; got != 3.50 {
		t.Errorf("want second subtotal 3.50, got %v", got)
	}
}
