package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/restaurantelilica/cardapio-backend/internal/menu"
)

func testItem(id, name string, price float64) menu.Item {
	return menu.Item{
		ID:        id,
		Name:      name,
		Category:  "Pratos",
		Price:     decimal.NewFromFloat(price),
		Available: true,
	}
}

func TestAddMergesLinesForSameItem(t *testing.T) {
	t.Parallel()

	feijoada := testItem("feij-1", "Feijoada", 5)

	state := State{}.Add(feijoada, 2).Add(feijoada, 3)

	if len(state.Lines) != 1 {
		t.Fatalf("expected one merged line, got %d", len(state.Lines))
	}
	if state.Lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", state.Lines[0].Quantity)
	}
	if got := state.Total(); !got.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected total 25, got %s", got)
	}
	if !state.IsOpen {
		t.Fatal("adding an item should open the cart")
	}
}

func TestAddDefaultsAndClampsQuantity(t *testing.T) {
	t.Parallel()

	item := testItem("a", "Acarajé", 10)

	state := State{}.Add(item, 0)
	if state.Lines[0].Quantity != 1 {
		t.Fatalf("zero quantity should default to 1, got %d", state.Lines[0].Quantity)
	}

	state = state.Add(item, 200)
	if state.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected clamp at %d, got %d", MaxQuantity, state.Lines[0].Quantity)
	}

	// Already at the cap: further adds stay at the cap.
	state = state.Add(item, 1)
	if state.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected quantity to stay at %d, got %d", MaxQuantity, state.Lines[0].Quantity)
	}
}

func TestAddRejectsUnavailableItem(t *testing.T) {
	t.Parallel()

	item := testItem("x", "Cuscuz", 8)
	item.Available = false

	state := State{}.Add(item, 1)
	if len(state.Lines) != 0 {
		t.Fatal("unavailable item must not enter the cart")
	}
	if state.IsOpen {
		t.Fatal("rejected add must not open the cart")
	}
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	t.Parallel()

	a := testItem("a", "Acarajé", 10)
	b := testItem("b", "Brigadeiro", 3)

	state := State{}.Add(a, 1).Add(b, 2).SetQuantity("a", 0)

	if len(state.Lines) != 1 || state.Lines[0].Item.ID != "b" {
		t.Fatalf("expected only item b to remain, got %+v", state.Lines)
	}
}

func TestSetQuantityClampsAndIgnoresMissing(t *testing.T) {
	t.Parallel()

	a := testItem("a", "Acarajé", 10)
	state := State{}.Add(a, 1)

	state = state.SetQuantity("a", 150)
	if state.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("expected clamp at %d, got %d", MaxQuantity, state.Lines[0].Quantity)
	}

	same := state.SetQuantity("missing", 3)
	if len(same.Lines) != 1 || same.Lines[0].Quantity != MaxQuantity {
		t.Fatalf("missing id must be a no-op, got %+v", same.Lines)
	}
}

func TestRemoveAndClearKeepVisibility(t *testing.T) {
	t.Parallel()

	a := testItem("a", "Acarajé", 10)
	b := testItem("b", "Brigadeiro", 3)
	state := State{}.Add(a, 1).Add(b, 1)

	state = state.Remove("a")
	if len(state.Lines) != 1 || state.Lines[0].Item.ID != "b" {
		t.Fatalf("expected only item b after remove, got %+v", state.Lines)
	}
	if !state.IsOpen {
		t.Fatal("remove must not close the cart")
	}

	state = state.Clear()
	if len(state.Lines) != 0 {
		t.Fatal("clear must empty the lines")
	}
	if !state.IsOpen {
		t.Fatal("clear must not touch visibility")
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	state := State{}
	state = state.Toggle(nil)
	if !state.IsOpen {
		t.Fatal("nil toggle should flip closed to open")
	}

	closed := false
	state = state.Toggle(&closed)
	if state.IsOpen {
		t.Fatal("explicit toggle(false) should close the cart")
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	t.Parallel()

	a := testItem("a", "Acarajé", 10)
	b := testItem("b", "Brigadeiro", 3)
	state := State{}.Add(a, 2).Add(b, 3)

	if got := state.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
}

func TestAddDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	a := testItem("a", "Acarajé", 10)
	before := State{}.Add(a, 1)

	_ = before.Add(a, 5)
	if before.Lines[0].Quantity != 1 {
		t.Fatalf("reducer must not mutate its receiver, got %d", before.Lines[0].Quantity)
	}
}
