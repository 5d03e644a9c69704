package views

import (
	"fmt"

	"hms/validators"
	"hms/widgets"
)

func inventoryRows(s session) []widgets.TableRow {
	medicines := s.store.Inventory()
	rows := make([]widgets.TableRow, 0, len(medicines))
	for _, m := range medicines {
		alert := ""
		if m.Low() {
			alert = "LOW"
		}
		rows = append(rows, widgets.NewRow(m.Name, fmt.Sprint(m.Stock), fmt.Sprint(m.LowStockAlert), alert).WithMeta(m.Name))
	}
	return rows
}

var inventoryHeader = []string{"Medicine", "Stock", "Alert Level", ""}

type Inventory struct {
	session
}

func NewInventory(s session) *Inventory {
	return &Inventory{session: s}
}

func (v *Inventory) Title() string { return "Inventory" }

func (v *Inventory) Build(widgets.Context) (widgets.Widget, error) {
	table, err := widgets.NewTable(inventoryHeader, inventoryRows(v.session)...)
	if err != nil {
		return nil, err
	}
	return page(v.session, table.AlignColumn(1, widgets.End).AlignColumn(2, widgets.End)), nil
}

type Replenish struct {
	session
	table widgets.EnumeratedTable
}

func NewReplenish(s session) *Replenish {
	return &Replenish{session: s}
}

func (v *Replenish) Title() string { return "Replenishment Request" }

func (v *Replenish) Build(widgets.Context) (widgets.Widget, error) {
	table, err := widgets.NewEnumeratedTable(inventoryHeader, inventoryRows(v.session)...)
	if err != nil {
		return nil, err
	}
	v.table = table.AlignColumn(1, widgets.End).AlignColumn(2, widgets.End)
	return page(v.session, v.table, widgets.VSpacer(1)), nil
}

func (v *Replenish) Interact(ctx widgets.Context, term widgets.Terminal) error {
	row, err := widgets.NewTextInput("Select a medicine", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	quantity, err := widgets.NewTextInput("Quantity", validators.Quantity).
		Hint(fmt.Sprintf("Units of %s to order.", row.Cells[0])).
		Capture(ctx, term)
	if err != nil {
		return err
	}
	request, err := v.store.RequestReplenishment(row.Meta.(string), quantity)
	if err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not submit the request: %v.", err))
	}
	return finish(v.session, ctx, term, fmt.Sprintf("Requested %d units of %s.", request.Quantity, request.Medicine))
}

type ApproveRequests struct {
	session
	table widgets.EnumeratedTable
}

func NewApproveRequests(s session) *ApproveRequests {
	return &ApproveRequests{session: s}
}

func (v *ApproveRequests) Title() string { return "Replenishment Requests" }

func (v *ApproveRequests) Build(widgets.Context) (widgets.Widget, error) {
	requests := v.store.PendingRequests()
	rows := make([]widgets.TableRow, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, widgets.NewRow(r.Medicine, fmt.Sprint(r.Quantity)).WithMeta(r.ID))
	}
	table, err := widgets.NewEnumeratedTable([]string{"Medicine", "Quantity"}, rows...)
	if err != nil {
		return nil, err
	}
	v.table = table.AlignColumn(1, widgets.End)
	return page(v.session, v.table, widgets.VSpacer(1)), nil
}

// Interact approves one request per cycle until none are left.
func (v *ApproveRequests) Interact(ctx widgets.Context, term widgets.Terminal) error {
	if v.table.Len() == 0 {
		return finish(v.session, ctx, term, "There are no pending requests.")
	}
	row, err := widgets.NewTextInput("Select a request to approve", v.table.Pick).Capture(ctx, term)
	if err != nil {
		return err
	}
	if err := v.store.Approve(row.Meta.(string)); err != nil {
		return finish(v.session, ctx, term, fmt.Sprintf("Could not approve the request: %v.", err))
	}
	return nil
}
