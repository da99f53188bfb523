package model

// View selects which top-level section is rendered.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewRepairs   View = "repairs"
	ViewBilling   View = "billing"
	ViewCustomers View = "customers"
	ViewInventory View = "inventory"
)

// ParseView resolves a view tag; unrecognized or empty input resolves
// to the dashboard.
func ParseView(tag string) View {
	switch View(tag) {
	case ViewRepairs:
		return ViewRepairs
	case ViewBilling:
		return ViewBilling
	case ViewCustomers:
		return ViewCustomers
	case ViewInventory:
		return ViewInventory
	default:
		return ViewDashboard
	}
}

// Title is the section name shown in the header.
func (v View) Title() string {
	switch v {
	case ViewRepairs:
		return "Repair Jobs"
	case ViewBilling:
		return "Billing"
	case ViewCustomers:
		return "Customers"
	case ViewInventory:
		return "Inventory"
	default:
		return "Dashboard"
	}
}

// AllViews lists the sections in sidebar order.
func AllViews() []View {
	return []View{ViewDashboard, ViewRepairs, ViewBilling, ViewCustomers, ViewInventory}
}
