package models

// Tab is one of the three mutually exclusive views of the main page
type Tab string

const (
	TabCheckIn  Tab = "checkin"
	TabCheckOut Tab = "checkout"
	TabList     Tab = "list"
)

// ParseTab maps a query value to a tab, defaulting to check-in
func ParseTab(value string) Tab {
	switch Tab(value) {
	case TabCheckOut:
		return TabCheckOut
	case TabList:
		return TabList
	default:
		return TabCheckIn
	}
}

// Title returns the label shown on the tab button
func (t Tab) Title() string {
	switch t {
	case TabCheckOut:
		return "Check Out"
	case TabList:
		return "Current"
	default:
		return "Check In"
	}
}

// Tabs lists the tabs in display order
func Tabs() []Tab {
	return []Tab{TabCheckIn, TabCheckOut, TabList}
}
