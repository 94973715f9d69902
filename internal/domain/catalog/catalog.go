// Package catalog holds the reference rows tickets point at: categories,
// priorities and statuses. They are seeded once and never edited at runtime.
package catalog

const (
	StatusNameOpen          = "Open"
	StatusNameInProgress    = "In Progress"
	StatusNamePendingUser   = "Pending User"
	StatusNamePendingVendor = "Pending Vendor"
	StatusNameResolved      = "Resolved"
	StatusNameClosed        = "Closed"

	CategoryNameOther = "Other"
)

// TerminalStatusNames are the statuses that count a ticket as complete.
var TerminalStatusNames = []string{StatusNameResolved, StatusNameClosed}

func IsTerminalStatusName(name string) bool {
	return name == StatusNameResolved || name == StatusNameClosed
}

type Category struct {
	id          uint
	name        string
	description string
}

func ReconstructCategory(id uint, name, description string) *Category {
	return &Category{id: id, name: name, description: description}
}

func (c *Category) ID() uint            { return c.id }
func (c *Category) Name() string        { return c.name }
func (c *Category) Description() string { return c.description }

// Priority carries the numeric level used for SLA lookup and ordering,
// 1 (Low) through 4 (Critical).
type Priority struct {
	id    uint
	name  string
	level int
	color string
}

func ReconstructPriority(id uint, name string, level int, color string) *Priority {
	return &Priority{id: id, name: name, level: level, color: color}
}

func (p *Priority) ID() uint      { return p.id }
func (p *Priority) Name() string  { return p.name }
func (p *Priority) Level() int    { return p.level }
func (p *Priority) Color() string { return p.color }

type Status struct {
	id          uint
	name        string
	description string
}

func ReconstructStatus(id uint, name, description string) *Status {
	return &Status{id: id, name: name, description: description}
}

func (s *Status) ID() uint            { return s.id }
func (s *Status) Name() string        { return s.name }
func (s *Status) Description() string { return s.description }

func (s *Status) IsTerminal() bool {
	return IsTerminalStatusName(s.name)
}
