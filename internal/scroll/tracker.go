// Package scroll determines which named page section is currently in view.
package scroll

const (
	// DefaultSection is reported until a scan finds something better.
	DefaultSection = "home"
	// DefaultLookahead compensates for a fixed height header so a section becomes active
	// slightly before it reaches the very top of the viewport.
	DefaultLookahead = 100
	// DefaultScrolledThreshold is the offset past which the page counts as scrolled.
	DefaultScrolledThreshold = 50
)

// Anchors are the page sections in layout order.
var Anchors = []string{"home", "about", "skills", "projects", "experience", "contact"} //nolint:gochecknoglobals

// Section is a named, contiguous vertical range of the page.
type Section struct {
	ID     string
	Top    int
	Height int
}

// Bottom is the first offset past the end of the section.
func (s Section) Bottom() int {
	return s.Top + s.Height
}

// Contains reports if y falls within [Top, Bottom).
func (s Section) Contains(y int) bool {
	return y >= s.Top && y < s.Bottom()
}

// Active returns the ID of the first section containing offset+lookahead. When no section
// contains the target the previous value is kept so the indicator never drops to nothing.
func Active(offset int, sections []Section, previous string, lookahead int) string {
	target := offset + lookahead
	for _, section := range sections {
		if section.Contains(target) {
			return section.ID
		}
	}

	return previous
}

// Scrolled reports whether the offset is past the threshold.
func Scrolled(offset int, threshold int) bool {
	return offset > threshold
}

// Stack lays out sections of the given heights back to back starting at offset 0.
func Stack(ids []string, heights []int) []Section {
	sections := make([]Section, 0, min(len(ids), len(heights)))
	top := 0
	for idx := range min(len(ids), len(heights)) {
		sections = append(sections, Section{ID: ids[idx], Top: top, Height: heights[idx]})
		top += heights[idx]
	}

	return sections
}

// Tracker owns all of the mutable tracking state. Offsets are pushed in with Observe
// as often as they arrive, but the section scan only happens once per Frame.
type Tracker struct {
	sections  []Section
	lookahead int
	threshold int
	offset    int
	active    string
	scrolled  bool
	pending   bool
}

func NewTracker(lookahead int, threshold int) *Tracker {
	return &Tracker{
		lookahead: lookahead,
		threshold: threshold,
		active:    DefaultSection,
	}
}

// SetSections replaces the current layout. Call after anything changes the rendered heights.
func (t *Tracker) SetSections(sections []Section) {
	t.sections = sections
}

// Configure updates the lookahead and scrolled threshold.
func (t *Tracker) Configure(lookahead int, threshold int) {
	t.lookahead = lookahead
	t.threshold = threshold
}

// Observe records the latest offset. It returns true only when the caller should schedule a
// frame, which is when no scan is already waiting for the next one.
func (t *Tracker) Observe(offset int) bool {
	t.offset = max(0, offset)
	if t.pending {
		return false
	}

	t.pending = true

	return true
}

// Frame runs a single scan over the most recently observed offset.
func (t *Tracker) Frame() (string, bool, bool) {
	t.pending = false

	prevActive, prevScrolled := t.active, t.scrolled
	t.scrolled = Scrolled(t.offset, t.threshold)
	if len(t.sections) > 0 {
		t.active = Active(t.offset, t.sections, t.active, t.lookahead)
	}

	return t.active, t.scrolled, prevActive != t.active || prevScrolled != t.scrolled
}

func (t *Tracker) Active() string {
	return t.active
}

func (t *Tracker) IsScrolled() bool {
	return t.scrolled
}

func (t *Tracker) Offset() int {
	return t.offset
}

func (t *Tracker) Pending() bool {
	return t.pending
}

// SectionTop returns the starting offset of the named section.
func (t *Tracker) SectionTop(id string) (int, bool) {
	for _, section := range t.sections {
		if section.ID == id {
			return section.Top, true
		}
	}

	return 0, false
}
