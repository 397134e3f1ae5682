package scheme

import (
	"fmt"
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var hexValue = regexp.MustCompile(`^[0-9A-F]{6}$`)

// SlotMap maps slot names such as base0D to bare hex values, remembering
// insertion order. Writes to an already filled slot are ignored, so the
// first producer of a slot always wins.
type SlotMap struct {
	entries *orderedmap.OrderedMap[string, string]
}

func NewSlotMap() *SlotMap {
	return &SlotMap{entries: orderedmap.New[string, string]()}
}

// Put fills a slot unless it is already filled. The value may carry a
// leading '#' and any letter case; it is stored as six uppercase hex
// digits or rejected with ErrGenerateColors.
func (m *SlotMap) Put(slot, hex string) error {
	hex = strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if !hexValue.MatchString(hex) {
		return fmt.Errorf("%w: slot %s: bad hex value %q", ErrGenerateColors, slot, hex)
	}

	if _, filled := m.entries.Get(slot); filled {
		return nil
	}

	m.entries.Set(slot, hex)

	return nil
}

// Get returns the bare hex value of a slot.
func (m *SlotMap) Get(slot string) (string, bool) {
	return m.entries.Get(slot)
}

// Len reports how many slots are filled.
func (m *SlotMap) Len() int {
	return m.entries.Len()
}

// Slots lists the filled slot names in insertion order.
func (m *SlotMap) Slots() []string {
	slots := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		slots = append(slots, pair.Key)
	}

	return slots
}

// Each visits every slot in insertion order.
func (m *SlotMap) Each(visit func(slot, hex string)) {
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		visit(pair.Key, pair.Value)
	}
}
