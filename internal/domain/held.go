package domain

// HeldKind discriminates the variant of a held item
type HeldKind string

const (
	HeldCup    HeldKind = "cup"
	HeldPastry HeldKind = "pastry"
)

// HeldItem is the single object the player currently carries.
// At most one exists at a time; the session owns the slot.
type HeldItem struct {
	Kind     HeldKind    `json:"kind"`
	ItemID   string      `json:"item_id,omitempty"` // menu id for pastries, empty for cups
	Contents CupContents `json:"contents"`
	Quality  int         `json:"quality"`
}

// NewCup returns an empty cup at full quality
func NewCup() *HeldItem {
	return &HeldItem{
		Kind:    HeldCup,
		Quality: MaxQuality,
	}
}

// NewPastry returns a held pastry for the given menu item
func NewPastry(itemID string) *HeldItem {
	return &HeldItem{
		Kind:    HeldPastry,
		ItemID:  itemID,
		Quality: MaxQuality,
	}
}

// IsCup reports whether the held item is a cup
func (h *HeldItem) IsCup() bool {
	return h != nil && h.Kind == HeldCup
}

// IsPastry reports whether the held item is a pastry
func (h *HeldItem) IsPastry() bool {
	return h != nil && h.Kind == HeldPastry
}
