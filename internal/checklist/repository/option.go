package repository

// CreateRecordOptions holds the parameters for materializing one checklist
// record in the portal backend.
type CreateRecordOptions struct {
	ChecklistType string // "opening", "midday", "closing"
	ItemID        string // catalog item id
	ItemName      string // human label snapshotted at creation
	Date          string // YYYY-MM-DD
}
