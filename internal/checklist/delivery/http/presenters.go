package http

import (
	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/catalog"
	"jumpnjoy-ops/pkg/response"
)

type itemResp struct {
	ItemID      string             `json:"item_id"`
	Label       string             `json:"label"`
	Completed   bool               `json:"completed"`
	CompletedAt *response.DateTime `json:"completed_at,omitempty"`
	CompletedBy string             `json:"completed_by,omitempty"`
	BackendID   string             `json:"backend_id,omitempty"`
}

type typeResp struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       string     `json:"color"`
	Items       []itemResp `json:"items"`
}

type dayResp struct {
	Date         string            `json:"date"`
	Initialized  bool              `json:"initialized"`
	LastSyncedAt response.DateTime `json:"last_synced_at"`
	Checklists   []typeResp        `json:"checklists"`
}

type toggleResp struct {
	ChecklistType string   `json:"checklist_type"`
	Item          itemResp `json:"item"`
	Created       bool     `json:"created"`
}

type typeProgressResp struct {
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type progressResp struct {
	Date  string             `json:"date"`
	Types []typeProgressResp `json:"types"`
}

// newDayResp renders the reconciled state in catalog order so the UI can
// lay out tabs and rows without re-sorting.
func (h *handler) newDayResp(cat *catalog.Catalog, out checklist.LoadOutput) dayResp {
	resp := dayResp{
		Date:         out.State.Date,
		Initialized:  out.Initialized,
		LastSyncedAt: response.DateTime(out.State.LastSyncAt),
	}
	for _, t := range cat.Types() {
		tr := typeResp{
			Key:         t.Key,
			Title:       t.Title,
			Description: t.Description,
			Color:       t.Color,
			Items:       make([]itemResp, 0, len(t.Items)),
		}
		for _, item := range t.Items {
			slot := out.State.Slots[checklist.SlotKey{Type: t.Key, ItemID: item.ID}]
			tr.Items = append(tr.Items, newItemResp(item, slot))
		}
		resp.Checklists = append(resp.Checklists, tr)
	}
	return resp
}

func (h *handler) newToggleResp(cat *catalog.Catalog, typeKey, itemID string, out checklist.ToggleOutput) toggleResp {
	item, _ := cat.Item(typeKey, itemID)
	item.ID = itemID
	return toggleResp{
		ChecklistType: typeKey,
		Item:          newItemResp(item, out.Slot),
		Created:       out.Created,
	}
}

func (h *handler) newProgressResp(out checklist.ProgressOutput) progressResp {
	resp := progressResp{Date: out.Date}
	for _, t := range out.Types {
		resp.Types = append(resp.Types, typeProgressResp{
			Type:      t.Type,
			Title:     t.Title,
			Completed: t.Completed,
			Total:     t.Total,
			Percent:   t.Percent,
		})
	}
	return resp
}

func newItemResp(item checklist.ItemDefinition, slot checklist.Slot) itemResp {
	r := itemResp{
		ItemID:      item.ID,
		Label:       item.Label,
		Completed:   slot.Completed,
		CompletedBy: slot.CompletedBy,
		BackendID:   slot.BackendID,
	}
	if slot.CompletedAt != nil {
		at := response.DateTime(*slot.CompletedAt)
		r.CompletedAt = &at
	}
	return r
}
