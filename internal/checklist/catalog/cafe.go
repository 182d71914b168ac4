package catalog

import "jumpnjoy-ops/internal/checklist"

// CafeVersion identifies the current cafe catalog definition.
const CafeVersion = "2024.1"

var cafe = New("cafe", CafeVersion,
	checklist.TypeDefinition{
		Key:         "opening",
		Title:       "Opening Checklist",
		Description: "Complete these tasks when opening the cafe",
		Color:       "green",
		Items: []checklist.ItemDefinition{
			{ID: "ground_coffee", Label: "Ground coffee"},
			{ID: "turn_on_appliances", Label: "Turn on all appliances"},
			{ID: "open_cafe_till", Label: "Open up cafe till"},
			{ID: "morning_fridge_temps", Label: "Take morning fridge temps"},
			{ID: "hot_dog_temps", Label: "Take hot dog temps"},
			{ID: "fill_cake_stand", Label: "Fill up cake stand"},
		},
	},
	checklist.TypeDefinition{
		Key:         "midday",
		Title:       "Midday Operations Checklist",
		Description: "Regular tasks throughout the day",
		Color:       "blue",
		Items: []checklist.ItemDefinition{
			{ID: "check_food_temps", Label: "Check food temperatures"},
			{ID: "refill_coffee_beans", Label: "Refill coffee beans"},
			{ID: "clean_espresso_machine", Label: "Clean espresso machine"},
			{ID: "restock_cups_lids", Label: "Restock cups and lids"},
			{ID: "wipe_tables_chairs", Label: "Wipe down tables and chairs"},
			{ID: "check_milk_levels", Label: "Check milk levels"},
			{ID: "empty_bins", Label: "Empty bins if needed"},
			{ID: "sanitize_surfaces", Label: "Sanitize high-touch surfaces"},
		},
	},
	checklist.TypeDefinition{
		Key:         "closing",
		Title:       "Closing Checklist",
		Description: "End of day tasks before closing",
		Color:       "red",
		Items: []checklist.ItemDefinition{
			{ID: "turn_off_appliances", Label: "Turn off all appliances"},
			{ID: "clean_coffee_machines", Label: "Deep clean coffee machines"},
			{ID: "close_till_count", Label: "Close till and count cash"},
			{ID: "final_temp_check", Label: "Final temperature check"},
			{ID: "store_perishables", Label: "Store perishables properly"},
			{ID: "wipe_all_surfaces", Label: "Wipe down all surfaces"},
			{ID: "sweep_mop_floors", Label: "Sweep and mop floors"},
			{ID: "lock_secure_premises", Label: "Lock and secure premises"},
		},
	},
)

// Cafe returns the cafe daily checklist catalog.
func Cafe() *Catalog { return cafe }
