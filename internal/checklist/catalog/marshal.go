package catalog

import "jumpnjoy-ops/internal/checklist"

// MarshalVersion identifies the current marshal catalog definition.
const MarshalVersion = "2024.1"

var marshal = New("marshal", MarshalVersion,
	checklist.TypeDefinition{
		Key:         "opening",
		Title:       "Court Opening Checklist",
		Description: "Safety checks before opening the courts to jumpers",
		Color:       "green",
		Items: []checklist.ItemDefinition{
			{ID: "walk_all_courts", Label: "Walk all courts and landing zones"},
			{ID: "check_springs", Label: "Check springs for wear or gaps"},
			{ID: "check_safety_nets", Label: "Check safety nets are intact"},
			{ID: "rake_foam_pits", Label: "Rake and level foam pits"},
			{ID: "check_padding", Label: "Check padding alignment and coverage"},
			{ID: "safety_briefing_ready", Label: "Set up safety briefing station"},
		},
	},
	checklist.TypeDefinition{
		Key:         "midday",
		Title:       "Midday Court Checklist",
		Description: "Ongoing supervision tasks during opening hours",
		Color:       "blue",
		Items: []checklist.ItemDefinition{
			{ID: "rotate_court_positions", Label: "Rotate marshal court positions"},
			{ID: "foam_pit_depth_check", Label: "Check foam pit depth"},
			{ID: "hourly_headcount", Label: "Do hourly court headcount"},
			{ID: "inspect_pad_shift", Label: "Inspect pads for shifting"},
			{ID: "log_equipment_faults", Label: "Log any equipment faults"},
			{ID: "hydration_reminder", Label: "Announce hydration break"},
		},
	},
	checklist.TypeDefinition{
		Key:         "closing",
		Title:       "Court Closing Checklist",
		Description: "End of day court shutdown and inspection",
		Color:       "red",
		Items: []checklist.ItemDefinition{
			{ID: "clear_all_courts", Label: "Clear all courts of jumpers"},
			{ID: "final_walkthrough", Label: "Final walkthrough of all courts"},
			{ID: "report_faults", Label: "Report outstanding equipment faults"},
			{ID: "secure_foam_pits", Label: "Cover and secure foam pits"},
			{ID: "store_loose_equipment", Label: "Store loose equipment"},
			{ID: "lock_court_access", Label: "Lock court access gates"},
		},
	},
)

// Marshal returns the marshal (court safety) daily checklist catalog.
func Marshal() *Catalog { return marshal }
