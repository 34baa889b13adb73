package rules

// Built-in dataset for Oakville Zoning By-law 2014-014, residential zones.
// An operator-supplied zoning.yaml overlay merges on top of these values
// key by key; the built-ins alone are a complete, loadable dataset.
//
// Zones the by-law tabulates in full (RL1-RL3, RL6-RL10) carry their full
// rule records. Zones for which only scattered figures are published
// (RL4, RL5, RL11, RUC, RM1-RM4, RH) carry what is known; absent fields
// stay unset and degrade to warnings at calculation time rather than
// being filled with guessed numbers.

func builtinDataset() map[string]interface{} {
	return map[string]interface{}{
		"version": "2014-014",

		"residential_zones": map[string]interface{}{
			"RL1": map[string]interface{}{
				"name":             "Residential Low 1",
				"category":         "residential_low",
				"description":      "Large estate residential lots",
				"typical_lot_size": "1,393+ m²",
				"min_lot_area":     1393.5,
				"min_lot_frontage": 30.5,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 10.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 10.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 4.2},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 4.2},
				},
				"max_height":                    10.5,
				"max_height_suffix_0":           9.0,
				"max_storeys_suffix_0":          2,
				"max_dwelling_depth":            20.0,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.30},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling"},
				"corner_lot_adjustments": map[string]interface{}{
					"rear_yard_reduced_to":   3.5,
					"requires_interior_side": 3.0,
				},
			},

			"RL2": map[string]interface{}{
				"name":             "Residential Low 2",
				"category":         "residential_low",
				"description":      "Large residential lots",
				"typical_lot_size": "836+ m²",
				"min_lot_area":     836.0,
				"min_lot_frontage": 22.5,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 9.0},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 2.4},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.5},
				},
				"max_height":                    12.0,
				"max_height_suffix_0":           9.0,
				"max_storeys_suffix_0":          2,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.30},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling"},
				"corner_lot_adjustments": map[string]interface{}{
					"rear_yard_reduced_to":   3.5,
					"requires_interior_side": 3.0,
				},
				"garage_adjustments": map[string]interface{}{
					"interior_side_reduced_to": 1.2,
					"applies_to":               "attached_garage",
				},
			},

			"RL3": map[string]interface{}{
				"name":             "Residential Low 3",
				"category":         "residential_low",
				"description":      "Medium-large residential lots",
				"typical_lot_size": "557+ m²",
				"min_lot_area":     557.5,
				"min_lot_frontage": 18.0,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 7.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "min_max", "min": 2.4, "max": 1.2},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.5},
				},
				"max_height":                    12.0,
				"max_height_suffix_0":           9.0,
				"max_storeys_suffix_0":          2,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.35},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling"},
				"corner_lot_adjustments": map[string]interface{}{
					"rear_yard_reduced_to":   3.5,
					"requires_interior_side": 3.0,
				},
			},

			"RL4": map[string]interface{}{
				"name":                          "Residential Low 4",
				"category":                      "residential_low",
				"description":                   "Medium residential lots",
				"typical_lot_size":              "511+ m²",
				"min_lot_area":                  511.0,
				"max_height_suffix_0":           9.0,
				"max_storeys_suffix_0":          2,
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling"},
			},

			"RL5": map[string]interface{}{
				"name":                          "Residential Low 5",
				"category":                      "residential_low",
				"description":                   "Medium residential lots",
				"typical_lot_size":              "464+ m²",
				"min_lot_area":                  464.5,
				"max_height_suffix_0":           9.0,
				"max_storeys_suffix_0":          2,
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling"},
			},

			"RL6": map[string]interface{}{
				"name":                    "Residential Low 6",
				"category":                "residential_low",
				"description":             "Small residential lots",
				"typical_lot_size":        "250+ m²",
				"min_lot_area":            250.0,
				"min_lot_frontage":        11.0,
				"corner_min_lot_area":     285.0,
				"corner_min_lot_frontage": 12.5,
				"setbacks": map[string]interface{}{
					"front_yard":    map[string]interface{}{"type": "fixed", "value": 3.0},
					"rear_yard":     map[string]interface{}{"type": "fixed", "value": 7.0},
					"interior_side": map[string]interface{}{"type": "min_max", "min": 1.2, "max": 0.6},
					"flankage_yard": map[string]interface{}{"type": "fixed", "value": 3.0},
				},
				"max_height":              10.5,
				"max_storeys":             2,
				"max_floor_area_ratio":    map[string]interface{}{"type": "fraction", "value": 0.75},
				"max_floor_area_absolute": 355.0,
				"permitted_uses":          []interface{}{"detached_dwelling"},
			},

			"RL7": map[string]interface{}{
				"name":             "Residential Low 7",
				"category":         "residential_low",
				"description":      "Mixed detached and semi-detached",
				"typical_lot_size": "557+ m²",
				"min_lot_area":     400.0,
				"min_lot_frontage": 12.0,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 7.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 2.4},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.0},
				},
				"max_height":                    10.5,
				"max_height_suffix_0":           9.0,
				"max_storeys":                   2,
				"max_storeys_suffix_0":          2,
				"max_dwelling_depth":            20.0,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.35},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling", "semi_detached_dwelling"},
			},

			"RL8": map[string]interface{}{
				"name":             "Residential Low 8",
				"category":         "residential_low",
				"description":      "Higher density low residential",
				"typical_lot_size": "360+ m²",
				"min_lot_area":     350.0,
				"min_lot_frontage": 11.0,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 7.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 2.4},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.0},
				},
				"max_height":                    10.5,
				"max_height_suffix_0":           9.0,
				"max_storeys":                   2,
				"max_storeys_suffix_0":          2,
				"max_dwelling_depth":            20.0,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.35},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling", "semi_detached_dwelling"},
			},

			"RL9": map[string]interface{}{
				"name":             "Residential Low 9",
				"category":         "residential_low",
				"description":      "Higher density low residential",
				"typical_lot_size": "270+ m²",
				"min_lot_area":     300.0,
				"min_lot_frontage": 10.0,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 7.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 2.4},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.0},
				},
				"max_height":                    10.5,
				"max_height_suffix_0":           9.0,
				"max_storeys":                   2,
				"max_storeys_suffix_0":          2,
				"max_dwelling_depth":            20.0,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.35},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"permitted_uses":                []interface{}{"detached_dwelling", "semi_detached_dwelling"},
			},

			"RL10": map[string]interface{}{
				"name":             "Residential Low 10",
				"category":         "residential_low",
				"description":      "Detached and duplex dwellings",
				"typical_lot_size": "464+ m²",
				"min_lot_area":     250.0,
				"min_lot_frontage": 9.0,
				"setbacks": map[string]interface{}{
					"front_yard":          map[string]interface{}{"type": "fixed", "value": 7.5},
					"front_yard_suffix_0": map[string]interface{}{"type": "requires_survey"},
					"rear_yard":           map[string]interface{}{"type": "fixed", "value": 7.5},
					"interior_side":       map[string]interface{}{"type": "fixed", "value": 2.4},
					"flankage_yard":       map[string]interface{}{"type": "fixed", "value": 3.0},
				},
				"max_height":                    10.5,
				"max_height_suffix_0":           9.0,
				"max_storeys":                   2,
				"max_storeys_suffix_0":          2,
				"max_dwelling_depth":            20.0,
				"max_lot_coverage":              map[string]interface{}{"type": "fraction", "value": 0.35},
				"max_lot_coverage_suffix_0":     map[string]interface{}{"type": "table", "table": "table_6.4.2"},
				"max_floor_area_ratio_suffix_0": map[string]interface{}{"type": "table", "table": "table_6.4.1"},
				"duplex_min_lot_area":           743.0,
				"permitted_uses":                []interface{}{"detached_dwelling", "duplex_dwelling"},
			},

			"RL11": map[string]interface{}{
				"name":             "Residential Low 11",
				"category":         "residential_low",
				"description":      "Linked dwelling units",
				"typical_lot_size": "650+ m²",
				"min_lot_area":     650.0,
				"permitted_uses":   []interface{}{"linked_dwelling"},
			},

			"RUC": map[string]interface{}{
				"name":                  "Residential Uptown Core",
				"category":              "residential_uptown_core",
				"description":           "Mixed residential in uptown core",
				"typical_lot_size":      "150+ m² per unit",
				"min_lot_area_per_unit": 150.0,
				"permitted_uses": []interface{}{
					"detached_dwelling", "semi_detached_dwelling", "townhouse_dwelling",
				},
			},

			"RM1": map[string]interface{}{
				"name":                  "Residential Medium 1",
				"category":              "residential_medium",
				"description":           "Townhouse developments",
				"typical_lot_size":      "135 m² per unit",
				"min_lot_area_per_unit": 135.0,
				"permitted_uses":        []interface{}{"townhouse_dwelling"},
			},

			"RM2": map[string]interface{}{
				"name":                  "Residential Medium 2",
				"category":              "residential_medium",
				"description":           "Back-to-back townhouses",
				"typical_lot_size":      "135 m² per unit",
				"min_lot_area_per_unit": 135.0,
				"permitted_uses":        []interface{}{"back_to_back_townhouse_dwelling"},
			},

			"RM3": map[string]interface{}{
				"name":             "Residential Medium 3",
				"category":         "residential_medium",
				"description":      "Stacked townhouses and apartments",
				"typical_lot_size": "1,486+ m²",
				"min_lot_area":     1486.0,
				"permitted_uses": []interface{}{
					"stacked_townhouse_dwelling", "apartment_dwelling",
				},
			},

			"RM4": map[string]interface{}{
				"name":             "Residential Medium 4",
				"category":         "residential_medium",
				"description":      "Apartment buildings",
				"typical_lot_size": "1,486+ m²",
				"min_lot_area":     1486.0,
				"permitted_uses":   []interface{}{"apartment_dwelling"},
			},

			"RH": map[string]interface{}{
				"name":             "Residential High",
				"category":         "residential_high",
				"description":      "High density residential",
				"typical_lot_size": "1,858+ m²",
				"min_lot_area":     1858.0,
				"permitted_uses":   []interface{}{"apartment_dwelling"},
			},
		},

		"special_provisions": map[string]interface{}{
			"SP:1": map[string]interface{}{
				"description": "Site-specific development standards, provision 1",
			},
			"SP:2": map[string]interface{}{
				"description": "Site-specific development standards, provision 2",
			},
		},

		"lookup_tables": map[string]interface{}{
			// Table 6.4.1: residential floor area ratio by lot area for
			// enhanced-infill zones. Band edges reproduced exactly as
			// published; the first band is open below 557.5 and the last
			// is open above 1301.00.
			"far_by_lot_area": []interface{}{
				map[string]interface{}{"below": 557.5, "value": 0.43},
				map[string]interface{}{"up_to": 649.99, "value": 0.42},
				map[string]interface{}{"up_to": 742.99, "value": 0.41},
				map[string]interface{}{"up_to": 835.99, "value": 0.40},
				map[string]interface{}{"up_to": 928.99, "value": 0.39},
				map[string]interface{}{"up_to": 1021.99, "value": 0.38},
				map[string]interface{}{"up_to": 1114.99, "value": 0.37},
				map[string]interface{}{"up_to": 1207.99, "value": 0.35},
				map[string]interface{}{"up_to": 1300.99, "value": 0.32},
				map[string]interface{}{"value": 0.29},
			},

			// Table 6.4.2: lot coverage for enhanced-infill zones by zone
			// group and building height. Groups the table does not name
			// have no defined value.
			"coverage_by_zone": []interface{}{
				map[string]interface{}{
					"zones":                []interface{}{"RL1", "RL2"},
					"height_threshold":     7.0,
					"coverage_at_or_below": 0.30,
					"coverage_above":       0.25,
				},
				map[string]interface{}{
					"zones":    []interface{}{"RL3", "RL4", "RL5", "RL7", "RL8", "RL10"},
					"coverage": 0.35,
				},
			},
		},
	}
}
