package tns

// Units gives the physical unit of each cleaned column, empty for
// dimensionless or textual columns.
func Units() map[string]string {
	return map[string]string{
		"back_end":               "",
		"barycentric_event_time": "",
		"burst_bandwidth":        "MHz",
		"burst_width":            "ms",
		"burst_width_err":        "ms",
		"dec_frac":               "frac. degrees",
		"decl":                   "",
		"decl_err":               "",
		"discovery_date":         "",
		"dm":                     "pc cm-3",
		"dm_model":               "",
		"filename":               "",
		"filetype":               "",
		"fluence":                "Jy ms",
		"fluence_err":            "Jy ms",
		"flux":                   "Jy",
		"flux_err":               "Jy",
		"frac_lin_pol":           "",
		"galactic_max_dm":        "pc cm^-3",
		"galactic_max_dm_model":  "",
		"gl_frac":                "frac. degrees",
		"gb_frac":                "frac. degrees",
		"group":                  "",
		"host_redshift":          "",
		"inst_bandwidth":         "MHz",
		"internal_name":          "",
		"lastmodified":           "",
		"name":                   "",
		"num_channels":           "",
		"num_files":              "",
		"photometry_date":        "",
		"photometry_id":          "",
		"public_webpage":         "",
		"ra":                     "",
		"ra_frac":                "frac. degrees",
		"ra_err":                 "",
		"ref_freq":               "MHz",
		"region_filename":        "",
		"remarks":                "",
		"repeater_of_objid":      "",
		"reporter_name":          "",
		"reports_id":             "",
		"rm":                     "rad m^-2",
		"rm_err":                 "rad m^-2",
		"sampling_time":          "ms",
		"scattering_time":        "ms",
		"scattering_time_err":    "ms",
		"snr":                    "",
		"telescope":              "",
		"telescope_mode":         "",
		"time_received":          "",
		"tns_id":                 "",
	}
}
