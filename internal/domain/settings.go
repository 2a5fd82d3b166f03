package domain

import (
	"slices"
	"strings"
)

// SettingsGroup names a grouped settings payload.
type SettingsGroup string

const (
	SettingsGroupGraderReport SettingsGroup = "grader_report"
	SettingsGroupGradeGeneral SettingsGroup = "grade_general"
	SettingsGroupCourseGrade  SettingsGroup = "course_grade"
	SettingsGroupLeeloo       SettingsGroup = "leeloo"
)

// Config keys of the leeloo group.
const (
	ConfigInstallURL = "leeloolxp_installurl"
	ConfigLicense    = "leeloolxp_license"
)

var settingsKeys = map[SettingsGroup][]string{
	SettingsGroupGraderReport: {
		"grade_report_averagesdecimalpoints",
		"grade_report_averagesdisplaytype",
		"grade_report_collapsedcategories",
		"grade_report_enableajax",
		"grade_report_meanselection",
		"grade_report_quickgrading",
		"grade_report_rangesdecimalpoints",
		"grade_report_rangesdisplaytype",
		"grade_report_showactivityicons",
		"grade_report_showaverages",
		"grade_report_showcalculations",
		"grade_report_showeyecons",
		"grade_report_showlocks",
		"grade_report_shownumberofgrades",
		"grade_report_showonlyactiveenrol",
		"grade_report_showquickfeedback",
		"grade_report_showranges",
		"grade_report_showuserimage",
		"grade_report_studentsperpage",
	},
	SettingsGroupGradeGeneral: {
		"grade_aggregation",
		"grade_decimalpoints",
		"grade_displaytype",
		"grade_export_decimalpoints",
		"grade_export_displaytype",
		"grade_hiddenasdate",
		"grade_hideforcedsettings",
		"grade_includescalesinaggregation",
		"grade_minmaxtouse",
		"grade_navmethod",
		"grade_profilereport",
		"grade_report_showmin",
	},
	SettingsGroupCourseGrade: {
		"aggregationposition",
		"decimalpoints",
		"displaytype",
		"minmaxtouse",
		"report_overview_showrank",
		"report_overview_showtotalsifcontainhidden",
		"report_user_rangedecimals",
		"report_user_showfeedback",
		"report_user_showgrade",
		"report_user_showhiddenitems",
		"report_user_showlettergrade",
		"report_user_showpercentage",
		"report_user_showrange",
		"report_user_showrank",
		"report_user_showtotalsifcontainhidden",
		"report_user_showweight",
	},
	SettingsGroupLeeloo: {
		ConfigInstallURL,
		ConfigLicense,
	},
}

func (g SettingsGroup) String() string { return string(g) }

func (g SettingsGroup) IsValid() bool {
	_, ok := settingsKeys[g]
	return ok
}

// PerCourse reports whether the group is stored per course in grade_settings
// rather than in the global config table.
func (g SettingsGroup) PerCourse() bool { return g == SettingsGroupCourseGrade }

// KnownKeys returns the keys accepted by the group, sorted.
func (g SettingsGroup) KnownKeys() []string {
	return slices.Clone(settingsKeys[g])
}

// Setting is one name/value pair of the key-value stores.
type Setting struct {
	Name  string `db:"name"`
	Value string `db:"value"`
}

// FilterSettings keeps the payload entries whose key the group knows.
// Unknown keys are dropped and keys missing from the payload produce no
// write. The result is ordered by name.
func FilterSettings(g SettingsGroup, payload map[string]string) []Setting {
	known := settingsKeys[g]
	out := make([]Setting, 0, len(payload))
	for _, key := range known {
		v, ok := payload[key]
		if !ok {
			continue
		}
		out = append(out, Setting{Name: key, Value: strings.TrimSpace(v)})
	}
	return out
}
