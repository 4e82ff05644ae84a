package checks

import (
	"item-translator/core/data"
	"item-translator/feature/item/legacy"
)

// ConverterReport lists the component kinds that have no conversion rule.
type ConverterReport struct {
	Kinds   int      `json:"kinds"`
	Missing []string `json:"missing"`
	Status  string   `json:"status"` // "ok", "error"
}

// CheckConverter inspects the rule registry of cv.
func CheckConverter(cv *legacy.Converter) ConverterReport {
	report := ConverterReport{Kinds: int(data.KindCount), Missing: []string{}, Status: "ok"}
	for _, k := range cv.Missing() {
		report.Missing = append(report.Missing, k.String())
	}
	if len(report.Missing) > 0 {
		report.Status = "error"
	}
	return report
}
