// =============================================================================
// Encore Royalty Core - Value Normalization
// =============================================================================
//
// This module provides the permissive value-normalization routines used by
// the field mapper. Every parser degrades to a safe default instead of
// returning an error: statement data is messy, and a single bad cell must
// never abort a batch. Each parser therefore returns the normalized value
// together with an ok flag, so callers can surface soft failures as
// warnings without changing the default-on-failure behavior.
//
// NORMALIZATION BY FIELD KIND:
//   - money       : strip currency symbols and thousands separators; 0 on failure
//   - percent     : strip '%'; 0 on failure
//   - date        : ISO first, then slash/dash/dot-delimited layouts;
//                   original string when nothing parses
//   - BMI quarter : "YYYYQ" period -> quarter-start ISO date; nil on failure
//   - text        : collapse internal whitespace runs, trim
//   - identifier  : trim only
//
// =============================================================================

package mapper

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// MONEY AND PERCENT
// =============================================================================

// currencyStripper removes currency symbols, thousands separators, and
// surrounding whitespace before numeric parsing.
var currencyStripper = strings.NewReplacer(
	"$", "",
	"€", "",
	"£", "",
	"¥", "",
	",", "",
	" ", "",
)

// ParseMoney parses a monetary amount. Currency symbols and thousands
// separators are stripped first.
//
// EXAMPLE:
//   Input: "$1,234.50"
//   Output: 1234.5, true
//
//   Input: "N/A"
//   Output: 0, false
func ParseMoney(value string) (float64, bool) {
	cleaned := currencyStripper.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return 0, false
	}
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// ParsePercent parses a percentage or quantity value. A '%' suffix is
// stripped; thousands separators are tolerated.
func ParsePercent(value string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return 0, false
	}
	pct, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return pct, true
}

// =============================================================================
// DATES AND PERIODS
// =============================================================================

// bmiQuarterStarts maps a BMI quarter digit to the quarter-start suffix.
var bmiQuarterStarts = map[byte]string{
	'1': "-01-01",
	'2': "-04-01",
	'3': "-07-01",
	'4': "-10-01",
}

// BMIQuarterStart derives a quarter-start ISO date from a BMI period
// string: the first 4 characters are the year, the final character is the
// quarter digit.
//
// EXAMPLE:
//   Input: "20231"
//   Output: "2023-01-01", true
//
//   Input: "abcd9"
//   Output: "", false
func BMIQuarterStart(period string) (string, bool) {
	period = strings.TrimSpace(period)
	if len(period) < 5 {
		return "", false
	}
	year := period[:4]
	if _, err := strconv.Atoi(year); err != nil {
		return "", false
	}
	suffix, ok := bmiQuarterStarts[period[len(period)-1]]
	if !ok {
		return "", false
	}
	return year + suffix, true
}

// dateLayouts are tried in order by ParseDate. ISO forms come first, then
// the MM/DD/YYYY-style slash/dash/dot-delimited triplets common on US
// royalty statements.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01.02.2006",
	"01/02/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan-06",
	"200601",
	"20060102",
}

// ParseDate attempts generic date parsing and returns the date in ISO form.
// The ok flag is false when no layout matches; callers keep the original
// string in that case.
func ParseDate(value string) (string, bool) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// =============================================================================
// TEXT
// =============================================================================

// whitespaceRun matches any run of whitespace, including tabs and newlines
// that survive spreadsheet parsing.
var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText collapses internal whitespace runs to single spaces and trims.
func CleanText(value string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(value, " "))
}
