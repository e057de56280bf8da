package temporal

import (
	"regexp"
	"strconv"
	"time"
)

// Cue is an unambiguous temporal signal found in text. The concrete types are
// ExplicitDate, ExplicitTime, RelativeDay and WeekdayCue.
type Cue interface {
	cue()
}

// ExplicitDate is a numeric DD/MM[/YYYY] date. Year is 0 when the text omits it.
type ExplicitDate struct {
	Day   int
	Month int
	Year  int
}

// ExplicitTime is a numeric clock time.
type ExplicitTime struct {
	Hour   int
	Minute int
}

// Relative names a day relative to the reference date.
type Relative int

const (
	Today Relative = iota
	Tomorrow
)

func (r Relative) String() string {
	if r == Tomorrow {
		return "amanhã"
	}
	return "hoje"
}

// RelativeDay is a "hoje" or "amanhã" cue.
type RelativeDay struct {
	Which Relative
}

// WeekdayCue is a named weekday.
type WeekdayCue struct {
	Index time.Weekday
}

func (ExplicitDate) cue() {}
func (ExplicitTime) cue() {}
func (RelativeDay) cue()  {}
func (WeekdayCue) cue()   {}

// Cues holds at most one cue of each kind found in a text.
type Cues struct {
	Date     *ExplicitDate
	Time     *ExplicitTime
	Relative *RelativeDay
	Weekday  *WeekdayCue
}

// Empty reports whether no date-bearing or clock cue was found.
func (c Cues) Empty() bool {
	return c.Date == nil && c.Time == nil && c.Relative == nil && c.Weekday == nil
}

// HasDay reports whether a cue pins the calendar day.
func (c Cues) HasDay() bool {
	return c.Date != nil || c.Relative != nil || c.Weekday != nil
}

// Extractor scans text for one kind of cue.
type Extractor func(text string) (Cue, bool)

// Extractors are independent; Collect runs every one of them.
var Extractors = []Extractor{
	ExtractDate,
	ExtractTime,
	ExtractRelativeDay,
	ExtractWeekday,
}

// Collect runs all Extractors over text.
func Collect(text string) Cues {
	var cues Cues
	for _, extract := range Extractors {
		c, ok := extract(text)
		if !ok {
			continue
		}
		switch v := c.(type) {
		case ExplicitDate:
			cues.Date = &v
		case ExplicitTime:
			cues.Time = &v
		case RelativeDay:
			cues.Relative = &v
		case WeekdayCue:
			cues.Weekday = &v
		}
	}
	return cues
}

var (
	dateRe       = word(`(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?`)
	hourOnlyRe   = word(`(\d{1,2})\s*h`)
	hourMinuteAt = word(`(\d{1,2})\s*:\s*(\d{2})`)
	todayRe      = word(`hoje`)
	tomorrowRe   = word(`amanh[aã]`)
)

// ExtractDate finds the first DD/MM, DD-MM, DD/MM/YY or DD/MM/YYYY date.
// Two-digit years become 20YY. Days outside 1..31 or months outside 1..12 yield no cue.
func ExtractDate(text string) (Cue, bool) {
	m := dateRe.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nil, false
	}

	year := 0
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
	}
	return ExplicitDate{Day: day, Month: month, Year: year}, true
}

// ExtractTime looks for "17h" first and "17:30" second.
func ExtractTime(text string) (Cue, bool) {
	if m := hourOnlyRe.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if hour <= 23 {
			return ExplicitTime{Hour: hour}, true
		}
	}

	if m := hourMinuteAt.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour <= 23 && minute <= 59 {
			return ExplicitTime{Hour: hour, Minute: minute}, true
		}
	}
	return nil, false
}

// ExtractRelativeDay matches hoje and amanhã/amanha. Tomorrow wins when both appear.
func ExtractRelativeDay(text string) (Cue, bool) {
	if tomorrowRe.MatchString(text) {
		return RelativeDay{Which: Tomorrow}, true
	}
	if todayRe.MatchString(text) {
		return RelativeDay{Which: Today}, true
	}
	return nil, false
}

var weekdayTable = []struct {
	re  *regexp.Regexp
	day time.Weekday
}{
	{word(`seg(?:unda)?(?:-?feira)?`), time.Monday},
	{word(`ter[cç]a(?:-?feira)?`), time.Tuesday},
	{word(`qua(?:r(?:ta)?)?(?:-?feira)?`), time.Wednesday},
	{word(`quin(?:ta)?(?:-?feira)?`), time.Thursday},
	{word(`sex(?:ta)?(?:-?feira)?`), time.Friday},
	{word(`s[aá]b(?:ado)?(?:-?feira)?`), time.Saturday},
	{word(`dom(?:ingo)?(?:-?feira)?`), time.Sunday},
}

// ExtractWeekday matches Portuguese weekday names and abbreviations, with or
// without the -feira suffix. The first table entry that matches wins.
func ExtractWeekday(text string) (Cue, bool) {
	for _, w := range weekdayTable {
		if w.re.MatchString(text) {
			return WeekdayCue{Index: w.day}, true
		}
	}
	return nil, false
}
