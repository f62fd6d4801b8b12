package heatmap

import "golang.org/x/text/language"

// Locale holds the display names used for labels and tooltips.
type Locale struct {
	Tag      language.Tag
	Months   [12]string
	Weekdays [7]string // Monday first
	Tooltip  string    // format taking the date key and the count
}

var locales = []Locale{
	{
		Tag:      language.English,
		Months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		Weekdays: [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Tooltip:  "%s: %d activities",
	},
	{
		Tag:      language.Japanese,
		Months:   [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		Weekdays: [7]string{"月", "火", "水", "木", "金", "土", "日"},
		Tooltip:  "%s: %d件のアクティビティ",
	},
	{
		Tag:      language.Ukrainian,
		Months:   [12]string{"Січ", "Лют", "Бер", "Кві", "Тра", "Чер", "Лип", "Сер", "Вер", "Жов", "Лис", "Гру"},
		Weekdays: [7]string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Нд"},
		Tooltip:  "%s: %d активностей",
	},
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Japanese,
	language.Ukrainian,
})

// LookupLocale picks the best supported locale for the given language
// preferences (BCP 47 tags or Accept-Language values). English is the
// fallback.
func LookupLocale(prefs ...string) Locale {
	_, idx, _ := localeMatcher.Match(parseTags(prefs)...)
	if idx < 0 || idx >= len(locales) {
		return locales[0]
	}
	return locales[idx]
}

func parseTags(prefs []string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		if p == "" {
			continue
		}
		t, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, t...)
	}
	return tags
}

// MonthName returns the short name of a 0-based month index.
func (l Locale) MonthName(month int) string {
	return l.Months[((month%12)+12)%12]
}

// WeekdayName returns the short name of a Monday-based weekday index.
func (l Locale) WeekdayName(weekday int) string {
	return l.Weekdays[((weekday%7)+7)%7]
}
