package cron

// Field identifies one of the five schedule components.
type Field int

const (
	FieldMinute Field = iota
	FieldHour
	FieldDayOfMonth
	FieldMonth
	FieldDayOfWeek
)

// fields lists the schedule components in expression order.
var fields = [...]Field{FieldMinute, FieldHour, FieldDayOfMonth, FieldMonth, FieldDayOfWeek}

// fieldBounds holds the inclusive value bounds per field.
var fieldBounds = map[Field][2]int{
	FieldMinute:     {0, 59},
	FieldHour:       {0, 23},
	FieldDayOfMonth: {1, 31},
	FieldMonth:      {1, 12},
	FieldDayOfWeek:  {1, 7},
}

var fieldLabels = map[Field]string{
	FieldMinute:     "minute",
	FieldHour:       "hour",
	FieldDayOfMonth: "day of month",
	FieldMonth:      "month",
	FieldDayOfWeek:  "day of week",
}

// String returns the field's table label.
func (f Field) String() string {
	return fieldLabels[f]
}

// Domain returns the ordered set of valid integers for the field. The
// returned slice is a fresh copy on every call; mutating it has no effect
// on later expansions.
func (f Field) Domain() []int {
	bounds := fieldBounds[f]
	domain := make([]int, 0, bounds[1]-bounds[0]+1)
	for v := bounds[0]; v <= bounds[1]; v++ {
		domain = append(domain, v)
	}
	return domain
}
