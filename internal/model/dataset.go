package model

// Dataset is the lms_data blob: every collection the store owns.
type Dataset struct {
	Users          []User          `json:"users"`
	Enrollments    []Enrollment    `json:"enrollments"`
	Payments       []Payment       `json:"payments"`
	Reviews        []Review        `json:"reviews"`
	CourseComments []CourseComment `json:"courseComments"`
}

// EmptyDataset is the state used when nothing (or nothing readable) is persisted.
func EmptyDataset() Dataset {
	return Dataset{
		Users:          []User{},
		Enrollments:    []Enrollment{},
		Payments:       []Payment{},
		Reviews:        []Review{},
		CourseComments: []CourseComment{},
	}
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (d *Dataset) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Enrollments == nil {
		d.Enrollments = []Enrollment{}
	}
	if d.Payments == nil {
		d.Payments = []Payment{}
	}
	if d.Reviews == nil {
		d.Reviews = []Review{}
	}
	if d.CourseComments == nil {
		d.CourseComments = []CourseComment{}
	}
}

// Clone copies every collection so the result can be mutated independently.
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Users:          append([]User{}, d.Users...),
		Enrollments:    make([]Enrollment, len(d.Enrollments)),
		Payments:       make([]Payment, len(d.Payments)),
		Reviews:        append([]Review{}, d.Reviews...),
		CourseComments: append([]CourseComment{}, d.CourseComments...),
	}
	for i, e := range d.Enrollments {
		if e.CompletedAt != nil {
			t := *e.CompletedAt
			e.CompletedAt = &t
		}
		out.Enrollments[i] = e
	}
	for i, p := range d.Payments {
		if p.CourseIDs != nil {
			p.CourseIDs = append([]string{}, p.CourseIDs...)
		}
		out.Payments[i] = p
	}
	return out
}
