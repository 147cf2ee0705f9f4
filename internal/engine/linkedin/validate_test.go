package linkedin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Jane Doe", true},
		{"María José García López", true},
		{"Jane", false},
		{"Jane Q Public The Third", false},
		{"Join LinkedIn", false},
		{"Accessibility", false},
		{"User Agreement", false},
		{"LinkedIn Member", false},
		{"Me For Business", false},
		{"Connect Message More", false},
		{"My Network", false},
		{"Jane Doe 2", false},
		{"jane@example.com x", false},
		{"Jo", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.in))
		})
	}
}

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name string
		v    Validator
		in   string
		want bool
	}{
		{"headline ok", ValidHeadline, "Senior Engineer at Acme", true},
		{"headline counter", ValidHeadline, "500+ connections", false},
		{"headline section word", ValidHeadline, "Experience", false},
		{"location ok", ValidLocation, "Berlin, Germany", true},
		{"location contact", ValidLocation, "Contact info", false},
		{"location digits", ValidLocation, "500 followers", false},
		{"title ok", ValidTitle, "Staff Engineer", true},
		{"title date", ValidTitle, "Jan 2020 - Present", false},
		{"title duration", ValidTitle, "2 yrs 3 mos", false},
		{"title employment type", ValidTitle, "Full-time", false},
		{"company ok", ValidCompany, "Acme Corp · Full-time", true},
		{"company year", ValidCompany, "2019 - 2021", false},
		{"date range", ValidDateRange, "Jan 2020 - Present", true},
		{"date duration", ValidDateRange, "2 yrs 3 mos", true},
		{"date none", ValidDateRange, "Acme Corp", false},
		{"description short", ValidDescription, "Did stuff", false},
		{"description ok", ValidDescription, "Built the billing system from scratch.", true},
		{"description company line", ValidDescription, "Acme Corp · Full-time job", false},
		{"school ok", ValidSchool, "MIT", true},
		{"school date", ValidSchool, "2012 - 2016", false},
		{"skill ok", ValidSkill, "Go", true},
		{"skill endorsements", ValidSkill, "12 endorsements", false},
		{"skill chrome", ValidSkill, "Show all 25 skills", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v(tt.in))
		})
	}
}
