package quiz

import (
	"github.com/shopspring/decimal"
)

// FamilyIDInt represents a family identifier
type FamilyIDInt = int32

// Person is the read-only view of a family member the statistics are computed from.
type Person interface {
	FirstName() string
	LastName() string
	Age() decimal.Decimal
}

// Family is the read-only view of a group of persons.
//
// IDs are expected to be unique within one input collection, but nothing enforces it.
// Implementations must not expect the library to modify the slice returned by Persons.
type Family interface {
	ID() FamilyIDInt
	Persons() []Person
}

// PersonRecord is an immutable Person.
//
// It should only be constructed with BuildPerson.
type PersonRecord struct {
	firstName string
	lastName  string
	age       decimal.Decimal
}

// BuildPerson creates a new PersonRecord.
func BuildPerson(firstName string, lastName string, age decimal.Decimal) PersonRecord {
	return PersonRecord{
		firstName: firstName,
		lastName:  lastName,
		age:       age,
	}
}

// FirstName returns the first name of the person.
func (p PersonRecord) FirstName() string {
	return p.firstName
}

// LastName returns the last name of the person.
func (p PersonRecord) LastName() string {
	return p.lastName
}

// Age returns the age of the person.
func (p PersonRecord) Age() decimal.Decimal {
	return p.age
}

// FamilyRecord is an immutable Family.
//
// It should only be constructed with BuildFamily.
type FamilyRecord struct {
	id      FamilyIDInt
	persons []Person
}

// BuildFamily creates a new FamilyRecord. The persons are copied, so the caller may reuse its slice.
func BuildFamily(id FamilyIDInt, persons ...Person) FamilyRecord {
	return FamilyRecord{
		id:      id,
		persons: append(make([]Person, 0, len(persons)), persons...),
	}
}

// ID returns the family identifier.
func (f FamilyRecord) ID() FamilyIDInt {
	return f.id
}

// Persons returns the members of the family.
func (f FamilyRecord) Persons() []Person {
	return f.persons
}

// FamilySummary is the statistic of one family. It is a snapshot and holds no reference to the source Family.
type FamilySummary struct {
	FamilyID              FamilyIDInt     `json:"familyId"`
	NumberOfFamilyMembers int             `json:"numberOfFamilyMembers"`
	AverageAge            decimal.Decimal `json:"averageAge"`
}

// BuildFamilySummary creates a new FamilySummary.
func BuildFamilySummary(familyID FamilyIDInt, numberOfFamilyMembers int, averageAge decimal.Decimal) FamilySummary {
	return FamilySummary{
		FamilyID:              familyID,
		NumberOfFamilyMembers: numberOfFamilyMembers,
		AverageAge:            averageAge,
	}
}
