package quiz

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// GetFamilyStatistic returns one FamilySummary per family, in the order of families.
//
// AverageAge is the arithmetic mean of the ages of the family members, or 0 for a family without members.
// It returns ErrArgumentNil if families is nil or contains a nil Family.
func GetFamilyStatistic(families []Family) ([]FamilySummary, error) {
	if families == nil {
		return nil, fmt.Errorf("%w: families", ErrArgumentNil)
	}

	summaries := make([]FamilySummary, 0, len(families))
	for i, family := range families {
		if family == nil {
			return nil, fmt.Errorf("%w: families[%d]", ErrArgumentNil, i)
		}

		persons := family.Persons()
		summaries = append(summaries, BuildFamilySummary(family.ID(), len(persons), averageAge(persons)))
	}

	return summaries, nil
}

func averageAge(persons []Person) decimal.Decimal {
	if len(persons) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, person := range persons {
		sum = sum.Add(person.Age())
	}

	return sum.Div(decimal.NewFromInt(int64(len(persons))))
}
