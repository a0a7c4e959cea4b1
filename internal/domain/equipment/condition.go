package equipment

import "errors"

var ErrInvalidCondition = errors.New("invalid equipment condition")

type Condition string

const (
	ConditionExcellent Condition = "Excellent"
	ConditionGood      Condition = "Good"
	ConditionFair      Condition = "Fair"
	ConditionPoor      Condition = "Poor"
)

func NewCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor:
		return Condition(s), nil
	default:
		return "", ErrInvalidCondition
	}
}

func (c Condition) String() string {
	return string(c)
}
