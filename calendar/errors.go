package calendar

// InvalidRuleError reports malformed rule parameters such as n == 0 for an
// nth weekday rule. It points at a defect in a holiday definition, not at
// bad user input.
type InvalidRuleError string

func (msg InvalidRuleError) Error() string {
	return "invalid holiday rule: " + string(msg)
}
