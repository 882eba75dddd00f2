package domain

// IntentKind enumerates the fixed vocabulary of follow-up modifications the
// classifier can recognize. Exactly one kind is active per classification.
type IntentKind string

const (
	IntentChangeBudget   IntentKind = "change_budget"
	IntentChangeDates    IntentKind = "change_dates"
	IntentRemoveActivity IntentKind = "remove_activity"
	IntentSwapActivity   IntentKind = "swap_activity"
	IntentAddActivity    IntentKind = "add_activity"
	IntentModifyDay      IntentKind = "modify_day"
	IntentUnknown        IntentKind = "unknown"
)

// ToneDirection is the polarity of a day-tone modification: intensify skews a
// day toward higher-intensity activities, soften toward calmer ones.
type ToneDirection string

const (
	ToneIntensify ToneDirection = "intensify"
	ToneSoften    ToneDirection = "soften"
)

// FollowUpIntent is the structured result of classifying a free-text follow-up
// message. Only the fields relevant to Kind are populated:
//
//	ChangeBudget    NewBudget
//	ChangeDates     DateExpression
//	RemoveActivity  ActivityRef, DayIndex (0 = search all days)
//	SwapActivity    ActivityRef, Description, DayIndex
//	AddActivity     Description, DayIndex (0 = least-full day)
//	ModifyDay       DayIndex, Direction, Adjective
//	Unknown         nothing; caller must ask for clarification
type FollowUpIntent struct {
	Kind IntentKind `json:"kind"`

	// DayIndex is 1-based; 0 means "no specific day referenced".
	DayIndex int `json:"day_index,omitempty"`

	NewBudget      BudgetLevel   `json:"new_budget,omitempty"`
	DateExpression string        `json:"date_expression,omitempty"`
	ActivityRef    string        `json:"activity_ref,omitempty"`
	Description    string        `json:"description,omitempty"`
	Direction      ToneDirection `json:"direction,omitempty"`
	Adjective      string        `json:"adjective,omitempty"`
}
