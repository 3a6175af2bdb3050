package domain

// CardLevel represents the proficiency level of a card.
type CardLevel string

const (
	CardLevelBeginner     CardLevel = "beginner"
	CardLevelIntermediate CardLevel = "intermediate"
	CardLevelAdvanced     CardLevel = "advanced"
)

func (l CardLevel) String() string { return string(l) }

func (l CardLevel) IsValid() bool {
	switch l {
	case CardLevelBeginner, CardLevelIntermediate, CardLevelAdvanced:
		return true
	}
	return false
}

// TestMode represents the interaction style of an assessment question.
type TestMode string

const (
	TestModeMultipleChoice TestMode = "multiple_choice"
	TestModeTyping         TestMode = "typing"
	TestModeMatching       TestMode = "matching"
)

func (m TestMode) String() string { return string(m) }

func (m TestMode) IsValid() bool {
	switch m {
	case TestModeMultipleChoice, TestModeTyping, TestModeMatching:
		return true
	}
	return false
}

// MinCards returns the smallest number of distinct cards a user must own
// to start an assessment in this mode. Choice-based modes need a second
// card to draw at least one distractor from.
func (m TestMode) MinCards() int {
	if m == TestModeTyping {
		return 1
	}
	return 2
}

// Direction represents which side of the card pair is the prompt.
type Direction string

const (
	DirectionSourceToTarget Direction = "source_to_target"
	DirectionTargetToSource Direction = "target_to_source"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionSourceToTarget, DirectionTargetToSource:
		return true
	}
	return false
}

// Quality is the self-assessed recall strength of a single review, 0 to 5.
// 0 is a complete blackout, 5 a perfect instant recall. Scores of 3 and
// above count as successful.
type Quality int

const (
	QualityMin = 0
	QualityMax = 5

	// SuccessThreshold splits failed reviews (below) from successful ones.
	SuccessThreshold Quality = 3
)

func (q Quality) IsValid() bool {
	return q >= QualityMin && q <= QualityMax
}

func (q Quality) IsSuccess() bool {
	return q >= SuccessThreshold
}
