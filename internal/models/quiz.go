package models

import (
	"encoding/json"
	"strings"
)

type QuizType string

const (
	QuizStandard       QuizType = "standard"
	QuizGeography      QuizType = "geography"
	QuizImageBased     QuizType = "image-based"
	QuizTimeline       QuizType = "timeline"
	QuizCategorization QuizType = "categorization"
	QuizWordLogic      QuizType = "word-logic"
)

type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
)

type ScoringType string

const (
	ScoringStandard ScoringType = "standard"
	ScoringTimed    ScoringType = "timed"
	ScoringStreak   ScoringType = "streak"
)

type FlowType string

const (
	FlowSequential FlowType = "sequential"
	FlowFreeform   FlowType = "freeform"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	ImageChoice    QuestionType = "image-choice"
	FillBlank      QuestionType = "fill-blank"
	MapClick       QuestionType = "map-click"
	Matching       QuestionType = "matching"
	Categorize     QuestionType = "categorize"
	Ordering       QuestionType = "ordering"
	Timeline       QuestionType = "timeline"
	Audio          QuestionType = "audio"
	List           QuestionType = "list"
)

// Settings is an opaque key/value mapping carried through the pipeline
// unchanged. It is validated at the edge only; no internal structure is
// assumed beyond JSON-compatibility.
type Settings map[string]interface{}

// Media describes an external asset attached to a quiz question.
type Media struct {
	URL  string `json:"url"`
	Type string `json:"type,omitempty"` // image, audio
	Alt  string `json:"alt,omitempty"`
}

// ValidationRule holds answer-matching configuration for free-text questions.
type ValidationRule struct {
	Type             string   `json:"type"`
	Threshold        *float64 `json:"threshold,omitempty"`
	AlternateAnswers []string `json:"alternateAnswers,omitempty"`
}

// EnhancedQuiz is the transient in-memory quiz representation produced by the
// JSON/CSV importers and the template generator. It is consumed once by the
// database-format converter and never mutated after validation.
type EnhancedQuiz struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Emoji       string          `json:"emoji,omitempty"`
	TimeLimit   int             `json:"time_limit,omitempty"`
	QuizType    QuizType        `json:"quiz_type,omitempty" validate:"omitempty,quiz_type"`
	Difficulty  DifficultyLevel `json:"difficulty,omitempty" validate:"omitempty,difficulty_level"`
	ScoringType ScoringType     `json:"scoring_type,omitempty"`
	FlowType    FlowType        `json:"flow_type,omitempty"`
	Tags        []string        `json:"tags,omitempty"`
	Settings    Settings        `json:"settings,omitempty"`
	Questions   []Question      `json:"questions"`
}

// Question is the variant entity of EnhancedQuiz, discriminated by Type.
// Which of Options/CorrectAnswer/CorrectAnswers are meaningful depends on
// the variant; the validator enforces the per-type combinations.
type Question struct {
	Text           string          `json:"text"`
	Type           QuestionType    `json:"type" validate:"omitempty,question_type"`
	Options        OptionList      `json:"options,omitempty"`
	CorrectAnswer  *Answer         `json:"correctAnswer,omitempty"`
	CorrectAnswers []string        `json:"correctAnswers,omitempty"`
	Media          *Media          `json:"media,omitempty"`
	Validation     *ValidationRule `json:"validation,omitempty"`
	Points         int             `json:"points,omitempty"`
	Hint           string          `json:"hint,omitempty"`
	Explanation    string          `json:"explanation,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Settings       Settings        `json:"settings,omitempty"`
}

// Option is a single selectable item. Imports accept both the plain-string
// form and the richer {id,text} object form; plain strings decode with an
// empty ID.
type Option struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

// OptionList decodes a JSON array whose elements are either strings or
// {id,text} objects.
type OptionList []Option

func (ol *OptionList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(OptionList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, Option{Text: s})
			continue
		}
		var opt Option
		if err := json.Unmarshal(item, &opt); err != nil {
			return err
		}
		out = append(out, opt)
	}
	*ol = out
	return nil
}

func (ol OptionList) MarshalJSON() ([]byte, error) {
	// Emit the plain-string form when no element carries an ID, so documents
	// round-trip the way they came in.
	plain := true
	for _, opt := range ol {
		if opt.ID != "" {
			plain = false
			break
		}
	}
	if plain {
		texts := make([]string, len(ol))
		for i, opt := range ol {
			texts[i] = opt.Text
		}
		return json.Marshal(texts)
	}
	return json.Marshal([]Option(ol))
}

// OptionsFromStrings builds an OptionList from plain strings, as produced by
// the CSV cell pipe-split.
func OptionsFromStrings(values []string) OptionList {
	out := make(OptionList, len(values))
	for i, v := range values {
		out[i] = Option{Text: v}
	}
	return out
}

// Texts flattens the list to its display strings, dropping IDs. Lists already
// in plain-string form pass through unchanged.
func (ol OptionList) Texts() []string {
	out := make([]string, len(ol))
	for i, opt := range ol {
		out[i] = opt.Text
	}
	return out
}

// AnswerKind discriminates the shapes a correctAnswer value can take across
// question variants.
type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerText             // multiple-choice, image-choice, audio, fill-blank
	AnswerCoordinate       // map-click
	AnswerPairs            // matching: key -> value
	AnswerBuckets          // categorize: category -> item ids
	AnswerSequence         // ordering, timeline: ordered ids
	AnswerOther            // anything else; kept verbatim for leniency
)

// Coordinate is a map-click target position.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Answer is the tagged union behind a question's correctAnswer field. The
// importers sniff the wire shape once at the edge; the validator and the
// converter dispatch on Kind instead of probing raw maps.
type Answer struct {
	kind     AnswerKind
	text     string
	coord    Coordinate
	pairs    map[string]string
	buckets  map[string][]string
	sequence []string
	raw      interface{}
}

func TextAnswer(s string) *Answer { return &Answer{kind: AnswerText, text: s, raw: s} }
func CoordinateAnswer(c Coordinate) *Answer {
	return &Answer{kind: AnswerCoordinate, coord: c, raw: c}
}
func PairsAnswer(p map[string]string) *Answer { return &Answer{kind: AnswerPairs, pairs: p, raw: p} }
func BucketsAnswer(b map[string][]string) *Answer {
	return &Answer{kind: AnswerBuckets, buckets: b, raw: b}
}
func SequenceAnswer(ids []string) *Answer {
	return &Answer{kind: AnswerSequence, sequence: ids, raw: ids}
}

func (a *Answer) Kind() AnswerKind {
	if a == nil {
		return AnswerNone
	}
	return a.kind
}

func (a *Answer) Text() (string, bool) {
	if a == nil || a.kind != AnswerText {
		return "", false
	}
	return a.text, true
}

func (a *Answer) Coordinate() (Coordinate, bool) {
	if a == nil || a.kind != AnswerCoordinate {
		return Coordinate{}, false
	}
	return a.coord, true
}

func (a *Answer) Pairs() (map[string]string, bool) {
	if a == nil || a.kind != AnswerPairs {
		return nil, false
	}
	return a.pairs, true
}

func (a *Answer) Buckets() (map[string][]string, bool) {
	if a == nil || a.kind != AnswerBuckets {
		return nil, false
	}
	return a.buckets, true
}

func (a *Answer) Sequence() ([]string, bool) {
	if a == nil || a.kind != AnswerSequence {
		return nil, false
	}
	return a.sequence, true
}

// IsZero reports whether the answer carries no value at all. An AnswerOther
// value is not zero: the map-click check deliberately accepts any present
// value, object-shaped or not.
func (a *Answer) IsZero() bool {
	if a == nil || a.kind == AnswerNone {
		return true
	}
	if a.kind == AnswerText {
		return strings.TrimSpace(a.text) == ""
	}
	return false
}

// Value returns the original decoded value for storage.
func (a *Answer) Value() interface{} {
	if a == nil {
		return nil
	}
	return a.raw
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded := AnswerFromValue(v)
	if decoded == nil {
		*a = Answer{}
		return nil
	}
	*a = *decoded
	return nil
}

func (a Answer) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.raw)
}

// AnswerFromValue classifies an already-decoded JSON value (or a raw CSV cell
// value) into the answer union. Unrecognized shapes are kept as AnswerOther
// rather than rejected; the per-type validation decides what is acceptable.
func AnswerFromValue(v interface{}) *Answer {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return TextAnswer(val)
	case float64:
		return TextAnswer(formatNumber(val))
	case bool:
		if val {
			return TextAnswer("true")
		}
		return TextAnswer("false")
	case Coordinate:
		return CoordinateAnswer(val)
	case []string:
		return SequenceAnswer(val)
	case []interface{}:
		ids := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return &Answer{kind: AnswerOther, raw: v}
			}
			ids = append(ids, s)
		}
		return SequenceAnswer(ids)
	case map[string]interface{}:
		return answerFromObject(val)
	case map[string]string:
		return PairsAnswer(val)
	case map[string][]string:
		return BucketsAnswer(val)
	default:
		return &Answer{kind: AnswerOther, raw: v}
	}
}

func answerFromObject(obj map[string]interface{}) *Answer {
	if len(obj) == 2 {
		x, xok := obj["x"].(float64)
		y, yok := obj["y"].(float64)
		if xok && yok {
			return CoordinateAnswer(Coordinate{X: x, Y: y})
		}
	}

	pairs := make(map[string]string, len(obj))
	buckets := make(map[string][]string, len(obj))
	allPairs, allBuckets := len(obj) > 0, len(obj) > 0
	for k, v := range obj {
		switch item := v.(type) {
		case string:
			pairs[k] = item
			allBuckets = false
		case []interface{}:
			ids := make([]string, 0, len(item))
			for _, member := range item {
				s, ok := member.(string)
				if !ok {
					allBuckets = false
					break
				}
				ids = append(ids, s)
			}
			buckets[k] = ids
			allPairs = false
		default:
			allPairs, allBuckets = false, false
		}
	}
	if allPairs {
		return PairsAnswer(pairs)
	}
	if allBuckets {
		return BucketsAnswer(buckets)
	}
	return &Answer{kind: AnswerOther, raw: obj}
}

func formatNumber(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
