// file: internals/features/tryouts/model/question_data.go
package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

/* =========================================================
   QUESTION TYPE (closed set, 8 variant)
========================================================= */

type QuestionType string

const (
	QuestionTypeMultipleChoice      QuestionType = "multiple_choice"
	QuestionTypeMultipleResponse    QuestionType = "multiple_response"
	QuestionTypeTrueFalse           QuestionType = "true_false"
	QuestionTypeStatementValidation QuestionType = "statement_validation"
	QuestionTypeMatching            QuestionType = "matching"
	QuestionTypeShortAnswer         QuestionType = "short_answer"
	QuestionTypeEssay               QuestionType = "essay"
	QuestionTypeOrdering            QuestionType = "ordering"
)

var QuestionTypes = []QuestionType{
	QuestionTypeMultipleChoice,
	QuestionTypeMultipleResponse,
	QuestionTypeTrueFalse,
	QuestionTypeStatementValidation,
	QuestionTypeMatching,
	QuestionTypeShortAnswer,
	QuestionTypeEssay,
	QuestionTypeOrdering,
}

func (t QuestionType) Valid() bool {
	for _, v := range QuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label tampilan (ikut penamaan FE)
var QuestionTypeLabels = map[QuestionType]string{
	QuestionTypeMultipleChoice:      "Pilihan Ganda",
	QuestionTypeMultipleResponse:    "Pilihan Ganda Kompleks",
	QuestionTypeTrueFalse:           "Benar/Salah",
	QuestionTypeStatementValidation: "Validasi Pernyataan",
	QuestionTypeMatching:            "Menjodohkan",
	QuestionTypeShortAnswer:         "Isian Singkat",
	QuestionTypeEssay:               "Essay",
	QuestionTypeOrdering:            "Urutan",
}

const (
	DefaultQuestionScore = 10
	MinOptions           = 2
	MaxOptions           = 5 // A..E
)

/* =========================================================
   CONTENT BLOCK (rich content span)
========================================================= */

type ContentBlock struct {
	Type    string     `json:"type"` // text | math | chemistry | image | table
	Content string     `json:"content,omitempty"`
	URL     string     `json:"url,omitempty"`
	Caption string     `json:"caption,omitempty"`
	Data    [][]string `json:"data,omitempty"`
}

func (b ContentBlock) Validate() error {
	switch b.Type {
	case "text", "math", "chemistry":
		if strings.TrimSpace(b.Content) == "" {
			return fmt.Errorf("konten blok '%s' wajib diisi", b.Type)
		}
	case "image":
		if strings.TrimSpace(b.URL) == "" {
			return errors.New("blok image wajib punya url")
		}
	case "table":
		if len(b.Data) == 0 {
			return errors.New("blok table wajib punya data")
		}
	default:
		return fmt.Errorf("tipe blok konten tidak dikenal: '%s'", b.Type)
	}
	return nil
}

func validateBlocks(field string, blocks []ContentBlock, required bool) error {
	if len(blocks) == 0 {
		if required {
			return fmt.Errorf("%s wajib punya minimal 1 blok konten", field)
		}
		return nil
	}
	for i, b := range blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%s[%d]: %v", field, i, err)
		}
	}
	return nil
}

/* =========================================================
   VARIANT PAYLOADS
========================================================= */

type QuestionOption struct {
	ID      string         `json:"id"` // 'A'..'E'
	Content []ContentBlock `json:"content"`
}

type QuestionStatement struct {
	ID      string         `json:"id"`
	Content []ContentBlock `json:"content"`
	IsTrue  bool           `json:"is_true"`
}

type MatchPair struct {
	LeftID  string `json:"left_id"`
	RightID string `json:"right_id"`
}

type MultipleChoiceData struct {
	Question      []ContentBlock   `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correct_answer"`
	Explanation   []ContentBlock   `json:"explanation,omitempty"`
}

type MultipleResponseData struct {
	Question       []ContentBlock   `json:"question"`
	Options        []QuestionOption `json:"options"`
	CorrectAnswers []string         `json:"correct_answers"`
	Explanation    []ContentBlock   `json:"explanation,omitempty"`
}

type TrueFalseData struct {
	Question      []ContentBlock `json:"question"`
	CorrectAnswer *bool          `json:"correct_answer"`
	Explanation   []ContentBlock `json:"explanation,omitempty"`
}

type StatementValidationData struct {
	Question    []ContentBlock      `json:"question"`
	Statements  []QuestionStatement `json:"statements"`
	Explanation []ContentBlock      `json:"explanation,omitempty"`
}

type MatchingData struct {
	Question     []ContentBlock   `json:"question"`
	LeftItems    []QuestionOption `json:"left_items"`
	RightItems   []QuestionOption `json:"right_items"`
	CorrectPairs []MatchPair      `json:"correct_pairs"`
	Explanation  []ContentBlock   `json:"explanation,omitempty"`
}

type ShortAnswerData struct {
	Question       []ContentBlock `json:"question"`
	CorrectAnswers []string       `json:"correct_answers"`
	CaseSensitive  bool           `json:"case_sensitive,omitempty"`
	Explanation    []ContentBlock `json:"explanation,omitempty"`
}

// Essay dinilai manual — tidak ada kunci jawaban otomatis.
type EssayData struct {
	Question     []ContentBlock `json:"question"`
	MinWords     *int           `json:"min_words,omitempty"`
	MaxWords     *int           `json:"max_words,omitempty"`
	Rubric       []ContentBlock `json:"rubric,omitempty"`
	SampleAnswer []ContentBlock `json:"sample_answer,omitempty"`
	Explanation  []ContentBlock `json:"explanation,omitempty"`
}

type OrderingData struct {
	Question     []ContentBlock   `json:"question"`
	Items        []QuestionOption `json:"items"`
	CorrectOrder []string         `json:"correct_order"`
	Explanation  []ContentBlock   `json:"explanation,omitempty"`
}

/* =========================================================
   VALIDATION — satu titik dispatch per question_type
========================================================= */

// decodeStrict unmarshal payload dengan DisallowUnknownFields:
// field di luar skema tipe tersebut membuat payload ditolak.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("question_data tidak valid: %v", err)
	}
	return nil
}

// ValidateQuestionData memeriksa bentuk minimum payload terhadap tipenya.
// Murni (tanpa side effect); tag di luar 8 tipe ditolak, tidak dikoersi.
func ValidateQuestionData(t QuestionType, raw []byte) error {
	if !t.Valid() {
		return fmt.Errorf("question_type tidak dikenal: '%s'", t)
	}
	if len(raw) == 0 {
		return errors.New("question_data wajib diisi")
	}

	switch t {
	case QuestionTypeMultipleChoice:
		var d MultipleChoiceData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		ids, err := validateOptions("options", d.Options)
		if err != nil {
			return err
		}
		// lookup pakai normalisasi yang sama dengan id opsi
		if _, ok := ids[strings.ToUpper(strings.TrimSpace(d.CorrectAnswer))]; !ok {
			return errors.New("correct_answer harus salah satu id pada options")
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeMultipleResponse:
		var d MultipleResponseData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		ids, err := validateOptions("options", d.Options)
		if err != nil {
			return err
		}
		if len(d.CorrectAnswers) == 0 {
			return errors.New("correct_answers wajib punya minimal 1 jawaban")
		}
		for _, a := range d.CorrectAnswers {
			if _, ok := ids[strings.ToUpper(strings.TrimSpace(a))]; !ok {
				return fmt.Errorf("correct_answers memuat id di luar options: '%s'", a)
			}
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeTrueFalse:
		var d TrueFalseData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		if d.CorrectAnswer == nil {
			return errors.New("correct_answer (boolean) wajib diisi")
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeStatementValidation:
		var d StatementValidationData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		if len(d.Statements) == 0 {
			return errors.New("statements wajib punya minimal 1 pernyataan")
		}
		seen := map[string]struct{}{}
		for i, s := range d.Statements {
			if strings.TrimSpace(s.ID) == "" {
				return fmt.Errorf("statements[%d]: id wajib diisi", i)
			}
			if _, dup := seen[s.ID]; dup {
				return fmt.Errorf("statements: id duplikat '%s'", s.ID)
			}
			seen[s.ID] = struct{}{}
			if err := validateBlocks(fmt.Sprintf("statements[%d].content", i), s.Content, true); err != nil {
				return err
			}
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeMatching:
		var d MatchingData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		left, err := validateItems("left_items", d.LeftItems)
		if err != nil {
			return err
		}
		right, err := validateItems("right_items", d.RightItems)
		if err != nil {
			return err
		}
		if len(d.CorrectPairs) == 0 {
			return errors.New("correct_pairs wajib punya minimal 1 pasangan")
		}
		for i, p := range d.CorrectPairs {
			if _, ok := left[p.LeftID]; !ok {
				return fmt.Errorf("correct_pairs[%d]: left_id '%s' tidak ada di left_items", i, p.LeftID)
			}
			if _, ok := right[p.RightID]; !ok {
				return fmt.Errorf("correct_pairs[%d]: right_id '%s' tidak ada di right_items", i, p.RightID)
			}
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeShortAnswer:
		var d ShortAnswerData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		if len(d.CorrectAnswers) == 0 {
			return errors.New("correct_answers wajib punya minimal 1 jawaban yang diterima")
		}
		for i, a := range d.CorrectAnswers {
			if strings.TrimSpace(a) == "" {
				return fmt.Errorf("correct_answers[%d] tidak boleh kosong", i)
			}
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeEssay:
		var d EssayData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		if d.MinWords != nil && *d.MinWords < 0 {
			return errors.New("min_words tidak boleh negatif")
		}
		if d.MaxWords != nil && *d.MaxWords < 0 {
			return errors.New("max_words tidak boleh negatif")
		}
		if d.MinWords != nil && d.MaxWords != nil && *d.MinWords > *d.MaxWords {
			return errors.New("min_words tidak boleh melebihi max_words")
		}
		if err := validateBlocks("rubric", d.Rubric, false); err != nil {
			return err
		}
		if err := validateBlocks("sample_answer", d.SampleAnswer, false); err != nil {
			return err
		}
		return validateBlocks("explanation", d.Explanation, false)

	case QuestionTypeOrdering:
		var d OrderingData
		if err := decodeStrict(raw, &d); err != nil {
			return err
		}
		if err := validateBlocks("question", d.Question, true); err != nil {
			return err
		}
		items, err := validateItems("items", d.Items)
		if err != nil {
			return err
		}
		if len(d.CorrectOrder) == 0 {
			return errors.New("correct_order wajib diisi")
		}
		for i, id := range d.CorrectOrder {
			if _, ok := items[id]; !ok {
				return fmt.Errorf("correct_order[%d]: id '%s' tidak ada di items", i, id)
			}
		}
		return validateBlocks("explanation", d.Explanation, false)
	}

	return fmt.Errorf("question_type tidak dikenal: '%s'", t)
}

// validateOptions: aturan opsi berhuruf (A..E) untuk tipe pilihan.
func validateOptions(field string, opts []QuestionOption) (map[string]struct{}, error) {
	if len(opts) < MinOptions {
		return nil, fmt.Errorf("%s minimal %d opsi", field, MinOptions)
	}
	if len(opts) > MaxOptions {
		return nil, fmt.Errorf("%s maksimal %d opsi", field, MaxOptions)
	}
	ids := make(map[string]struct{}, len(opts))
	for i, o := range opts {
		id := strings.ToUpper(strings.TrimSpace(o.ID))
		if len(id) != 1 || id[0] < 'A' || id[0] > 'A'+MaxOptions-1 {
			return nil, fmt.Errorf("%s[%d]: id harus salah satu A..E", field, i)
		}
		if _, dup := ids[id]; dup {
			return nil, fmt.Errorf("%s: id duplikat '%s'", field, id)
		}
		ids[id] = struct{}{}
		if err := validateBlocks(fmt.Sprintf("%s[%d].content", field, i), o.Content, true); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

// validateItems: daftar item ber-id bebas (matching/ordering).
func validateItems(field string, items []QuestionOption) (map[string]struct{}, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%s wajib punya minimal 1 item", field)
	}
	ids := make(map[string]struct{}, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			return nil, fmt.Errorf("%s[%d]: id wajib diisi", field, i)
		}
		if _, dup := ids[it.ID]; dup {
			return nil, fmt.Errorf("%s: id duplikat '%s'", field, it.ID)
		}
		ids[it.ID] = struct{}{}
		if err := validateBlocks(fmt.Sprintf("%s[%d].content", field, i), it.Content, true); err != nil {
			return nil, err
		}
	}
	return ids, nil
}
