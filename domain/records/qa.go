package records

import "time"

// QuestionTypeRegeneration tags Q&A records created by the versioning workflow
const QuestionTypeRegeneration = "regeneration"

// QA is an immutable question/answer pair linked to an insight or
// implication record. There is no update or delete path.
type QA struct {
	ID           string
	ParentID     string
	ContentID    string
	Question     string
	Answer       string
	QuestionType string
	Metadata     map[string]interface{}
	CreatedAt    time.Time
	CreatedBy    string
}

// NewQAParams carries caller input for Q&A creation
type NewQAParams struct {
	ParentID     string `validate:"required"`
	ContentID    string `validate:"required"`
	Question     string `validate:"required"`
	Answer       string `validate:"required"`
	QuestionType string `validate:"required,max=50"`
	Metadata     map[string]interface{}
	CreatedBy    string
}

// NewQA builds a Q&A record with a generated id and timestamp
func NewQA(p NewQAParams) QA {
	return QA{
		ID:           NewID(),
		ParentID:     p.ParentID,
		ContentID:    p.ContentID,
		Question:     p.Question,
		Answer:       p.Answer,
		QuestionType: p.QuestionType,
		Metadata:     p.Metadata,
		CreatedAt:    time.Now(),
		CreatedBy:    p.CreatedBy,
	}
}

// QAResponse is the external shape
type QAResponse struct {
	QAID         string                 `json:"qa_id"`
	ParentID     string                 `json:"parent_id"`
	ContentID    string                 `json:"content_id"`
	Question     string                 `json:"question"`
	Answer       string                 `json:"answer"`
	QuestionType string                 `json:"question_type"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	CreatedBy    string                 `json:"created_by,omitempty"`
}

// Response shapes the record for callers
func (q QA) Response() QAResponse {
	return QAResponse{
		QAID:         q.ID,
		ParentID:     q.ParentID,
		ContentID:    q.ContentID,
		Question:     q.Question,
		Answer:       q.Answer,
		QuestionType: q.QuestionType,
		Metadata:     q.Metadata,
		CreatedAt:    q.CreatedAt.Format(time.RFC3339),
		CreatedBy:    q.CreatedBy,
	}
}

func (q QA) item() Item {
	return Item{
		KeyAttr:         q.ID,
		"parent_id":     q.ParentID,
		"content_id":    q.ContentID,
		"question":      q.Question,
		"answer":        q.Answer,
		"question_type": q.QuestionType,
		"metadata":      q.Metadata,
		"created_at":    q.CreatedAt.Format(time.RFC3339),
		"created_by":    q.CreatedBy,
	}
}

func qaFromItem(it Item) (QA, error) {
	id, err := requireKey(it, EntityQA)
	if err != nil {
		return QA{}, err
	}
	return QA{
		ID:           id,
		ParentID:     itemString(it, "parent_id"),
		ContentID:    itemString(it, "content_id"),
		Question:     itemString(it, "question"),
		Answer:       itemString(it, "answer"),
		QuestionType: itemString(it, "question_type"),
		Metadata:     itemMap(it, "metadata"),
		CreatedAt:    itemTime(it, "created_at"),
		CreatedBy:    itemString(it, "created_by"),
	}, nil
}

// QAMapping binds Q&A records to their table schema
var QAMapping = Mapping[QA]{
	Schema:   Schema{Entity: EntityQA, ResponseKey: "qa_id"},
	ID:       func(q QA) string { return q.ID },
	ToItem:   QA.item,
	FromItem: qaFromItem,
}
