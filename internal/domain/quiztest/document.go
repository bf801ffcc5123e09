package quiztest

// Document is the portable form of a test used for export and import.
// It carries no identifiers and no ownership.
type Document struct {
	Name      string             `json:"name"`
	Questions []DocumentQuestion `json:"questions"`
}

type DocumentQuestion struct {
	Question       string   `json:"question"`
	Answers        []string `json:"answers"`
	CorrectAnswers []int    `json:"correctAnswers"`
}

// Export strips IDs and ownership from t.
func Export(t *Test) Document {
	doc := Document{
		Name:      t.Name,
		Questions: make([]DocumentQuestion, len(t.Questions)),
	}
	for i, q := range t.Questions {
		doc.Questions[i] = DocumentQuestion{
			Question:       q.Question,
			Answers:        q.Answers,
			CorrectAnswers: q.CorrectAnswers,
		}
	}
	return doc
}

// ToQuestions converts the document's questions into model questions without IDs.
func (d Document) ToQuestions() []Question {
	out := make([]Question, len(d.Questions))
	for i, q := range d.Questions {
		out[i] = Question{
			Question:       q.Question,
			Answers:        q.Answers,
			CorrectAnswers: q.CorrectAnswers,
		}
	}
	return out
}
