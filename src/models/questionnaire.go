package models

// Questionnaire is a named, described flashcard set.
type Questionnaire struct {
	ID          string `json:"id" bson:"_id" example:"1"`
	Title       string `json:"title" bson:"title" example:"Go Basics"`
	Description string `json:"description" bson:"description" example:"Flashcards about goroutines and channels"`
}
