package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrNotAnswered     = errors.New("the current question has not been answered")
	ErrAttemptFinished = errors.New("the attempt has already been submitted")
	ErrUnknownOption   = errors.New("the option is not one of the choices")
	ErrNotLastQuestion = errors.New("only the last question can be submitted")
	ErrNoNextQuestion  = errors.New("already at the last question")
	ErrNoPrevQuestion  = errors.New("already at the first question")
	ErrNoQuestions     = errors.New("the quiz has no questions")
)

// Attempt walks the questions one at a time. A learner can only move forward
// after answering the current question, and submitting the last question
// finishes the attempt until Reset.
type Attempt struct {
	questions []Question
	answers   Answers
	current   int
	result    *Result
}

func NewAttempt(questions []Question) *Attempt {
	return &Attempt{
		questions: questions,
		answers:   make(Answers, len(questions)),
	}
}

func (a *Attempt) Len() int {
	return len(a.questions)
}

// Current returns the index and the question being answered.
func (a *Attempt) Current() (int, Question) {
	if len(a.questions) == 0 {
		return 0, Question{}
	}
	return a.current, a.questions[a.current]
}

func (a *Attempt) Answer(index int) (string, bool) {
	answer, ok := a.answers[index]
	return answer, ok
}

func (a *Attempt) IsLast() bool {
	return a.current == len(a.questions)-1
}

func (a *Attempt) Finished() bool {
	return a.result != nil
}

// Result returns the score of a submitted attempt.
func (a *Attempt) Result() (Result, bool) {
	if a.result == nil {
		return Result{}, false
	}
	return *a.result, true
}

func (a *Attempt) Choose(option string) error {
	if a.Finished() {
		return ErrAttemptFinished
	}
	if len(a.questions) == 0 {
		return ErrNoQuestions
	}
	if !a.questions[a.current].HasOption(option) {
		return fmt.Errorf("%q: %w", option, ErrUnknownOption)
	}
	a.answers[a.current] = option
	return nil
}

func (a *Attempt) Next() error {
	if a.Finished() {
		return ErrAttemptFinished
	}
	if _, ok := a.answers[a.current]; !ok {
		return ErrNotAnswered
	}
	if a.IsLast() {
		return ErrNoNextQuestion
	}
	a.current++
	return nil
}

func (a *Attempt) Previous() error {
	if a.Finished() {
		return ErrAttemptFinished
	}
	if a.current == 0 {
		return ErrNoPrevQuestion
	}
	a.current--
	return nil
}

// Submit scores the attempt. It is only allowed on the last question once
// every question has an answer.
func (a *Attempt) Submit() (Result, error) {
	if a.Finished() {
		return Result{}, ErrAttemptFinished
	}
	if len(a.questions) == 0 {
		return Result{}, ErrNoQuestions
	}
	if !a.IsLast() {
		return Result{}, ErrNotLastQuestion
	}
	for i := range a.questions {
		if _, ok := a.answers[i]; !ok {
			return Result{}, fmt.Errorf("question %d: %w", i+1, ErrNotAnswered)
		}
	}
	result := Evaluate(a.questions, a.answers)
	a.result = &result
	return result, nil
}

// Reset clears every answer and returns to the first question.
func (a *Attempt) Reset() {
	a.answers = make(Answers, len(a.questions))
	a.current = 0
	a.result = nil
}
