package models

import "github.com/google/uuid"

// WeekPlan holds one owner's template week: at most one recipe per weekday.
// Assignments reference recipes by ID only; names are resolved at display
// time so a deleted recipe can never leave a stale name behind.
type WeekPlan struct {
	OwnerID     string
	Assignments map[Weekday]uuid.UUID
}

// NewWeekPlan returns an empty plan for ownerID.
func NewWeekPlan(ownerID string) *WeekPlan {
	return &WeekPlan{
		OwnerID:     ownerID,
		Assignments: make(map[Weekday]uuid.UUID, len(Weekdays)),
	}
}

// Assign sets the recipe for day, unconditionally replacing any previous
// assignment. Last write wins.
func (p *WeekPlan) Assign(day Weekday, recipeID uuid.UUID) {
	if p.Assignments == nil {
		p.Assignments = make(map[Weekday]uuid.UUID, len(Weekdays))
	}
	p.Assignments[day] = recipeID
}

// Clear removes the assignment for day. Clearing an empty day is a no-op.
func (p *WeekPlan) Clear(day Weekday) {
	delete(p.Assignments, day)
}

// RecipeFor reports the recipe assigned to day, if any.
func (p *WeekPlan) RecipeFor(day Weekday) (uuid.UUID, bool) {
	id, ok := p.Assignments[day]
	return id, ok
}
