// Package types provides type definitions for structured data used throughout the resume-fitter system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the normalized resume content consumed by the renderer.
// The four core sections (summary, skills, experience, education) are
// required; projects, certifications and awards are optional and simply
// absent when nil.
type ResumeRecord struct {
	Name       string       `json:"name" validate:"required"`
	Contact    string       `json:"contact" validate:"required"`
	Summary    string       `json:"summary" validate:"required"`
	Skills     []SkillGroup `json:"skills" validate:"required,min=1,dive"`
	Experience []Experience `json:"experience" validate:"required,min=1,dive"`
	Education  []Education  `json:"education" validate:"required,min=1,dive"`

	Projects       []Project       `json:"projects,omitempty" validate:"omitempty,dive"`
	Certifications []Certification `json:"certifications,omitempty" validate:"omitempty,dive"`
	Awards         []Award         `json:"awards,omitempty" validate:"omitempty,dive"`
}

// SkillGroup represents one skill category line, e.g. "Languages: Go, Python".
type SkillGroup struct {
	Category string `json:"category" validate:"required"`
	Items    string `json:"items" validate:"required"`
}

// Experience represents one employment entry with its bullets.
type Experience struct {
	Company  string   `json:"company" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Location string   `json:"location,omitempty"`
	Dates    string   `json:"dates" validate:"required"`
	Bullets  []string `json:"bullets" validate:"required,min=1,dive,required"`
}

// Education represents one education entry.
type Education struct {
	School   string `json:"school" validate:"required"`
	Degree   string `json:"degree" validate:"required"`
	Location string `json:"location,omitempty"`
	Dates    string `json:"dates" validate:"required"`
}

// Project represents one optional project entry.
type Project struct {
	Name    string   `json:"name" validate:"required"`
	Tech    string   `json:"tech,omitempty"`
	Dates   string   `json:"dates,omitempty"`
	Bullets []string `json:"bullets,omitempty"`
}

// Certification represents one optional certification line.
type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer,omitempty"`
	Dates  string `json:"dates,omitempty"`
}

// Award represents one optional award line.
type Award struct {
	Name         string `json:"name" validate:"required"`
	Organization string `json:"organization,omitempty"`
	Dates        string `json:"dates,omitempty"`
}

// ExperienceBullets collects all experience bullets in document order.
func (r *ResumeRecord) ExperienceBullets() []string {
	var bullets []string
	for _, exp := range r.Experience {
		bullets = append(bullets, exp.Bullets...)
	}
	return bullets
}

// AllBullets collects experience and project bullets in document order.
func (r *ResumeRecord) AllBullets() []string {
	bullets := r.ExperienceBullets()
	for _, proj := range r.Projects {
		bullets = append(bullets, proj.Bullets...)
	}
	return bullets
}
