package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/codelearn-landing/internal/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Difficulty of a course.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Course is one category of the static catalog.
type Course struct {
	ID          string     `yaml:"id" validate:"required,lowercase,alpha"`
	Name        string     `yaml:"name" validate:"required,min=1,max=30"`
	Description string     `yaml:"description" validate:"required,min=50,max=150"`
	Icon        string     `yaml:"icon" validate:"required"`
	Difficulty  Difficulty `yaml:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	LessonCount int        `yaml:"lessonCount" validate:"gte=0"`
	Enabled     bool       `yaml:"enabled"`
	Color       string     `yaml:"color" validate:"omitempty,hexcolor"`
}

//go:embed courses.yaml
var coursesYAML []byte

var courseValidator = validator.New()

// Validate checks a course against the catalog rules.
func Validate(c Course) error {
	if err := courseValidator.Struct(c); err != nil {
		return errors.Wrapf(errors.ErrInvalidCourse, "%s: %s", c.ID, err.Error())
	}
	return nil
}

// Parse decodes a YAML list of courses. Courses that fail validation are
// logged and kept, the page renders whatever the catalog contains.
func Parse(data []byte) ([]Course, error) {
	var courses []Course
	if err := yaml.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("[catalog Parse] %w", err)
	}
	for _, c := range courses {
		if err := Validate(c); err != nil {
			log.Warn().Err(err).Str("course", c.ID).Msg("Invalid course data")
		}
	}
	return courses, nil
}

// Courses returns the embedded catalog.
func Courses() []Course {
	courses, err := Parse(coursesYAML)
	if err != nil {
		panic("Failed to parse embedded catalog: " + err.Error())
	}
	return courses
}

// Enabled filters out disabled courses.
func Enabled(courses []Course) []Course {
	enabled := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.Enabled {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

var difficultyColors = map[Difficulty]string{
	Beginner:     "#10b981", // green
	Intermediate: "#f59e0b", // amber
	Advanced:     "#ef4444", // red
}

// DifficultyColor returns the badge color for a difficulty, grey when unknown.
func DifficultyColor(d Difficulty) string {
	if color, ok := difficultyColors[d]; ok {
		return color
	}
	return "#6b7280"
}

// DifficultyLabel capitalises the difficulty for display.
func DifficultyLabel(d Difficulty) string {
	if d == "" {
		return ""
	}
	s := string(d)
	return strings.ToUpper(s[:1]) + s[1:]
}
